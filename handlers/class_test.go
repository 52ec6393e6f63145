package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pirouette/models"
	"pirouette/services/scheduling"
)

// fakeEngine returns canned outcomes.
type fakeEngine struct {
	outcome *scheduling.ScheduleOutcome
	result  *models.BatchResult
	err     error
}

func (f *fakeEngine) InitiateSchedule(ctx context.Context, req scheduling.ScheduleRequest) (*scheduling.ScheduleOutcome, error) {
	return f.outcome, f.err
}

func (f *fakeEngine) ConfirmSchedule(ctx context.Context, sessionID string) (*models.BatchResult, error) {
	return f.result, f.err
}

func (f *fakeEngine) CancelSchedule(ctx context.Context, sessionID string) error {
	return f.err
}

func (f *fakeEngine) ScheduleCopies(ctx context.Context, source *models.Class, weekdays []int, endDate scheduling.Date) (*scheduling.ScheduleOutcome, error) {
	return f.outcome, f.err
}

func scheduleBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"studioId":        "studio-1",
		"instructorId":    "instructor-1",
		"title":           "Beginner Ballet",
		"start":           map[string]int{"year": 2024, "month": 6, "day": 3, "hour": 18, "minute": 0},
		"durationMinutes": 60,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func performSchedule(t *testing.T, engine scheduling.SchedulingEngine, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewClassHandler(engine, nil, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/classes/schedule", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.ScheduleClassHandler(c)
	return w
}

func TestScheduleClassHandlerSuccess(t *testing.T) {
	engine := &fakeEngine{
		outcome: &scheduling.ScheduleOutcome{
			DraftCount: 4,
			Result:     &models.BatchResult{Submitted: 4, Succeeded: 4},
		},
	}
	w := performSchedule(t, engine, scheduleBody(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"draftCount":4`)
}

func TestScheduleClassHandlerPending(t *testing.T) {
	engine := &fakeEngine{
		outcome: &scheduling.ScheduleOutcome{Pending: true, SessionID: "sess-1", DraftCount: 25},
	}
	w := performSchedule(t, engine, scheduleBody(t))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"confirmationRequired":true`)
	assert.Contains(t, w.Body.String(), "sess-1")
}

func TestScheduleClassHandlerValidationError(t *testing.T) {
	engine := &fakeEngine{err: scheduling.NewValidationError("weekdays", "select at least one weekday")}
	w := performSchedule(t, engine, scheduleBody(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleClassHandlerMissingStudio(t *testing.T) {
	body, err := json.Marshal(map[string]any{"title": "no studio"})
	require.NoError(t, err)
	w := performSchedule(t, &fakeEngine{}, bytes.NewBuffer(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleClassHandlerPartialFailure(t *testing.T) {
	engine := &fakeEngine{
		outcome: &scheduling.ScheduleOutcome{
			DraftCount: 25,
			Result:     &models.BatchResult{Submitted: 25, Succeeded: 23, Failed: 2},
		},
		err: assert.AnError,
	}
	w := performSchedule(t, engine, scheduleBody(t))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "23 of 25 classes created")
}

func TestConfirmScheduleHandlerNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewClassHandler(&fakeEngine{err: scheduling.ErrSessionNotFound}, nil, zap.NewNop())

	body, err := json.Marshal(map[string]string{"sessionId": "gone"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/classes/schedule/confirm", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ConfirmScheduleHandler(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	classRepo "pirouette/database/repository/class"
	"pirouette/models"
	"pirouette/services/notification"
	"pirouette/utils"
)

// DefaultConfirmThreshold is the batch size above which explicit user
// confirmation is required before submission. A UX safety valve against
// accidental creation of hundreds of records, not a hard system limit.
const DefaultConfirmThreshold = 20

// ScheduleRequest carries the class template plus the recurrence rule as the
// client submits them.
type ScheduleRequest struct {
	StudioID     string
	InstructorID string
	StudentID    string
	Title        string
	Description  string
	Location     string
	Capacity     int
	Visibility   string
	PriceCents   int
	PricingTier  string

	Start           LocalDateTime
	DurationMinutes int

	Recurring bool
	Weekdays  []int // Sunday = 0
	EndDate   *Date // inclusive; required when Recurring
}

// ScheduleOutcome is the result of initiating a schedule: either a completed
// batch submission, or a pending session awaiting confirmation.
type ScheduleOutcome struct {
	Pending    bool                `json:"pending"`
	SessionID  string              `json:"sessionId,omitempty"`
	DraftCount int                 `json:"draftCount"`
	Result     *models.BatchResult `json:"result,omitempty"`
}

// SchedulingEngine expands recurrence rules into class instances and manages
// the create/confirm/commit protocol.
type SchedulingEngine interface {
	InitiateSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleOutcome, error)
	ConfirmSchedule(ctx context.Context, sessionID string) (*models.BatchResult, error)
	CancelSchedule(ctx context.Context, sessionID string) error
	ScheduleCopies(ctx context.Context, source *models.Class, weekdays []int, endDate Date) (*ScheduleOutcome, error)
}

// DefaultSchedulingEngine implements SchedulingEngine.
type DefaultSchedulingEngine struct {
	Repo         classRepo.ClassRepository
	SessionCache *redis.Client                  // Pending batches parked for confirmation
	Reminders    notification.ReminderScheduler // Optional; nil disables reminders
	Logger       *zap.Logger

	ConfirmThreshold int    // 0 means DefaultConfirmThreshold
	Strategy         string // "bulk" (default) or "concurrent"
}

// NeedsConfirmation reports whether a batch of n drafts must be confirmed by
// the user before submission.
func (e *DefaultSchedulingEngine) NeedsConfirmation(n int) bool {
	threshold := e.ConfirmThreshold
	if threshold <= 0 {
		threshold = DefaultConfirmThreshold
	}
	return n > threshold
}

// InitiateSchedule validates the request, expands the recurrence rule,
// materializes the drafts, then either submits the batch immediately or parks
// it for confirmation when it is large. Expansion and materialization are
// pure, synchronous computation: the draft set is stable and fully built
// before any network call begins.
func (e *DefaultSchedulingEngine) InitiateSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleOutcome, error) {
	if err := ValidateScheduleRequest(req); err != nil {
		return nil, err
	}

	starts := []LocalDateTime{req.Start}
	if req.Recurring {
		rule := RecurrenceRule{
			Anchor:   req.Start,
			Weekdays: toWeekdays(req.Weekdays),
			EndDate:  *req.EndDate,
		}
		// Create flow: the user's chosen start is always the first instance.
		starts = Expand(rule, true)
	}

	drafts := Materialize(template(req), starts, req.DurationMinutes)
	if len(drafts) == 0 {
		return nil, NewValidationError("recurrence", "rule produced no class instances")
	}
	return e.gateAndSubmit(ctx, req.StudioID, drafts)
}

// ScheduleCopies expands a recurrence rule anchored on an existing class and
// creates time-shifted copies of it. Unlike the create flow, the source
// class's own date is excluded: copies begin the day after it.
func (e *DefaultSchedulingEngine) ScheduleCopies(ctx context.Context, source *models.Class, weekdays []int, endDate Date) (*ScheduleOutcome, error) {
	if len(weekdays) == 0 {
		return nil, NewValidationError("weekdays", "select at least one weekday")
	}
	if err := validWeekdays(weekdays); err != nil {
		return nil, err
	}
	if err := endDate.Validate(); err != nil {
		return nil, NewValidationError("endDate", err.Error())
	}

	anchor := FromUTC(source.StartUTC)
	if endDate.Before(anchor.Date()) {
		return nil, NewValidationError("endDate", "end date is before the class start date")
	}

	rule := RecurrenceRule{
		Anchor:   anchor,
		Weekdays: toWeekdays(weekdays),
		EndDate:  endDate,
	}
	starts := Expand(rule, false)

	drafts := Materialize(*source, starts, source.DurationMinutes)
	if len(drafts) == 0 {
		return nil, NewValidationError("recurrence", "rule produced no class instances")
	}
	return e.gateAndSubmit(ctx, source.StudioID, drafts)
}

func (e *DefaultSchedulingEngine) gateAndSubmit(ctx context.Context, studioID string, drafts []models.ClassDraft) (*ScheduleOutcome, error) {
	if e.NeedsConfirmation(len(drafts)) {
		sessionID, err := e.parkSession(ctx, studioID, drafts)
		if err != nil {
			return nil, err
		}
		return &ScheduleOutcome{Pending: true, SessionID: sessionID, DraftCount: len(drafts)}, nil
	}

	result, err := e.submit(ctx, studioID, drafts)
	if err != nil {
		return &ScheduleOutcome{DraftCount: len(drafts), Result: result}, err
	}
	return &ScheduleOutcome{DraftCount: len(drafts), Result: result}, nil
}

// parkSession stores the materialized batch in Redis until the user confirms
// or cancels it.
func (e *DefaultSchedulingEngine) parkSession(ctx context.Context, studioID string, drafts []models.ClassDraft) (string, error) {
	session := models.ScheduleSession{
		ID:        uuid.New().String(),
		StudioID:  studioID,
		Drafts:    drafts,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schedule session: %w", err)
	}
	key := utils.ScheduleSessionPrefix + session.ID
	if err := e.SessionCache.Set(ctx, key, data, utils.ScheduleSessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache schedule session: %w", err)
	}
	e.Logger.Info("schedule batch parked for confirmation",
		zap.String("sessionId", session.ID),
		zap.String("studioId", studioID),
		zap.Int("draftCount", len(drafts)))
	return session.ID, nil
}

// ConfirmSchedule resumes a parked batch and submits it. The session is
// consumed either way, so the client is never stuck holding a stale
// confirmation dialog.
func (e *DefaultSchedulingEngine) ConfirmSchedule(ctx context.Context, sessionID string) (*models.BatchResult, error) {
	key := utils.ScheduleSessionPrefix + sessionID
	data, err := e.SessionCache.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule session: %w", err)
	}

	var session models.ScheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse schedule session: %w", err)
	}

	// Consume the session before submitting; a retry after failure goes back
	// through the normal schedule flow.
	e.SessionCache.Del(ctx, key)

	return e.submit(ctx, session.StudioID, session.Drafts)
}

// CancelSchedule discards a parked batch without submitting anything.
func (e *DefaultSchedulingEngine) CancelSchedule(ctx context.Context, sessionID string) error {
	key := utils.ScheduleSessionPrefix + sessionID
	n, err := e.SessionCache.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel schedule session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func template(req ScheduleRequest) models.Class {
	return models.Class{
		StudioID:     req.StudioID,
		InstructorID: req.InstructorID,
		StudentID:    req.StudentID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Visibility:   req.Visibility,
		PriceCents:   req.PriceCents,
		PricingTier:  req.PricingTier,
	}
}

// ValidateScheduleRequest checks the user-correctable input: missing
// title/start/duration and, for recurring requests, an empty weekday set or a
// missing/too-early end date all block expansion entirely.
func ValidateScheduleRequest(req ScheduleRequest) error {
	if req.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if err := req.Start.Validate(); err != nil {
		return NewValidationError("start", err.Error())
	}
	if !ValidDuration(req.DurationMinutes) {
		return NewValidationError("durationMinutes",
			fmt.Sprintf("%d is not an allowed duration", req.DurationMinutes))
	}
	if req.Recurring {
		if len(req.Weekdays) == 0 {
			return NewValidationError("weekdays", "select at least one weekday")
		}
		if err := validWeekdays(req.Weekdays); err != nil {
			return err
		}
		if req.EndDate == nil {
			return NewValidationError("endDate", "end date is required for recurring classes")
		}
		if err := req.EndDate.Validate(); err != nil {
			return NewValidationError("endDate", err.Error())
		}
		if req.EndDate.Before(req.Start.Date()) {
			return NewValidationError("endDate", "end date is before the start date")
		}
	}
	return nil
}

func validWeekdays(weekdays []int) error {
	for _, wd := range weekdays {
		if wd < 0 || wd > 6 {
			return NewValidationError("weekdays", fmt.Sprintf("invalid weekday %d", wd))
		}
	}
	return nil
}

func toWeekdays(ints []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(ints))
	for _, i := range ints {
		out = append(out, time.Weekday(i))
	}
	return out
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	classRepo "pirouette/database/repository/class"
	"pirouette/models"
	"pirouette/services/scheduling"
	"pirouette/utils"
)

// ClassHandler serves the class scheduling and CRUD endpoints.
type ClassHandler struct {
	Engine scheduling.SchedulingEngine
	Repo   classRepo.ClassRepository
	Logger *zap.Logger
}

func NewClassHandler(engine scheduling.SchedulingEngine, repo classRepo.ClassRepository, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{Engine: engine, Repo: repo, Logger: logger}
}

// ScheduleClassInput is the wire shape for scheduling one class or a
// recurring series.
type ScheduleClassInput struct {
	StudioID     string `json:"studioId" binding:"required"`
	InstructorID string `json:"instructorId" binding:"required"`
	StudentID    string `json:"studentId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	Visibility   string `json:"visibility"`
	PriceCents   int    `json:"priceCents"`
	PricingTier  string `json:"pricingTier"`

	Start           scheduling.LocalDateTime `json:"start"`
	DurationMinutes int                      `json:"durationMinutes"`

	Recurring bool             `json:"recurring"`
	Weekdays  []int            `json:"weekdays"`
	EndDate   *scheduling.Date `json:"endDate"`
}

// ToRequest maps the wire shape to the engine's request.
func (in ScheduleClassInput) ToRequest() scheduling.ScheduleRequest {
	return scheduling.ScheduleRequest{
		StudioID:        in.StudioID,
		InstructorID:    in.InstructorID,
		StudentID:       in.StudentID,
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		Capacity:        in.Capacity,
		Visibility:      in.Visibility,
		PriceCents:      in.PriceCents,
		PricingTier:     in.PricingTier,
		Start:           in.Start,
		DurationMinutes: in.DurationMinutes,
		Recurring:       in.Recurring,
		Weekdays:        in.Weekdays,
		EndDate:         in.EndDate,
	}
}

// ScheduleClassHandler expands the recurrence rule, materializes the batch and
// either submits it (200) or parks it for confirmation (202).
func (h *ClassHandler) ScheduleClassHandler(c *gin.Context) {
	var input ScheduleClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	outcome, err := h.Engine.InitiateSchedule(c.Request.Context(), input.ToRequest())
	h.respondOutcome(c, outcome, err)
}

// ConfirmScheduleHandler resumes a parked batch and submits it.
func (h *ClassHandler) ConfirmScheduleHandler(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Engine.ConfirmSchedule(c.Request.Context(), input.SessionID)
	if errors.Is(err, scheduling.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "schedule session not found or expired", "")
		return
	}
	if err != nil {
		h.respondSubmissionFailure(c, result, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CancelScheduleHandler discards a parked batch.
func (h *ClassHandler) CancelScheduleHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	err := h.Engine.CancelSchedule(c.Request.Context(), sessionID)
	if errors.Is(err, scheduling.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "schedule session not found or expired", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel schedule session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// CopyClassHandler creates time-shifted copies of an existing class on the
// given weekdays through the end date. The source class's own date is not
// duplicated.
func (h *ClassHandler) CopyClassHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Weekdays []int           `json:"weekdays" binding:"required"`
		EndDate  scheduling.Date `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	source, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "class not found", id)
		return
	}

	outcome, err := h.Engine.ScheduleCopies(c.Request.Context(), source, input.Weekdays, input.EndDate)
	h.respondOutcome(c, outcome, err)
}

// GetClassHandler returns one class record.
func (h *ClassHandler) GetClassHandler(c *gin.Context) {
	id := c.Param("id")
	class, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "class not found", id)
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListStudioClassesHandler returns a studio's classes in chronological order,
// served from the Redis cache when warm.
func (h *ClassHandler) ListStudioClassesHandler(c *gin.Context) {
	studioID := c.Param("id")
	ctx := c.Request.Context()

	if cached := h.readCachedClasses(ctx, studioID); cached != nil {
		c.JSON(http.StatusOK, gin.H{"classes": cached, "cached": true})
		return
	}

	classes, err := h.Repo.GetByStudio(ctx, studioID)
	if err != nil {
		h.Logger.Error("failed to list studio classes", zap.String("studioId", studioID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list classes", err.Error())
		return
	}
	h.cacheClasses(ctx, studioID, classes)
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

// UpdateClassHandler replaces mutable fields of a class record.
func (h *ClassHandler) UpdateClassHandler(c *gin.Context) {
	id := c.Param("id")
	class, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "class not found", id)
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		Capacity    *int    `json:"capacity"`
		Visibility  *string `json:"visibility"`
		PriceCents  *int    `json:"priceCents"`
		PricingTier *string `json:"pricingTier"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Title != nil {
		class.Title = *input.Title
	}
	if input.Description != nil {
		class.Description = *input.Description
	}
	if input.Location != nil {
		class.Location = *input.Location
	}
	if input.Capacity != nil {
		class.Capacity = *input.Capacity
	}
	if input.Visibility != nil {
		class.Visibility = *input.Visibility
	}
	if input.PriceCents != nil {
		class.PriceCents = *input.PriceCents
	}
	if input.PricingTier != nil {
		class.PricingTier = *input.PricingTier
	}

	if err := h.Repo.Update(c.Request.Context(), class); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update class", err.Error())
		return
	}
	utils.InvalidateClassList(c.Request.Context(), class.StudioID)
	c.JSON(http.StatusOK, class)
}

// DeleteClassHandler removes one class record.
func (h *ClassHandler) DeleteClassHandler(c *gin.Context) {
	id := c.Param("id")
	class, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "class not found", id)
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "class not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete class", err.Error())
		return
	}
	utils.InvalidateClassList(c.Request.Context(), class.StudioID)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// respondOutcome maps a schedule outcome (or its error) onto the HTTP surface.
func (h *ClassHandler) respondOutcome(c *gin.Context, outcome *scheduling.ScheduleOutcome, err error) {
	if scheduling.IsValidationError(err) {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule request", err.Error())
		return
	}
	if err != nil {
		var result *models.BatchResult
		if outcome != nil {
			result = outcome.Result
		}
		h.respondSubmissionFailure(c, result, err)
		return
	}
	if outcome.Pending {
		c.JSON(http.StatusAccepted, gin.H{
			"confirmationRequired": true,
			"sessionId":            outcome.SessionID,
			"draftCount":           outcome.DraftCount,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draftCount": outcome.DraftCount, "result": outcome.Result})
}

// respondSubmissionFailure reports a failed or partially failed submission.
// The counts are always included so the client can tell the user how many of
// N classes were created.
func (h *ClassHandler) respondSubmissionFailure(c *gin.Context, result *models.BatchResult, err error) {
	h.Logger.Error("class batch submission failed", zap.Error(err))
	body := gin.H{"error": "class creation failed"}
	if result != nil {
		body["result"] = result
		body["error"] = fmt.Sprintf("%d of %d classes created", result.Succeeded, result.Submitted)
	}
	c.JSON(http.StatusBadGateway, body)
}

func (h *ClassHandler) readCachedClasses(ctx context.Context, studioID string) []models.Class {
	data, err := utils.GetCacheClient().Get(ctx, utils.ClassListCacheKey(studioID)).Result()
	if err != nil {
		return nil
	}
	var classes []models.Class
	if err := json.Unmarshal([]byte(data), &classes); err != nil {
		return nil
	}
	return classes
}

func (h *ClassHandler) cacheClasses(ctx context.Context, studioID string, classes []models.Class) {
	data, err := json.Marshal(classes)
	if err != nil {
		return
	}
	if err := utils.GetCacheClient().Set(ctx, utils.ClassListCacheKey(studioID), data, utils.ClassListCacheTTL).Err(); err != nil {
		h.Logger.Warn("failed to cache class list", zap.String("studioId", studioID), zap.Error(err))
	}
}

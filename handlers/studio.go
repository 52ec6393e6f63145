package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	studioRepo "pirouette/database/repository/studio"
	"pirouette/models"
	"pirouette/services/scheduling"
	"pirouette/utils"
)

// StudioHandler serves studio CRUD, including the combined create-studio-with-
// initial-class flow.
type StudioHandler struct {
	Repo   studioRepo.StudioRepository
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

func NewStudioHandler(repo studioRepo.StudioRepository, engine scheduling.SchedulingEngine, logger *zap.Logger) *StudioHandler {
	return &StudioHandler{Repo: repo, Engine: engine, Logger: logger}
}

// CreateStudioHandler creates a studio, optionally scheduling its first class
// (or recurring series) in the same request. Dependent class creation needs
// the studio id, so a studio failure blocks the whole flow; the initial class
// input is validated up front so a bad rule never leaves an orphaned studio
// write behind.
func (h *StudioHandler) CreateStudioHandler(c *gin.Context) {
	var input struct {
		Name         string              `json:"name" binding:"required"`
		Address      string              `json:"address"`
		Phone        string              `json:"phone"`
		InitialClass *ScheduleClassInput `json:"initialClass"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ownerID := c.GetString("accountID")

	var classReq *scheduling.ScheduleRequest
	if input.InitialClass != nil {
		req := input.InitialClass.ToRequest()
		if err := scheduling.ValidateScheduleRequest(req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid initial class", err.Error())
			return
		}
		classReq = &req
	}

	studio := models.Studio{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), &studio); err != nil {
		h.Logger.Error("studio creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "studio creation failed", err.Error())
		return
	}

	response := gin.H{"studio": studio}
	if classReq != nil {
		classReq.StudioID = studio.ID
		outcome, err := h.Engine.InitiateSchedule(c.Request.Context(), *classReq)
		if err != nil {
			// The studio exists; report the class failure rather than
			// pretending the whole request failed.
			h.Logger.Error("initial class scheduling failed",
				zap.String("studioId", studio.ID), zap.Error(err))
			response["classError"] = err.Error()
			if outcome != nil && outcome.Result != nil {
				response["classResult"] = outcome.Result
			}
			c.JSON(http.StatusCreated, response)
			return
		}
		response["classSchedule"] = outcome
	}
	c.JSON(http.StatusCreated, response)
}

// GetStudioHandler returns one studio.
func (h *StudioHandler) GetStudioHandler(c *gin.Context) {
	id := c.Param("id")
	studio, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "studio not found", id)
		return
	}
	c.JSON(http.StatusOK, studio)
}

// ListOwnerStudiosHandler returns the acting account's studios.
func (h *StudioHandler) ListOwnerStudiosHandler(c *gin.Context) {
	ownerID := c.GetString("accountID")
	studios, err := h.Repo.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list studios", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"studios": studios})
}

// UpdateStudioHandler replaces mutable fields of a studio.
func (h *StudioHandler) UpdateStudioHandler(c *gin.Context) {
	id := c.Param("id")
	studio, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "studio not found", id)
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.Name != nil {
		studio.Name = *input.Name
	}
	if input.Address != nil {
		studio.Address = *input.Address
	}
	if input.Phone != nil {
		studio.Phone = *input.Phone
	}

	if err := h.Repo.Update(c.Request.Context(), studio); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update studio", err.Error())
		return
	}
	c.JSON(http.StatusOK, studio)
}

// DeleteStudioHandler removes a studio record. Its classes are retained; the
// client decides separately what to do with them.
func (h *StudioHandler) DeleteStudioHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "studio not found", id)
		return
	}
	utils.InvalidateClassList(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

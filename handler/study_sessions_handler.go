package handler

import (
	"strconv"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StudySessionsHandler struct {
	service *usecase.StudySessionsService
}

func NewStudySessionsHandler(service *usecase.StudySessionsService) *StudySessionsHandler {
	return &StudySessionsHandler{service: service}
}

func (h *StudySessionsHandler) LogSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.LogStudySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	session := &model.StudySession{
		UserID:          userID.(string),
		ClassID:         req.ClassID,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}

	if err := h.service.LogSession(c.Request.Context(), session); err != nil {
		switch err.Error() {
		case "duration must be positive", "duration cannot exceed 24 hours":
			utils.BadRequest(c, err.Error())
		default:
			middleware.TrackError("db")
			utils.InternalError(c, "Failed to log study session")
		}
		return
	}

	middleware.StudySessionsLoggedTotal.Inc()
	invalidateReportCache(c.Request.Context(), userID.(string))

	utils.Created(c, session)
}

func (h *StudySessionsHandler) ListSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	sessions, err := h.service.GetRecentSessions(c.Request.Context(), userID.(string), limit)
	if err != nil {
		utils.InternalError(c, "Failed to fetch study sessions")
		return
	}

	utils.Success(c, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// WeeklySummary reports total study time over the trailing seven days.
func (h *StudySessionsHandler) WeeklySummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	sessions, minutes, err := h.service.WeeklySummary(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to build weekly summary")
		return
	}

	utils.Success(c, dto.WeeklySummaryResponse{
		TotalMinutes: minutes,
		TotalHours:   float64(minutes) / 60.0,
		SessionCount: sessions,
	})
}

func (h *StudySessionsHandler) DeleteSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if err.Error() == "study session not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete study session")
		return
	}

	invalidateReportCache(c.Request.Context(), userID.(string))
	utils.Success(c, gin.H{"message": "Study session deleted"})
}

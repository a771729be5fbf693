package handler

import (
	"strconv"

	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type RiskHandler struct {
	service *usecase.RiskService
}

func NewRiskHandler(service *usecase.RiskService) *RiskHandler {
	return &RiskHandler{service: service}
}

// GetRisks lists procrastination risk per pending assignment, most
// severe first. The window defaults to 7 days and is capped at the
// projection horizon.
func (h *RiskHandler) GetRisks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	windowDays := usecase.RiskListingDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.BadRequest(c, "days must be a positive integer")
			return
		}
		if parsed > usecase.ProjectionDays {
			parsed = usecase.ProjectionDays
		}
		windowDays = parsed
	}

	risks, err := h.service.AssessUserRisks(c.Request.Context(), userID.(string), model.Today(), windowDays)
	if err != nil {
		middleware.TrackError("risk")
		utils.InternalError(c, "Failed to assess risks")
		return
	}

	utils.Success(c, gin.H{
		"risks": risks,
		"count": len(risks),
	})
}

// GenerateWarnings runs the warning sweep for the authenticated user.
// Running it twice on the same day creates nothing new.
func (h *RiskHandler) GenerateWarnings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	warnings, err := h.service.GenerateWarnings(c.Request.Context(), userID.(string), model.Today())
	if err != nil {
		middleware.TrackError("risk")
		utils.InternalError(c, "Failed to generate warnings")
		return
	}

	for _, w := range warnings {
		middleware.TrackWarningGenerated(string(w.Type))
	}

	utils.Success(c, gin.H{
		"warnings": warnings,
		"created":  len(warnings),
	})
}

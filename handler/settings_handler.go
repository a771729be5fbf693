package handler

import (
	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingsRepo
}

func NewSettingsHandler(repo *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	settings, err := h.repo.GetSettings(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch settings")
		return
	}

	utils.Success(c, settings)
}

// UpdateSettings applies partial updates on top of the stored (or
// default) settings. Changing the daily budget shifts what counts as
// overloaded, so cached reports are dropped.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.repo.GetSettings(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch settings")
		return
	}

	if req.MaxStudyHoursPerDay != nil {
		if *req.MaxStudyHoursPerDay <= 0 || *req.MaxStudyHoursPerDay > 24 {
			utils.BadRequest(c, "max_study_hours_per_day must be between 0 and 24")
			return
		}
		settings.MaxStudyHoursPerDay = *req.MaxStudyHoursPerDay
	}
	if req.PreferredStudyDays != nil {
		settings.PreferredStudyDays = req.PreferredStudyDays
	}

	if err := h.repo.UpsertSettings(c.Request.Context(), settings); err != nil {
		utils.InternalError(c, "Failed to update settings")
		return
	}

	invalidateReportCache(c.Request.Context(), userID.(string))
	utils.Success(c, settings)
}

package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StreakHandler struct {
	service *usecase.StreakService
}

func NewStreakHandler(service *usecase.StreakService) *StreakHandler {
	return &StreakHandler{service: service}
}

func (h *StreakHandler) GetStreaks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	study, err := h.service.GetStreak(c.Request.Context(), userID.(string), model.StreakStudy)
	if err != nil {
		utils.InternalError(c, "Failed to fetch study streak")
		return
	}

	login, err := h.service.GetStreak(c.Request.Context(), userID.(string), model.StreakLogin)
	if err != nil {
		utils.InternalError(c, "Failed to fetch login streak")
		return
	}

	utils.Success(c, gin.H{
		"study": study,
		"login": login,
	})
}

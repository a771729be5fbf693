package handler

import (
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type WarningsHandler struct {
	repo *repository.WarningsRepo
}

func NewWarningsHandler(repo *repository.WarningsRepo) *WarningsHandler {
	return &WarningsHandler{repo: repo}
}

func (h *WarningsHandler) ListWarnings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	unreadOnly := c.Query("unread") == "true"
	warnings, err := h.repo.GetUserWarnings(c.Request.Context(), userID.(string), unreadOnly)
	if err != nil {
		utils.InternalError(c, "Failed to fetch warnings")
		return
	}

	unread, err := h.repo.CountUnread(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to count unread warnings")
		return
	}

	utils.Success(c, gin.H{
		"warnings": warnings,
		"unread":   unread,
	})
}

func (h *WarningsHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	warningID := c.Param("id")
	if err := h.repo.MarkRead(c.Request.Context(), warningID, userID.(string)); err != nil {
		if err.Error() == "warning not found" {
			utils.NotFound(c, "Warning not found")
			return
		}
		utils.InternalError(c, "Failed to mark warning read")
		return
	}

	utils.Success(c, gin.H{"message": "Warning marked read"})
}

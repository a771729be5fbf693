package handler

import (
	"main/middleware"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	repo *repository.SessionRepo
}

func NewSessionHandler(repo *repository.SessionRepo) *SessionHandler {
	return &SessionHandler{repo: repo}
}

func (h *SessionHandler) ListActiveSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	sessions, err := h.repo.GetUserActiveSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	middleware.UpdateActiveSessions(float64(len(sessions)))

	utils.Success(c, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// LogoutAll deactivates every active session for the user. The caller's
// tokens stay valid until they expire or are blacklisted via logout.
func (h *SessionHandler) LogoutAll(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	ended, err := h.repo.EndAllUserSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{
		"message": "All sessions ended",
		"ended":   ended,
	})
}

package handler

import (
	"strings"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented token pair and deactivates the
// current session.
func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.InternalError(c, "Failed to invalidate tokens")
		return
	}

	if sessionID, err := c.Cookie("session_id"); err == nil {
		if session, err := sessionRepo.GetSession(sessionID); err == nil && session != nil {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
		}
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

package handler

import (
	"main/middleware"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RefreshHandler exchanges a valid refresh token for a new token pair.
// The old refresh token is blacklisted so each one is single-use.
func RefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		middleware.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		middleware.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens(req.RefreshToken, req.RefreshToken); err != nil {
		// Old token keeps working until expiry; not fatal.
		middleware.TrackError("auth")
	}

	middleware.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
	})
}

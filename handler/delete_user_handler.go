package handler

import (
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// DeleteUserHandler removes the account after password confirmation and
// ends every active session.
func DeleteUserHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	ok, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		utils.Unauthorized(c, "Incorrect password")
		return
	}

	if _, err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	if err := userRepo.DeleteUser(c.Request.Context(), userID.(string)); err != nil {
		utils.InternalError(c, "Failed to delete account")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Account deleted"})
}

package handler

import (
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ChangePasswordHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,password"`
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

	ok, err := services.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !ok {
		utils.Unauthorized(c, "Incorrect current password")
		return
	}

	if req.OldPassword == req.NewPassword {
		utils.BadRequest(c, "New password must differ from the current password")
		return
	}

	hashed, err := services.HashPassword(req.NewPassword)
	if err != nil {
		utils.InternalError(c, "Failed to hash password")
		return
	}

	if err := userRepo.UpdateUserPassword(c.Request.Context(), userID.(string), hashed); err != nil {
		utils.InternalError(c, "Failed to update password")
		return
	}

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}

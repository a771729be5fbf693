package handler

import (
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ChangeEmailHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
		NewEmail string `json:"new_email" binding:"required,email"`
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

	if user.Email == req.NewEmail {
		utils.BadRequest(c, "New email must differ from the current email")
		return
	}

	existing, err := userRepo.FindUserByEmail(req.NewEmail)
	if err != nil {
		utils.InternalError(c, "Failed to check email")
		return
	}
	if existing != nil {
		utils.Conflict(c, "email already exists")
		return
	}

	if err := userRepo.UpdateUserEmail(c.Request.Context(), userID.(string), req.NewEmail); err != nil {
		utils.InternalError(c, "Failed to update email")
		return
	}

	utils.Success(c, gin.H{"message": "Email updated successfully"})
}

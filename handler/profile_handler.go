package handler

import (
	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ProfileHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	links := map[string]dto.UserLink{
		"self":     {Href: "/api/profile", Method: "GET"},
		"workload": {Href: "/api/workload/report", Method: "GET"},
		"risks":    {Href: "/api/risks", Method: "GET"},
		"stats":    {Href: "/api/stats", Method: "GET"},
		"settings": {Href: "/api/settings", Method: "GET"},
	}

	utils.Success(c, dto.ToUserProfileResponse(user, links))
}

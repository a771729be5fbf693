package handler

import (
	"strings"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service *usecase.GoalsService
}

func NewGoalsHandler(service *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var goal model.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	goal.UserID = userID.(string)

	if err := h.service.CreateGoal(c.Request.Context(), &goal); err != nil {
		if strings.Contains(err.Error(), "invalid priority") ||
			strings.Contains(err.Error(), "required") ||
			strings.Contains(err.Error(), "past") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to create goal")
		return
	}

	utils.Created(c, dto.ToGoalResponse(&goal))
}

func (h *GoalsHandler) ListGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, err := h.service.GetUserGoals(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch goals")
		return
	}

	utils.Success(c, gin.H{
		"goals": dto.ToGoalResponses(goals),
		"count": len(goals),
	})
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var updates model.Goal
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), c.Param("id"), userID.(string), &updates)
	if err != nil {
		switch {
		case err.Error() == "goal not found":
			utils.NotFound(c, err.Error())
		case strings.Contains(err.Error(), "invalid priority"):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to update goal")
		}
		return
	}

	utils.Success(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) ToggleComplete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goal, err := h.service.ToggleComplete(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if err.Error() == "goal not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to toggle goal")
		return
	}

	utils.Success(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if err.Error() == "goal not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete goal")
		return
	}

	utils.Success(c, gin.H{"message": "Goal deleted"})
}

package dto

import (
	"time"

	"main/model"
)

type GoalResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Priority    model.GoalPriority `json:"priority,omitempty"`
	TargetDate  *time.Time         `json:"target_date,omitempty"`
	Complete    bool               `json:"complete"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func ToGoalResponse(goal *model.Goal) GoalResponse {
	response := GoalResponse{
		ID:          goal.GoalID,
		Title:       goal.Title,
		Description: goal.Description,
		Priority:    goal.Priority,
		Complete:    goal.Complete,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}

	if !goal.TargetDate.IsZero() {
		response.TargetDate = &goal.TargetDate
	}
	if !goal.CompletedAt.IsZero() {
		response.CompletedAt = &goal.CompletedAt
	}

	return response
}

func ToGoalResponses(goals []*model.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}

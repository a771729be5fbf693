package dto

import (
	"time"

	"main/model"
)

type CreateAssignmentRequest struct {
	ClassID    string           `json:"class_id" binding:"required"`
	Name       string           `json:"name" binding:"required"`
	Category   string           `json:"category,omitempty"`
	DueDate    time.Time        `json:"due_date" binding:"required"`
	Weight     float64          `json:"weight,omitempty"`
	Difficulty model.Difficulty `json:"difficulty,omitempty"`
}

type UpdateAssignmentRequest struct {
	Name       string           `json:"name,omitempty"`
	Category   string           `json:"category,omitempty"`
	DueDate    *time.Time       `json:"due_date,omitempty"`
	Weight     *float64         `json:"weight,omitempty"`
	Difficulty model.Difficulty `json:"difficulty,omitempty"`
}

type RecordGradeRequest struct {
	Score    float64  `json:"score" binding:"required"`
	MaxScore *float64 `json:"max_score,omitempty"`
}

type AssignmentResponse struct {
	ID             string           `json:"id"`
	ClassID        string           `json:"class_id"`
	ClassName      string           `json:"class_name,omitempty"`
	Name           string           `json:"name"`
	Category       string           `json:"category,omitempty"`
	DueDate        time.Time        `json:"due_date"`
	Weight         float64          `json:"weight"`
	Difficulty     model.Difficulty `json:"difficulty"`
	Score          *float64         `json:"score,omitempty"`
	MaxScore       *float64         `json:"max_score,omitempty"`
	EstimatedHours float64          `json:"estimated_hours"`
	TimeUntilDue   string           `json:"time_until_due,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToAssignmentResponse attaches the computed effort estimate and a
// human-readable due countdown.
func ToAssignmentResponse(a *model.Assignment, estimatedHours float64) AssignmentResponse {
	response := AssignmentResponse{
		ID:             a.AssignmentID,
		ClassID:        a.ClassID,
		ClassName:      a.ClassName,
		Name:           a.Name,
		Category:       a.Category,
		DueDate:        a.DueDate,
		Weight:         a.EffectiveWeight(),
		Difficulty:     a.Difficulty,
		Score:          a.Score,
		MaxScore:       a.MaxScore,
		EstimatedHours: estimatedHours,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if !a.IsGraded() {
		if a.DueDate.Before(time.Now()) {
			response.TimeUntilDue = "Overdue"
		} else {
			response.TimeUntilDue = time.Until(a.DueDate).Round(time.Hour).String()
		}
	}

	return response
}

package model

import "time"

type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "LOW"
	GoalPriorityMedium GoalPriority = "MEDIUM"
	GoalPriorityHigh   GoalPriority = "HIGH"
)

type Goal struct {
	GoalID      string       `bson:"_id,omitempty" json:"id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	Title       string       `bson:"title" json:"title" binding:"required"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Priority    GoalPriority `bson:"priority,omitempty" json:"priority,omitempty"`
	TargetDate  time.Time    `bson:"target_date,omitempty" json:"target_date,omitempty"`
	Complete    bool         `bson:"complete" json:"complete"`
	CompletedAt time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

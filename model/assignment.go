package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultWeight is applied when an assignment is created without a weight.
const DefaultWeight = 1.0

type Assignment struct {
	AssignmentID string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"user_id" json:"user_id"`
	ClassID      string     `bson:"class_id" json:"class_id"`
	ClassName    string     `bson:"class_name" json:"class_name"`
	Name         string     `bson:"name" json:"name" binding:"required"`
	Category     string     `bson:"category,omitempty" json:"category,omitempty"`
	DueDate      time.Time  `bson:"due_date" json:"due_date"`
	Weight       float64    `bson:"weight" json:"weight"`
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	Score        *float64   `bson:"score,omitempty" json:"score,omitempty"`
	MaxScore     *float64   `bson:"max_score,omitempty" json:"max_score,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// IsGraded reports whether a score has been recorded. Graded assignments
// are excluded from workload projections and risk scoring.
func (a *Assignment) IsGraded() bool {
	return a.Score != nil
}

// DueDay returns the due date as a calendar date.
func (a *Assignment) DueDay() Date {
	return DateOf(a.DueDate)
}

// DifficultyMultiplier scales estimated effort. Unknown or missing
// difficulty is treated as medium.
func (a *Assignment) DifficultyMultiplier() float64 {
	switch a.Difficulty {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// EffectiveWeight falls back to the default when the stored weight is unset.
func (a *Assignment) EffectiveWeight() float64 {
	if a.Weight <= 0 {
		return DefaultWeight
	}
	return a.Weight
}

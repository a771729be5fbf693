package model

import "time"

type WarningType string
type WarningSeverity string

const (
	WarningProcrastination WarningType = "procrastination_warning"
	WarningStreakReminder  WarningType = "streak_reminder"

	WarningSeverityUrgent WarningSeverity = "urgent"
	WarningSeverityHigh   WarningSeverity = "high"
)

// Warning is a stored, notification-worthy alert. Day holds the creation
// calendar date (YYYY-MM-DD); together with user, assignment and type it
// forms the idempotence key enforced by a unique index, so at most one
// warning of a kind exists per assignment per day.
type Warning struct {
	WarningID    string          `bson:"_id,omitempty" json:"id"`
	UserID       string          `bson:"user_id" json:"user_id"`
	AssignmentID string          `bson:"assignment_id,omitempty" json:"assignment_id,omitempty"`
	ClassID      string          `bson:"class_id,omitempty" json:"class_id,omitempty"`
	Type         WarningType     `bson:"type" json:"type"`
	Severity     WarningSeverity `bson:"severity" json:"severity"`
	Message      string          `bson:"message" json:"message"`
	Day          string          `bson:"day" json:"day"`
	Read         bool            `bson:"read" json:"read"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
}

package model

import "time"

type StreakType string

const (
	StreakStudy StreakType = "study"
	StreakLogin StreakType = "login"
)

// Streak counts consecutive days of a tracked activity, with a
// longest-ever high-water mark.
type Streak struct {
	UserID           string     `bson:"user_id" json:"user_id"`
	Type             StreakType `bson:"type" json:"type"`
	CurrentStreak    int        `bson:"current_streak" json:"current_streak"`
	LongestStreak    int        `bson:"longest_streak" json:"longest_streak"`
	LastActivityDate time.Time  `bson:"last_activity_date" json:"last_activity_date"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// LastActivityDay returns the last activity as a calendar date.
func (s *Streak) LastActivityDay() Date {
	return DateOf(s.LastActivityDate)
}

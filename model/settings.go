package model

import "time"

// Default planner settings applied when a user has never saved any.
const DefaultMaxStudyHoursPerDay = 4.0

// DefaultPreferredStudyDays returns the default Monday through Friday set.
func DefaultPreferredStudyDays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

type UserSettings struct {
	UserID              string    `bson:"user_id" json:"user_id"`
	MaxStudyHoursPerDay float64   `bson:"max_study_hours_per_day" json:"max_study_hours_per_day"`
	PreferredStudyDays  []string  `bson:"preferred_study_days" json:"preferred_study_days"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings builds the settings record used when none is stored.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:              userID,
		MaxStudyHoursPerDay: DefaultMaxStudyHoursPerDay,
		PreferredStudyDays:  DefaultPreferredStudyDays(),
	}
}

// IsPreferredDay reports whether the weekday is in the preferred study set.
func (s *UserSettings) IsPreferredDay(weekday time.Weekday) bool {
	name := weekday.String()
	for _, day := range s.PreferredStudyDays {
		if day == name {
			return true
		}
	}
	return false
}

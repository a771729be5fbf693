package model

import "time"

// StudySession is a logged block of study time. ClassID is empty for
// general (unassigned) study; the planner only ever consumes sessions in
// aggregate, summed per class per date range.
type StudySession struct {
	SessionID       string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ClassID         string    `bson:"class_id,omitempty" json:"class_id,omitempty"`
	Date            time.Time `bson:"date" json:"date"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes" binding:"required"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Day returns the session's calendar date.
func (s *StudySession) Day() Date {
	return DateOf(s.Date)
}

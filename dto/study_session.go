package dto

import "time"

type LogStudySessionRequest struct {
	ClassID         string     `json:"class_id,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
	Notes           string     `json:"notes,omitempty"`
}

type WeeklySummaryResponse struct {
	TotalMinutes int     `json:"total_minutes"`
	TotalHours   float64 `json:"total_hours"`
	SessionCount int     `json:"session_count"`
}

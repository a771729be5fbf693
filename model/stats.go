package model

import "time"

type PlannerStats struct {
	ClassStats struct {
		Total int `json:"total"`
	} `json:"class_stats"`
	AssignmentStats struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
		Graded  int `json:"graded"`
		DueSoon int `json:"due_soon"`
	} `json:"assignment_stats"`
	StudyStats struct {
		MinutesThisWeek  int `json:"minutes_this_week"`
		SessionsThisWeek int `json:"sessions_this_week"`
		CurrentStreak    int `json:"current_streak"`
		LongestStreak    int `json:"longest_streak"`
	} `json:"study_stats"`
	WarningStats struct {
		Unread int `json:"unread"`
	} `json:"warning_stats"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		ActiveSessions int       `json:"active_sessions"`
	} `json:"activity_stats"`
}

package dto

type UpdateSettingsRequest struct {
	MaxStudyHoursPerDay *float64 `json:"max_study_hours_per_day,omitempty"`
	PreferredStudyDays  []string `json:"preferred_study_days,omitempty" binding:"omitempty,dive,weekday"`
}

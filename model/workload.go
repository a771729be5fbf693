package model

// Derived workload structures. Everything here is recomputed on every
// request from assignments, sessions and settings; nothing is persisted
// and nothing is mutated after creation.

type SuggestionType string
type SuggestionSeverity string

const (
	SuggestionRedistribute   SuggestionType = "redistribute"
	SuggestionClusterWarning SuggestionType = "cluster_warning"

	SeverityMedium SuggestionSeverity = "medium"
	SeverityHigh   SuggestionSeverity = "high"
)

// AssignmentDue is the slice of an assignment a projected day carries:
// enough for a client to render the day without another lookup.
type AssignmentDue struct {
	AssignmentID   string  `json:"id"`
	Name           string  `json:"name"`
	ClassName      string  `json:"class_name"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type DayWorkload struct {
	Date                 Date            `json:"date"`
	DayName              string          `json:"day_name"`
	IsPreferredDay       bool            `json:"is_preferred_day"`
	Assignments          []AssignmentDue `json:"assignments"`
	AssignmentCount      int             `json:"assignment_count"`
	EstimatedHoursNeeded float64         `json:"estimated_hours_needed"`
	PlannedStudyHours    float64         `json:"planned_study_hours"`
	AvailableHours       float64         `json:"available_hours"`
	WorkloadScore        float64         `json:"workload_score"`
	IsOverloaded         bool            `json:"is_overloaded"`
}

// RedistributionSlot is one donor day in a redistribute suggestion.
type RedistributionSlot struct {
	Date           Date    `json:"date"`
	DayName        string  `json:"day_name"`
	SuggestedHours float64 `json:"suggested_hours"`
}

type Suggestion struct {
	Type           SuggestionType       `json:"type"`
	Severity       SuggestionSeverity   `json:"severity"`
	Message        string               `json:"message"`
	Date           Date                 `json:"date,omitempty"`
	DayName        string               `json:"day_name,omitempty"`
	ExcessHours    float64              `json:"excess_hours,omitempty"`
	Assignments    []string             `json:"assignments,omitempty"`
	Redistribution []RedistributionSlot `json:"redistribution,omitempty"`
	StartDate      Date                 `json:"start_date,omitempty"`
	EndDate        Date                 `json:"end_date,omitempty"`
}

type BalanceStatus string

const (
	BalanceGood     BalanceStatus = "good"
	BalanceModerate BalanceStatus = "moderate"
	BalancePoor     BalanceStatus = "poor"
)

type WorkloadSummary struct {
	TotalAssignments int           `json:"total_assignments"`
	OverloadedDays   int           `json:"overloaded_days"`
	BalanceScore     float64       `json:"balance_score"`
	BalanceStatus    BalanceStatus `json:"balance_status"`
	Recommendation   string        `json:"recommendation"`
}

type WorkloadReport struct {
	WorkloadByDay []*DayWorkload  `json:"workload_by_day"`
	Suggestions   []*Suggestion   `json:"suggestions"`
	Summary       WorkloadSummary `json:"summary"`
}

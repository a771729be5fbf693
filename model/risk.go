package model

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels for sorting, most severe first.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskCritical:
		return 0
	case RiskHigh:
		return 1
	case RiskMedium:
		return 2
	default:
		return 3
	}
}

// RiskAssessment scores one pending assignment from due-date proximity
// and the trailing week of study activity for its class.
type RiskAssessment struct {
	AssignmentID        string    `json:"assignment_id"`
	AssignmentName      string    `json:"assignment_name"`
	ClassID             string    `json:"class_id"`
	ClassName           string    `json:"class_name"`
	DueDate             Date      `json:"due_date"`
	DaysUntilDue        int       `json:"days_until_due"`
	RecentStudySessions int       `json:"recent_study_sessions"`
	TotalStudyMinutes   int       `json:"total_study_minutes"`
	RiskLevel           RiskLevel `json:"risk_level"`
}

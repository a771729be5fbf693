package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"main/model"

	"github.com/google/uuid"
)

const (
	// RiskListingDays is the due-date window for the read-only risk
	// listing; WarningWindowDays is the shorter window the warning
	// generator uses. The two callers differ on purpose.
	RiskListingDays   = 7
	WarningWindowDays = 5

	// recentStudyDays is the trailing window of study activity consulted
	// for every assignment's class.
	recentStudyDays = 7

	urgentDueDays = 3

	criticalStudyMinutes = 30
	lowStudyMinutes      = 60
)

// TestClassifier decides whether an assignment looks like a test. It is
// pluggable so the keyword heuristic can be replaced without touching the
// scoring logic.
type TestClassifier func(category, name string) bool

var testKeywords = []string{"test", "exam", "quiz", "midterm", "final"}

// DefaultTestClassifier matches a small fixed keyword list against the
// assignment's category and name, case-insensitively.
func DefaultTestClassifier(category, name string) bool {
	haystack := strings.ToLower(category + " " + name)
	for _, kw := range testKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// StudyActivity is the aggregate a risk check needs: how many sessions
// and how many minutes were logged for one class recently.
type StudyActivity struct {
	Sessions int
	Minutes  int
}

// StudyLookup fetches recent study activity for a class.
type StudyLookup func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error)

// riskLevelFor is the banding cascade. Order matters: the first matching
// band wins, so an assignment due tomorrow with no study time is critical
// even though it also satisfies the high and medium conditions.
func riskLevelFor(daysUntilDue, studyMinutes int) model.RiskLevel {
	switch {
	case daysUntilDue <= 1 && studyMinutes < criticalStudyMinutes:
		return model.RiskCritical
	case daysUntilDue <= 3 && studyMinutes < lowStudyMinutes:
		return model.RiskHigh
	case daysUntilDue <= 5 && studyMinutes < lowStudyMinutes:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// AssessRisks scores every pending assignment due within windowDays of
// today. A failed activity lookup skips that assignment rather than
// aborting the batch; a partial report beats no report. Results are
// sorted most severe first, nearest deadline first within a level.
func AssessRisks(ctx context.Context, assignments []*model.Assignment, lookup StudyLookup, today model.Date, windowDays int) []*model.RiskAssessment {
	recentFrom := today.AddDays(-recentStudyDays)

	var results []*model.RiskAssessment
	for _, a := range assignments {
		if a.IsGraded() {
			continue
		}
		daysUntil := today.DaysUntil(a.DueDay())
		if daysUntil < 0 || daysUntil > windowDays {
			continue
		}

		activity, err := lookup(ctx, a.ClassID, recentFrom, today)
		if err != nil {
			log.Printf("risk: skipping assignment %s, study lookup failed: %v", a.AssignmentID, err)
			continue
		}

		results = append(results, &model.RiskAssessment{
			AssignmentID:        a.AssignmentID,
			AssignmentName:      a.Name,
			ClassID:             a.ClassID,
			ClassName:           a.ClassName,
			DueDate:             a.DueDay(),
			DaysUntilDue:        daysUntil,
			RecentStudySessions: activity.Sessions,
			TotalStudyMinutes:   activity.Minutes,
			RiskLevel:           riskLevelFor(daysUntil, activity.Minutes),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RiskLevel != results[j].RiskLevel {
			return results[i].RiskLevel.Rank() < results[j].RiskLevel.Rank()
		}
		return results[i].DaysUntilDue < results[j].DaysUntilDue
	})
	return results
}

type WarningStore interface {
	CreateWarning(ctx context.Context, warning *model.Warning) error
	ExistsForAssignment(ctx context.Context, userID, assignmentID string, wtype model.WarningType, day string) (bool, error)
	ExistsForDay(ctx context.Context, userID string, wtype model.WarningType, day string) (bool, error)
}

type StreakStore interface {
	GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error)
}

type RiskService struct {
	Assignments AssignmentStore
	Sessions    StudySessionStore
	Warnings    WarningStore
	Streaks     StreakStore
	Classify    TestClassifier
}

func NewRiskService(assignments AssignmentStore, sessions StudySessionStore, warnings WarningStore, streaks StreakStore) *RiskService {
	return &RiskService{
		Assignments: assignments,
		Sessions:    sessions,
		Warnings:    warnings,
		Streaks:     streaks,
		Classify:    DefaultTestClassifier,
	}
}

func (svc *RiskService) studyLookup(userID string) StudyLookup {
	return func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error) {
		sessions, minutes, err := svc.Sessions.SumByClass(ctx, userID, classID, from, to)
		if err != nil {
			return StudyActivity{}, err
		}
		return StudyActivity{Sessions: sessions, Minutes: minutes}, nil
	}
}

// AssessUserRisks runs the read-only risk listing for a user.
func (svc *RiskService) AssessUserRisks(ctx context.Context, userID string, today model.Date, windowDays int) ([]*model.RiskAssessment, error) {
	if windowDays <= 0 {
		windowDays = RiskListingDays
	}
	assignments, err := svc.Assignments.GetPendingInRange(ctx, userID, today, today.AddDays(windowDays))
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	return AssessRisks(ctx, assignments, svc.studyLookup(userID), today, windowDays), nil
}

// GenerateWarnings creates procrastination and streak warnings for a
// user, at most once per assignment per day. The returned warnings have
// already been persisted. Single-assignment failures are skipped so the
// batch always produces whatever it can.
func (svc *RiskService) GenerateWarnings(ctx context.Context, userID string, today model.Date) ([]*model.Warning, error) {
	assignments, err := svc.Assignments.GetPendingInRange(ctx, userID, today, today.AddDays(WarningWindowDays))
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	lookup := svc.studyLookup(userID)
	recentFrom := today.AddDays(-recentStudyDays)
	day := today.String()

	var created []*model.Warning
	for _, a := range assignments {
		if a.IsGraded() {
			continue
		}
		daysUntil := today.DaysUntil(a.DueDay())
		if daysUntil < 0 {
			continue
		}

		urgent := daysUntil <= urgentDueDays
		testLike := svc.Classify(a.Category, a.Name) && daysUntil <= WarningWindowDays
		if !urgent && !testLike {
			continue
		}

		activity, err := lookup(ctx, a.ClassID, recentFrom, today)
		if err != nil {
			log.Printf("warnings: skipping assignment %s, study lookup failed: %v", a.AssignmentID, err)
			continue
		}
		if activity.Sessions > 0 {
			continue
		}

		exists, err := svc.Warnings.ExistsForAssignment(ctx, userID, a.AssignmentID, model.WarningProcrastination, day)
		if err != nil {
			log.Printf("warnings: skipping assignment %s, existence check failed: %v", a.AssignmentID, err)
			continue
		}
		if exists {
			continue
		}

		severity := model.WarningSeverityHigh
		if urgent {
			severity = model.WarningSeverityUrgent
		}
		warning := &model.Warning{
			WarningID:    uuid.New().String(),
			UserID:       userID,
			AssignmentID: a.AssignmentID,
			ClassID:      a.ClassID,
			Type:         model.WarningProcrastination,
			Severity:     severity,
			Message:      procrastinationMessage(a, daysUntil, testLike),
			Day:          day,
			CreatedAt:    time.Now(),
		}
		if err := svc.Warnings.CreateWarning(ctx, warning); err != nil {
			// A duplicate-key error here means a concurrent run won the
			// race; the unique index keeps the day idempotent either way.
			log.Printf("warnings: create failed for assignment %s: %v", a.AssignmentID, err)
			continue
		}
		created = append(created, warning)
	}

	if streak := svc.streakReminder(ctx, userID, today); streak != nil {
		created = append(created, streak)
	}
	return created, nil
}

func (svc *RiskService) streakReminder(ctx context.Context, userID string, today model.Date) *model.Warning {
	streak, err := svc.Streaks.GetStreak(ctx, userID, model.StreakStudy)
	if err != nil {
		log.Printf("warnings: streak lookup failed for user %s: %v", userID, err)
		return nil
	}
	if streak == nil || streak.CurrentStreak <= 0 {
		return nil
	}
	if streak.LastActivityDay().DaysUntil(today) < 1 {
		return nil
	}

	day := today.String()
	exists, err := svc.Warnings.ExistsForDay(ctx, userID, model.WarningStreakReminder, day)
	if err != nil || exists {
		return nil
	}

	warning := &model.Warning{
		WarningID: uuid.New().String(),
		UserID:    userID,
		Type:      model.WarningStreakReminder,
		Severity:  model.WarningSeverityHigh,
		Message:   fmt.Sprintf("Your %d-day study streak is about to break. Log a session today to keep it going.", streak.CurrentStreak),
		Day:       day,
		CreatedAt: time.Now(),
	}
	if err := svc.Warnings.CreateWarning(ctx, warning); err != nil {
		log.Printf("warnings: streak reminder create failed for user %s: %v", userID, err)
		return nil
	}
	return warning
}

func procrastinationMessage(a *model.Assignment, daysUntil int, testLike bool) string {
	noun := "Assignment"
	if testLike {
		noun = "Test"
	}
	when := fmt.Sprintf("in %d days", daysUntil)
	switch daysUntil {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	}
	return fmt.Sprintf("%s %q for %s is due %s and you haven't studied for it this week.", noun, a.Name, a.ClassName, when)
}

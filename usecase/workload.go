package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"main/model"
)

// Workload projection tuning. The hour and score constants are calibration
// knobs carried over from the original heuristic; changing them changes
// every balance score, so they live here as named constants rather than
// settings.
const (
	// ProjectionDays is the rolling horizon: day 0 is always today.
	ProjectionDays = 14

	// baseHoursPerWeight encodes "2 base hours per unit weight". It is a
	// heuristic, not a measured quantity.
	baseHoursPerWeight = 2.0

	// countPenalty adds a small fixed score per assignment so many small
	// tasks still register against a day.
	countPenalty = 0.5

	variancePenalty = 10.0
	overloadPenalty = 15.0

	// Cluster detection: a 3-day window whose mean score exceeds
	// clusterMeanRatio of the daily budget, with every day above
	// clusterScoreFloor, counts as one cluster.
	clusterWindow     = 3
	clusterMeanRatio  = 0.8
	clusterScoreFloor = 2.0

	// donorMinAvailable is the spare capacity a day needs before it can
	// receive redistributed hours.
	donorMinAvailable = 1.0
)

// EstimatedHours is the effort heuristic for a single assignment:
// weight x difficulty multiplier x base hours.
func EstimatedHours(a *model.Assignment) float64 {
	return a.EffectiveWeight() * a.DifficultyMultiplier() * baseHoursPerWeight
}

// BuildProjection lays pending assignments and logged study time onto a
// 14-day calendar starting at today. Graded assignments and assignments
// already past due are ignored. The returned slice always has exactly
// ProjectionDays entries with consecutive dates.
func BuildProjection(assignments []*model.Assignment, sessions []*model.StudySession, settings *model.UserSettings, today model.Date) []*model.DayWorkload {
	dueByDay := make(map[model.Date][]*model.Assignment)
	for _, a := range assignments {
		if a.IsGraded() {
			continue
		}
		due := a.DueDay()
		if due.Before(today) {
			continue
		}
		dueByDay[due] = append(dueByDay[due], a)
	}

	minutesByDay := make(map[model.Date]int)
	for _, s := range sessions {
		minutesByDay[s.Day()] += s.DurationMinutes
	}

	days := make([]*model.DayWorkload, 0, ProjectionDays)
	for i := 0; i < ProjectionDays; i++ {
		date := today.AddDays(i)

		var estimated float64
		due := dueByDay[date]
		dueRefs := make([]model.AssignmentDue, 0, len(due))
		for _, a := range due {
			hours := EstimatedHours(a)
			estimated += hours
			dueRefs = append(dueRefs, model.AssignmentDue{
				AssignmentID:   a.AssignmentID,
				Name:           a.Name,
				ClassName:      a.ClassName,
				EstimatedHours: hours,
			})
		}

		planned := float64(minutesByDay[date]) / 60.0
		available := math.Max(0, settings.MaxStudyHoursPerDay-planned)

		days = append(days, &model.DayWorkload{
			Date:                 date,
			DayName:              date.Weekday().String(),
			IsPreferredDay:       settings.IsPreferredDay(date.Weekday()),
			Assignments:          dueRefs,
			AssignmentCount:      len(due),
			EstimatedHoursNeeded: estimated,
			PlannedStudyHours:    planned,
			AvailableHours:       available,
			WorkloadScore:        estimated + countPenalty*float64(len(due)),
			IsOverloaded:         estimated > settings.MaxStudyHoursPerDay,
		})
	}
	return days
}

// Summarize condenses a projection into the 0-100 balance score and its
// status band. Score = 100 - 10 x variance - 15 x overloaded days,
// clamped to [0, 100]; variance is the population variance of the daily
// workload scores.
func Summarize(days []*model.DayWorkload) model.WorkloadSummary {
	var total int
	var overloaded int
	var sum float64
	for _, day := range days {
		total += day.AssignmentCount
		sum += day.WorkloadScore
		if day.IsOverloaded {
			overloaded++
		}
	}

	var variance float64
	if len(days) > 0 {
		mean := sum / float64(len(days))
		for _, day := range days {
			diff := day.WorkloadScore - mean
			variance += diff * diff
		}
		variance /= float64(len(days))
	}

	score := 100 - variancePenalty*variance - overloadPenalty*float64(overloaded)
	score = math.Min(100, math.Max(0, score))

	status := model.BalancePoor
	recommendation := "Your schedule is heavily clustered. Redistribute work now to avoid overload."
	switch {
	case score >= 70:
		status = model.BalanceGood
		recommendation = "Your workload is well balanced across the next two weeks."
	case score >= 40:
		status = model.BalanceModerate
		recommendation = "Your workload is uneven. Consider spreading tasks across lighter days."
	}

	return model.WorkloadSummary{
		TotalAssignments: total,
		OverloadedDays:   overloaded,
		BalanceScore:     round1(score),
		BalanceStatus:    status,
		Recommendation:   recommendation,
	}
}

// SuggestRedistribution scans the projection for overloaded days and
// proposes moving the excess to earlier preferred days with spare
// capacity, latest-first so effort stays close to the deadline. It also
// reports the first 3-day heavy cluster, if any. Overloaded days with no
// eligible donor produce nothing; that is not an error.
func SuggestRedistribution(days []*model.DayWorkload, maxHoursPerDay float64) []*model.Suggestion {
	var suggestions []*model.Suggestion

	for i, day := range days {
		if !day.IsOverloaded {
			continue
		}
		excess := day.EstimatedHoursNeeded - maxHoursPerDay

		// Donors: strictly earlier preferred days with spare capacity,
		// walked in reverse so hours land closest to the deadline.
		remaining := excess
		var slots []model.RedistributionSlot
		for j := i - 1; j >= 0 && remaining > 0; j-- {
			donor := days[j]
			if donor.AvailableHours <= donorMinAvailable || !donor.IsPreferredDay {
				continue
			}
			moved := math.Min(donor.AvailableHours, remaining)
			slots = append(slots, model.RedistributionSlot{
				Date:           donor.Date,
				DayName:        donor.DayName,
				SuggestedHours: moved,
			})
			remaining -= moved
		}
		if len(slots) == 0 {
			continue
		}

		severity := model.SeverityMedium
		if excess > maxHoursPerDay {
			severity = model.SeverityHigh
		}

		names := make([]string, 0, len(day.Assignments))
		for _, a := range day.Assignments {
			names = append(names, a.Name)
		}

		suggestions = append(suggestions, &model.Suggestion{
			Type:           model.SuggestionRedistribute,
			Severity:       severity,
			Message:        redistributeMessage(day, excess, slots),
			Date:           day.Date,
			DayName:        day.DayName,
			ExcessHours:    round1(excess),
			Assignments:    names,
			Redistribution: slots,
		})
	}

	if cluster := detectCluster(days, maxHoursPerDay); cluster != nil {
		suggestions = append(suggestions, cluster)
	}

	return suggestions
}

// detectCluster reports the first window of three consecutive heavy days.
// Only the first match is returned; overlapping windows after it would
// just repeat the same stretch.
func detectCluster(days []*model.DayWorkload, maxHoursPerDay float64) *model.Suggestion {
	for i := 0; i+clusterWindow <= len(days); i++ {
		var sum float64
		heavy := true
		for j := i; j < i+clusterWindow; j++ {
			sum += days[j].WorkloadScore
			if days[j].WorkloadScore <= clusterScoreFloor {
				heavy = false
				break
			}
		}
		if !heavy {
			continue
		}
		if sum/clusterWindow <= clusterMeanRatio*maxHoursPerDay {
			continue
		}

		first := days[i]
		last := days[i+clusterWindow-1]
		return &model.Suggestion{
			Type:     model.SuggestionClusterWarning,
			Severity: model.SeverityMedium,
			Message: fmt.Sprintf("Heavy workload cluster from %s (%s) to %s (%s). Spread study time over the surrounding days.",
				first.DayName, first.Date, last.DayName, last.Date),
			StartDate: first.Date,
			EndDate:   last.Date,
		}
	}
	return nil
}

func redistributeMessage(day *model.DayWorkload, excess float64, slots []model.RedistributionSlot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) is overloaded by %.1f hours.", day.DayName, day.Date, excess)
	for _, slot := range slots {
		fmt.Fprintf(&b, " Move %.1f hours to %s (%s).", slot.SuggestedHours, slot.DayName, slot.Date)
	}
	return b.String()
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Store interfaces are deliberately narrow so the engine can be fed from
// Mongo in production and from fixtures in tests.

type AssignmentStore interface {
	GetPendingInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.Assignment, error)
}

type StudySessionStore interface {
	GetInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.StudySession, error)
	SumByClass(ctx context.Context, userID, classID string, from, to model.Date) (sessions int, minutes int, err error)
}

type SettingsStore interface {
	GetSettings(ctx context.Context, userID string) (*model.UserSettings, error)
}

type WorkloadService struct {
	Assignments AssignmentStore
	Sessions    StudySessionStore
	Settings    SettingsStore
}

func NewWorkloadService(assignments AssignmentStore, sessions StudySessionStore, settings SettingsStore) *WorkloadService {
	return &WorkloadService{
		Assignments: assignments,
		Sessions:    sessions,
		Settings:    settings,
	}
}

// GetReport fetches the next two weeks of pending assignments and logged
// sessions and assembles the full workload report for the user.
func (svc *WorkloadService) GetReport(ctx context.Context, userID string) (*model.WorkloadReport, error) {
	return svc.GetReportForDate(ctx, userID, model.Today())
}

// GetReportForDate is GetReport pinned to an explicit "today", which keeps
// report generation deterministic under test.
func (svc *WorkloadService) GetReportForDate(ctx context.Context, userID string, today model.Date) (*model.WorkloadReport, error) {
	settings, err := svc.Settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	horizonEnd := today.AddDays(ProjectionDays - 1)
	assignments, err := svc.Assignments.GetPendingInRange(ctx, userID, today, horizonEnd)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	sessions, err := svc.Sessions.GetInRange(ctx, userID, today, horizonEnd)
	if err != nil {
		return nil, fmt.Errorf("load study sessions: %w", err)
	}

	days := BuildProjection(assignments, sessions, settings, today)
	return &model.WorkloadReport{
		WorkloadByDay: days,
		Suggestions:   SuggestRedistribution(days, settings.MaxStudyHoursPerDay),
		Summary:       Summarize(days),
	}, nil
}

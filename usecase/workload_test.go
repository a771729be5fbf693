package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

// 2025-03-10 is a Monday.
func testToday(t *testing.T) model.Date {
	t.Helper()
	d, err := model.ParseDate("2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func allDaysPreferred() *model.UserSettings {
	return &model.UserSettings{
		UserID:              "user-1",
		MaxStudyHoursPerDay: 4.0,
		PreferredStudyDays: []string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
	}
}

func assignmentDue(id string, due model.Date, weight float64, difficulty model.Difficulty) *model.Assignment {
	return &model.Assignment{
		AssignmentID: id,
		UserID:       "user-1",
		ClassID:      "class-1",
		ClassName:    "Calculus",
		Name:         "Problem Set " + id,
		DueDate:      due.Time(),
		Weight:       weight,
		Difficulty:   difficulty,
	}
}

func TestEstimatedHours(t *testing.T) {
	tests := []struct {
		weight     float64
		difficulty model.Difficulty
		want       float64
	}{
		{1.0, model.DifficultyHard, 3.0},
		{1.0, model.DifficultyMedium, 2.0},
		{1.0, model.DifficultyEasy, 1.0},
		{2.0, model.DifficultyMedium, 4.0},
		{1.0, "", 2.0},  // missing difficulty defaults to medium
		{0, model.DifficultyMedium, 2.0}, // missing weight defaults to 1
	}

	for _, tt := range tests {
		a := &model.Assignment{Weight: tt.weight, Difficulty: tt.difficulty}
		if got := EstimatedHours(a); got != tt.want {
			t.Errorf("EstimatedHours(weight=%v, difficulty=%q) = %v, want %v",
				tt.weight, tt.difficulty, got, tt.want)
		}
	}
}

func TestBuildProjectionShape(t *testing.T) {
	today := testToday(t)
	days := BuildProjection(nil, nil, allDaysPreferred(), today)

	if len(days) != ProjectionDays {
		t.Fatalf("projection has %d days, want %d", len(days), ProjectionDays)
	}
	for i, day := range days {
		want := today.AddDays(i)
		if day.Date != want {
			t.Errorf("day %d has date %s, want %s", i, day.Date, want)
		}
		if day.DayName != want.Weekday().String() {
			t.Errorf("day %d has name %s, want %s", i, day.DayName, want.Weekday())
		}
	}
}

func TestBuildProjectionSkipsGradedAndPastDue(t *testing.T) {
	today := testToday(t)
	score := 85.0

	graded := assignmentDue("graded", today.AddDays(2), 1, model.DifficultyMedium)
	graded.Score = &score
	pastDue := assignmentDue("past", today.AddDays(-1), 1, model.DifficultyMedium)
	pending := assignmentDue("pending", today.AddDays(2), 1, model.DifficultyMedium)

	days := BuildProjection([]*model.Assignment{graded, pastDue, pending}, nil, allDaysPreferred(), today)

	var total int
	for _, day := range days {
		total += day.AssignmentCount
	}
	if total != 1 {
		t.Errorf("projection counts %d assignments, want 1", total)
	}
	if days[2].AssignmentCount != 1 || days[2].Assignments[0].AssignmentID != "pending" {
		t.Errorf("day 2 should carry the pending assignment, got %+v", days[2].Assignments)
	}
}

func TestWorkloadScoreAndOverloadBoundary(t *testing.T) {
	today := testToday(t)

	// weight 2, medium: exactly 4.0 estimated hours, equal to the budget.
	atLimit := assignmentDue("a1", today.AddDays(1), 2, model.DifficultyMedium)
	days := BuildProjection([]*model.Assignment{atLimit}, nil, allDaysPreferred(), today)

	day := days[1]
	if day.EstimatedHoursNeeded != 4.0 {
		t.Fatalf("estimated = %v, want 4.0", day.EstimatedHoursNeeded)
	}
	if day.WorkloadScore != 4.5 {
		t.Errorf("workload score = %v, want 4.5 (hours + 0.5 per assignment)", day.WorkloadScore)
	}
	if day.IsOverloaded {
		t.Error("a day at exactly the budget is not overloaded")
	}

	// Nudge past the budget: overload is strictly greater-than.
	over := assignmentDue("a2", today.AddDays(1), 2.1, model.DifficultyMedium)
	days = BuildProjection([]*model.Assignment{over}, nil, allDaysPreferred(), today)
	if !days[1].IsOverloaded {
		t.Error("a day above the budget must be overloaded")
	}
}

func TestPlannedStudyReducesAvailableHours(t *testing.T) {
	today := testToday(t)
	sessions := []*model.StudySession{
		{UserID: "user-1", Date: today.AddDays(2).Time(), DurationMinutes: 180},
		{UserID: "user-1", Date: today.AddDays(2).Time(), DurationMinutes: 90},
	}

	days := BuildProjection(nil, sessions, allDaysPreferred(), today)
	day := days[2]
	if day.PlannedStudyHours != 4.5 {
		t.Errorf("planned = %v, want 4.5", day.PlannedStudyHours)
	}
	if day.AvailableHours != 0 {
		t.Errorf("available = %v, want 0 (never negative)", day.AvailableHours)
	}
}

func TestSummarizeEmptySchedule(t *testing.T) {
	today := testToday(t)
	days := BuildProjection(nil, nil, allDaysPreferred(), today)

	summary := Summarize(days)
	if summary.BalanceScore != 100 {
		t.Errorf("empty schedule score = %v, want 100", summary.BalanceScore)
	}
	if summary.BalanceStatus != model.BalanceGood {
		t.Errorf("empty schedule status = %v, want good", summary.BalanceStatus)
	}
	if summary.OverloadedDays != 0 || summary.TotalAssignments != 0 {
		t.Errorf("empty schedule counted %d overloaded, %d assignments",
			summary.OverloadedDays, summary.TotalAssignments)
	}

	if suggestions := SuggestRedistribution(days, 4.0); len(suggestions) != 0 {
		t.Errorf("empty schedule produced %d suggestions, want 0", len(suggestions))
	}
}

func TestSummarizeOverloadLowersScore(t *testing.T) {
	today := testToday(t)
	balanced := BuildProjection(nil, nil, allDaysPreferred(), today)

	heavy := assignmentDue("h1", today.AddDays(3), 4, model.DifficultyHard)
	clustered := BuildProjection([]*model.Assignment{heavy}, nil, allDaysPreferred(), today)

	balancedScore := Summarize(balanced).BalanceScore
	clusteredScore := Summarize(clustered).BalanceScore
	if clusteredScore >= balancedScore {
		t.Errorf("overloaded schedule score %v should be below empty schedule score %v",
			clusteredScore, balancedScore)
	}
}

func TestSuggestRedistributionMovesExcessToEarlierDays(t *testing.T) {
	today := testToday(t)

	// Two hard weight-2 assignments on day 3: 12 estimated hours, 8 over budget.
	assignments := []*model.Assignment{
		assignmentDue("a1", today.AddDays(3), 2, model.DifficultyHard),
		assignmentDue("a2", today.AddDays(3), 2, model.DifficultyHard),
	}
	days := BuildProjection(assignments, nil, allDaysPreferred(), today)

	suggestions := SuggestRedistribution(days, 4.0)

	var redistribute *model.Suggestion
	for _, s := range suggestions {
		if s.Type == model.SuggestionRedistribute {
			redistribute = s
		}
	}
	if redistribute == nil {
		t.Fatal("expected a redistribute suggestion")
	}

	if redistribute.Severity != model.SeverityHigh {
		t.Errorf("excess of 8 over a 4-hour budget should be high severity, got %v", redistribute.Severity)
	}
	if redistribute.ExcessHours != 8.0 {
		t.Errorf("excess = %v, want 8.0", redistribute.ExcessHours)
	}

	// Donors walk backward from the overloaded day: day 2 first, then day 1.
	if len(redistribute.Redistribution) != 2 {
		t.Fatalf("got %d donor slots, want 2", len(redistribute.Redistribution))
	}
	if redistribute.Redistribution[0].Date != today.AddDays(2) {
		t.Errorf("first donor = %s, want %s", redistribute.Redistribution[0].Date, today.AddDays(2))
	}
	if redistribute.Redistribution[1].Date != today.AddDays(1) {
		t.Errorf("second donor = %s, want %s", redistribute.Redistribution[1].Date, today.AddDays(1))
	}
	for _, slot := range redistribute.Redistribution {
		if slot.SuggestedHours != 4.0 {
			t.Errorf("donor %s takes %v hours, want 4.0 (its full capacity)", slot.Date, slot.SuggestedHours)
		}
	}
}

func TestSuggestRedistributionRespectsPreferredDays(t *testing.T) {
	today := testToday(t)
	settings := &model.UserSettings{
		UserID:              "user-1",
		MaxStudyHoursPerDay: 4.0,
		PreferredStudyDays:  []string{"Tuesday"},
	}

	heavy := assignmentDue("a1", today.AddDays(3), 2, model.DifficultyHard) // Thursday, 6 hours
	days := BuildProjection([]*model.Assignment{heavy}, nil, settings, today)

	suggestions := SuggestRedistribution(days, 4.0)
	var redistribute *model.Suggestion
	for _, s := range suggestions {
		if s.Type == model.SuggestionRedistribute {
			redistribute = s
		}
	}
	if redistribute == nil {
		t.Fatal("expected a redistribute suggestion")
	}
	if len(redistribute.Redistribution) != 1 {
		t.Fatalf("got %d donor slots, want only the preferred Tuesday", len(redistribute.Redistribution))
	}
	if redistribute.Redistribution[0].DayName != "Tuesday" {
		t.Errorf("donor = %s, want Tuesday", redistribute.Redistribution[0].DayName)
	}
	if redistribute.Severity != model.SeverityMedium {
		t.Errorf("excess of 2 over a 4-hour budget should be medium severity, got %v", redistribute.Severity)
	}
}

func TestSuggestRedistributionNoDonorsIsSilent(t *testing.T) {
	today := testToday(t)

	// Overload on day 0: no earlier days exist, so nothing to suggest.
	heavy := assignmentDue("a1", today, 2, model.DifficultyHard)
	days := BuildProjection([]*model.Assignment{heavy}, nil, allDaysPreferred(), today)

	for _, s := range SuggestRedistribution(days, 4.0) {
		if s.Type == model.SuggestionRedistribute {
			t.Errorf("overload with no donors should produce no redistribute suggestion, got %+v", s)
		}
	}
}

func TestSuggestRedistributionSkipsBusyDonors(t *testing.T) {
	today := testToday(t)

	heavy := assignmentDue("a1", today.AddDays(2), 2, model.DifficultyHard) // 6 hours
	// 180 logged minutes leave day 1 with exactly 1.0 available hours,
	// which is not strictly above the donor floor.
	sessions := []*model.StudySession{
		{UserID: "user-1", Date: today.AddDays(1).Time(), DurationMinutes: 180},
	}
	days := BuildProjection([]*model.Assignment{heavy}, sessions, allDaysPreferred(), today)

	suggestions := SuggestRedistribution(days, 4.0)
	var redistribute *model.Suggestion
	for _, s := range suggestions {
		if s.Type == model.SuggestionRedistribute {
			redistribute = s
		}
	}
	if redistribute == nil {
		t.Fatal("expected a redistribute suggestion via day 0")
	}
	for _, slot := range redistribute.Redistribution {
		if slot.Date == today.AddDays(1) {
			t.Errorf("day with only 1.0 spare hours must not be a donor")
		}
	}
}

func TestDetectCluster(t *testing.T) {
	today := testToday(t)

	// Days 5-7 each carry one hard weight-1 assignment: 3.0 hours,
	// score 3.5. Window mean 3.5 > 0.8 x 4 and every day above the floor.
	assignments := []*model.Assignment{
		assignmentDue("c1", today.AddDays(5), 1, model.DifficultyHard),
		assignmentDue("c2", today.AddDays(6), 1, model.DifficultyHard),
		assignmentDue("c3", today.AddDays(7), 1, model.DifficultyHard),
	}
	days := BuildProjection(assignments, nil, allDaysPreferred(), today)

	suggestions := SuggestRedistribution(days, 4.0)
	var cluster *model.Suggestion
	for _, s := range suggestions {
		if s.Type == model.SuggestionClusterWarning {
			cluster = s
		}
	}
	if cluster == nil {
		t.Fatal("expected a cluster warning")
	}
	if cluster.StartDate != today.AddDays(5) || cluster.EndDate != today.AddDays(7) {
		t.Errorf("cluster window %s to %s, want %s to %s",
			cluster.StartDate, cluster.EndDate, today.AddDays(5), today.AddDays(7))
	}
	if cluster.Severity != model.SeverityMedium {
		t.Errorf("cluster severity = %v, want medium", cluster.Severity)
	}
}

// Fake stores for service-level tests.

type fakeAssignmentStore struct {
	assignments []*model.Assignment
	err         error
}

func (f *fakeAssignmentStore) GetPendingInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.Assignment, error) {
	return f.assignments, f.err
}

type fakeSessionStore struct {
	sessions []*model.StudySession
	byClass  map[string]StudyActivity
	err      error
}

func (f *fakeSessionStore) GetInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.StudySession, error) {
	return f.sessions, f.err
}

func (f *fakeSessionStore) SumByClass(ctx context.Context, userID, classID string, from, to model.Date) (int, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	activity := f.byClass[classID]
	return activity.Sessions, activity.Minutes, nil
}

type fakeSettingsStore struct {
	settings *model.UserSettings
	err      error
}

func (f *fakeSettingsStore) GetSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	return f.settings, f.err
}

func TestGetReportForDate(t *testing.T) {
	today := testToday(t)
	svc := NewWorkloadService(
		&fakeAssignmentStore{assignments: []*model.Assignment{
			assignmentDue("a1", today.AddDays(1), 1, model.DifficultyMedium),
			assignmentDue("a2", today.AddDays(4), 1, model.DifficultyEasy),
		}},
		&fakeSessionStore{},
		&fakeSettingsStore{settings: allDaysPreferred()},
	)

	report, err := svc.GetReportForDate(context.Background(), "user-1", today)
	if err != nil {
		t.Fatalf("GetReportForDate failed: %v", err)
	}
	if len(report.WorkloadByDay) != ProjectionDays {
		t.Errorf("report has %d days, want %d", len(report.WorkloadByDay), ProjectionDays)
	}
	if report.Summary.TotalAssignments != 2 {
		t.Errorf("summary counts %d assignments, want 2", report.Summary.TotalAssignments)
	}
}

func TestGetReportForDatePropagatesErrors(t *testing.T) {
	today := testToday(t)
	svc := NewWorkloadService(
		&fakeAssignmentStore{err: errors.New("boom")},
		&fakeSessionStore{},
		&fakeSettingsStore{settings: allDaysPreferred()},
	)

	if _, err := svc.GetReportForDate(context.Background(), "user-1", today); err == nil {
		t.Error("expected error when assignment store fails")
	}

	svc = NewWorkloadService(
		&fakeAssignmentStore{},
		&fakeSessionStore{},
		&fakeSettingsStore{err: errors.New("boom")},
	)
	if _, err := svc.GetReportForDate(context.Background(), "user-1", today); err == nil {
		t.Error("expected error when settings store fails")
	}
}

// Derived days must never be mutated by suggestion generation.
func TestSuggestRedistributionDoesNotMutateProjection(t *testing.T) {
	today := testToday(t)
	assignments := []*model.Assignment{
		assignmentDue("a1", today.AddDays(3), 2, model.DifficultyHard),
		assignmentDue("a2", today.AddDays(3), 2, model.DifficultyHard),
	}
	days := BuildProjection(assignments, nil, allDaysPreferred(), today)

	before := make([]float64, len(days))
	for i, day := range days {
		before[i] = day.AvailableHours
	}

	SuggestRedistribution(days, 4.0)

	for i, day := range days {
		if day.AvailableHours != before[i] {
			t.Errorf("day %d available hours changed from %v to %v", i, before[i], day.AvailableHours)
		}
	}
}

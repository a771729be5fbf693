package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"main/model"
)

func TestDefaultTestClassifier(t *testing.T) {
	tests := []struct {
		category string
		name     string
		want     bool
	}{
		{"", "Midterm Exam", true},
		{"quiz", "Chapter 4", true},
		{"", "FINAL project", true},
		{"homework", "Essay draft", false},
		{"", "Problem Set 3", false},
		{"Test", "review", true},
	}

	for _, tt := range tests {
		if got := DefaultTestClassifier(tt.category, tt.name); got != tt.want {
			t.Errorf("DefaultTestClassifier(%q, %q) = %v, want %v", tt.category, tt.name, got, tt.want)
		}
	}
}

func TestRiskBanding(t *testing.T) {
	today := testToday(t)

	tests := []struct {
		daysUntil int
		minutes   int
		want      model.RiskLevel
	}{
		{0, 0, model.RiskCritical},
		{1, 29, model.RiskCritical},
		{1, 30, model.RiskHigh},   // 30 minutes clears the critical band only
		{1, 45, model.RiskHigh},
		{1, 100, model.RiskLow},   // well studied, even if due tomorrow
		{3, 59, model.RiskHigh},
		{4, 59, model.RiskMedium},
		{5, 59, model.RiskMedium},
		{5, 60, model.RiskLow},
		{6, 0, model.RiskLow},
	}

	for _, tt := range tests {
		a := assignmentDue("a", today.AddDays(tt.daysUntil), 1, model.DifficultyMedium)
		lookup := func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error) {
			return StudyActivity{Sessions: 1, Minutes: tt.minutes}, nil
		}

		results := AssessRisks(context.Background(), []*model.Assignment{a}, lookup, today, RiskListingDays)
		if len(results) != 1 {
			t.Fatalf("daysUntil=%d: got %d results, want 1", tt.daysUntil, len(results))
		}
		if results[0].RiskLevel != tt.want {
			t.Errorf("daysUntil=%d minutes=%d: risk = %v, want %v",
				tt.daysUntil, tt.minutes, results[0].RiskLevel, tt.want)
		}
	}
}

func TestAssessRisksSortsBySeverityThenDeadline(t *testing.T) {
	today := testToday(t)

	assignments := []*model.Assignment{
		assignmentDue("low", today.AddDays(6), 1, model.DifficultyMedium),
		assignmentDue("critical", today.AddDays(1), 1, model.DifficultyMedium),
		assignmentDue("high-later", today.AddDays(3), 1, model.DifficultyMedium),
		assignmentDue("high-sooner", today.AddDays(2), 1, model.DifficultyMedium),
	}
	lookup := func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error) {
		return StudyActivity{}, nil
	}

	results := AssessRisks(context.Background(), assignments, lookup, today, RiskListingDays)
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	wantOrder := []string{"critical", "high-sooner", "high-later", "low"}
	for i, want := range wantOrder {
		if results[i].AssignmentID != want {
			t.Errorf("position %d = %s, want %s", i, results[i].AssignmentID, want)
		}
	}
}

func TestAssessRisksSkipsGradedAndOutOfWindow(t *testing.T) {
	today := testToday(t)
	score := 90.0

	graded := assignmentDue("graded", today.AddDays(1), 1, model.DifficultyMedium)
	graded.Score = &score
	farOut := assignmentDue("far", today.AddDays(RiskListingDays+1), 1, model.DifficultyMedium)
	overdue := assignmentDue("overdue", today.AddDays(-1), 1, model.DifficultyMedium)
	pending := assignmentDue("pending", today.AddDays(2), 1, model.DifficultyMedium)

	lookup := func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error) {
		return StudyActivity{}, nil
	}

	results := AssessRisks(context.Background(),
		[]*model.Assignment{graded, farOut, overdue, pending}, lookup, today, RiskListingDays)
	if len(results) != 1 || results[0].AssignmentID != "pending" {
		t.Errorf("got %d results, want only the pending one", len(results))
	}
}

func TestAssessRisksSkipsFailedLookups(t *testing.T) {
	today := testToday(t)

	broken := assignmentDue("broken", today.AddDays(1), 1, model.DifficultyMedium)
	broken.ClassID = "class-broken"
	fine := assignmentDue("fine", today.AddDays(2), 1, model.DifficultyMedium)

	lookup := func(ctx context.Context, classID string, from, to model.Date) (StudyActivity, error) {
		if classID == "class-broken" {
			return StudyActivity{}, errors.New("aggregation failed")
		}
		return StudyActivity{}, nil
	}

	results := AssessRisks(context.Background(), []*model.Assignment{broken, fine}, lookup, today, RiskListingDays)
	if len(results) != 1 || results[0].AssignmentID != "fine" {
		t.Errorf("a failed lookup must skip only that assignment, got %d results", len(results))
	}
}

// In-memory warning store mirroring the unique-index behavior.

type fakeWarningStore struct {
	warnings  []*model.Warning
	createErr error
}

func warningKey(userID, assignmentID string, wtype model.WarningType, day string) string {
	return fmt.Sprintf("%s|%s|%s|%s", userID, assignmentID, wtype, day)
}

func (f *fakeWarningStore) CreateWarning(ctx context.Context, warning *model.Warning) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := warningKey(warning.UserID, warning.AssignmentID, warning.Type, warning.Day)
	for _, existing := range f.warnings {
		if warningKey(existing.UserID, existing.AssignmentID, existing.Type, existing.Day) == key {
			return errors.New("duplicate key error")
		}
	}
	f.warnings = append(f.warnings, warning)
	return nil
}

func (f *fakeWarningStore) ExistsForAssignment(ctx context.Context, userID, assignmentID string, wtype model.WarningType, day string) (bool, error) {
	for _, w := range f.warnings {
		if w.UserID == userID && w.AssignmentID == assignmentID && w.Type == wtype && w.Day == day {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWarningStore) ExistsForDay(ctx context.Context, userID string, wtype model.WarningType, day string) (bool, error) {
	for _, w := range f.warnings {
		if w.UserID == userID && w.Type == wtype && w.Day == day {
			return true, nil
		}
	}
	return false, nil
}

type fakeStreakStore struct {
	streak *model.Streak
	err    error
}

func (f *fakeStreakStore) GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error) {
	return f.streak, f.err
}

func newTestRiskService(assignments []*model.Assignment, activity map[string]StudyActivity, streak *model.Streak) (*RiskService, *fakeWarningStore) {
	warnings := &fakeWarningStore{}
	svc := NewRiskService(
		&fakeAssignmentStore{assignments: assignments},
		&fakeSessionStore{byClass: activity},
		warnings,
		&fakeStreakStore{streak: streak},
	)
	return svc, warnings
}

func TestGenerateWarningsForUrgentAssignments(t *testing.T) {
	today := testToday(t)
	urgent := assignmentDue("urgent", today.AddDays(2), 1, model.DifficultyMedium)

	svc, store := newTestRiskService([]*model.Assignment{urgent}, nil, nil)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatalf("GenerateWarnings failed: %v", err)
	}

	if len(created) != 1 {
		t.Fatalf("created %d warnings, want 1", len(created))
	}
	w := created[0]
	if w.Type != model.WarningProcrastination {
		t.Errorf("type = %v, want procrastination", w.Type)
	}
	if w.Severity != model.WarningSeverityUrgent {
		t.Errorf("severity = %v, want urgent (due within 3 days)", w.Severity)
	}
	if w.Day != today.String() {
		t.Errorf("day = %s, want %s", w.Day, today)
	}
	if len(store.warnings) != 1 {
		t.Errorf("store holds %d warnings, want 1", len(store.warnings))
	}
}

func TestGenerateWarningsForUpcomingTests(t *testing.T) {
	today := testToday(t)
	// Due in 5 days: beyond the urgent window, but test-like.
	exam := assignmentDue("exam", today.AddDays(5), 1, model.DifficultyMedium)
	exam.Name = "Midterm Exam"
	essay := assignmentDue("essay", today.AddDays(5), 1, model.DifficultyMedium)
	essay.Name = "Essay Draft"

	svc, _ := newTestRiskService([]*model.Assignment{exam, essay}, nil, nil)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}

	if len(created) != 1 {
		t.Fatalf("created %d warnings, want only the exam's", len(created))
	}
	if created[0].AssignmentID != "exam" {
		t.Errorf("warned about %s, want exam", created[0].AssignmentID)
	}
	if created[0].Severity != model.WarningSeverityHigh {
		t.Errorf("severity = %v, want high (test-like, not urgent)", created[0].Severity)
	}
}

func TestGenerateWarningsSkipsStudiedClasses(t *testing.T) {
	today := testToday(t)
	urgent := assignmentDue("urgent", today.AddDays(1), 1, model.DifficultyMedium)

	activity := map[string]StudyActivity{
		"class-1": {Sessions: 2, Minutes: 90},
	}
	svc, _ := newTestRiskService([]*model.Assignment{urgent}, activity, nil)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Errorf("created %d warnings, want 0 for a studied class", len(created))
	}
}

func TestGenerateWarningsIsIdempotentPerDay(t *testing.T) {
	today := testToday(t)
	urgent := assignmentDue("urgent", today.AddDays(2), 1, model.DifficultyMedium)

	svc, store := newTestRiskService([]*model.Assignment{urgent}, nil, nil)

	first, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != 1 || len(second) != 0 {
		t.Errorf("runs created %d then %d warnings, want 1 then 0", len(first), len(second))
	}
	if len(store.warnings) != 1 {
		t.Errorf("store holds %d warnings after two runs, want 1", len(store.warnings))
	}

	// A new day is a new idempotence key.
	third, err := svc.GenerateWarnings(context.Background(), "user-1", today.AddDays(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(third) != 1 {
		t.Errorf("next-day run created %d warnings, want 1", len(third))
	}
}

func TestStreakReminderWhenStreakAtRisk(t *testing.T) {
	today := testToday(t)
	streak := &model.Streak{
		UserID:           "user-1",
		Type:             model.StreakStudy,
		CurrentStreak:    6,
		LongestStreak:    10,
		LastActivityDate: today.AddDays(-1).Time(),
	}

	svc, _ := newTestRiskService(nil, nil, streak)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}

	if len(created) != 1 {
		t.Fatalf("created %d warnings, want 1 streak reminder", len(created))
	}
	if created[0].Type != model.WarningStreakReminder {
		t.Errorf("type = %v, want streak reminder", created[0].Type)
	}
}

func TestNoStreakReminderAfterTodaysActivity(t *testing.T) {
	today := testToday(t)
	streak := &model.Streak{
		UserID:           "user-1",
		Type:             model.StreakStudy,
		CurrentStreak:    6,
		LastActivityDate: today.Time(),
	}

	svc, _ := newTestRiskService(nil, nil, streak)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Errorf("created %d warnings, want 0 when the user already studied today", len(created))
	}
}

func TestNoStreakReminderWithoutStreak(t *testing.T) {
	today := testToday(t)

	svc, _ := newTestRiskService(nil, nil, nil)
	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Errorf("created %d warnings, want 0 with no streak", len(created))
	}
}

func TestStreakReminderOncePerDay(t *testing.T) {
	today := testToday(t)
	streak := &model.Streak{
		UserID:           "user-1",
		Type:             model.StreakStudy,
		CurrentStreak:    3,
		LastActivityDate: today.AddDays(-1).Time(),
	}

	svc, store := newTestRiskService(nil, nil, streak)
	if _, err := svc.GenerateWarnings(context.Background(), "user-1", today); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GenerateWarnings(context.Background(), "user-1", today); err != nil {
		t.Fatal(err)
	}
	if len(store.warnings) != 1 {
		t.Errorf("store holds %d reminders after two runs, want 1", len(store.warnings))
	}
}

func TestCustomClassifier(t *testing.T) {
	today := testToday(t)
	prufung := assignmentDue("p1", today.AddDays(5), 1, model.DifficultyMedium)
	prufung.Name = "Klausur Analysis"

	svc, _ := newTestRiskService([]*model.Assignment{prufung}, nil, nil)
	svc.Classify = func(category, name string) bool {
		return name == "Klausur Analysis"
	}

	created, err := svc.GenerateWarnings(context.Background(), "user-1", today)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 {
		t.Errorf("custom classifier should flag the assignment, created %d warnings", len(created))
	}
}

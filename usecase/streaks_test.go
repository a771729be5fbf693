package usecase

import (
	"context"
	"fmt"
	"testing"

	"main/model"
)

type fakeStreakRepo struct {
	streaks map[string]*model.Streak
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{streaks: make(map[string]*model.Streak)}
}

func streakRepoKey(userID string, streakType model.StreakType) string {
	return fmt.Sprintf("%s|%s", userID, streakType)
}

func (f *fakeStreakRepo) GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error) {
	streak, ok := f.streaks[streakRepoKey(userID, streakType)]
	if !ok {
		return nil, nil
	}
	copied := *streak
	return &copied, nil
}

func (f *fakeStreakRepo) UpsertStreak(ctx context.Context, streak *model.Streak) error {
	copied := *streak
	f.streaks[streakRepoKey(streak.UserID, streak.Type)] = &copied
	return nil
}

func TestRecordActivityStartsStreak(t *testing.T) {
	today := testToday(t)
	svc := NewStreakService(newFakeStreakRepo())

	streak, err := svc.RecordActivity(context.Background(), "user-1", model.StreakStudy, today)
	if err != nil {
		t.Fatal(err)
	}
	if streak.CurrentStreak != 1 || streak.LongestStreak != 1 {
		t.Errorf("new streak = %d/%d, want 1/1", streak.CurrentStreak, streak.LongestStreak)
	}
}

func TestRecordActivityExtendsOnConsecutiveDays(t *testing.T) {
	today := testToday(t)
	svc := NewStreakService(newFakeStreakRepo())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today.AddDays(i)); err != nil {
			t.Fatal(err)
		}
	}

	streak, err := svc.GetStreak(ctx, "user-1", model.StreakStudy)
	if err != nil {
		t.Fatal(err)
	}
	if streak.CurrentStreak != 5 || streak.LongestStreak != 5 {
		t.Errorf("after 5 consecutive days: %d/%d, want 5/5", streak.CurrentStreak, streak.LongestStreak)
	}
}

func TestRecordActivitySameDayIsNoOp(t *testing.T) {
	today := testToday(t)
	svc := NewStreakService(newFakeStreakRepo())
	ctx := context.Background()

	if _, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today); err != nil {
		t.Fatal(err)
	}
	streak, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today)
	if err != nil {
		t.Fatal(err)
	}
	if streak.CurrentStreak != 1 {
		t.Errorf("same-day activity changed streak to %d, want 1", streak.CurrentStreak)
	}
}

func TestRecordActivityGapResetsButKeepsLongest(t *testing.T) {
	today := testToday(t)
	svc := NewStreakService(newFakeStreakRepo())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today.AddDays(i)); err != nil {
			t.Fatal(err)
		}
	}

	// Two-day gap breaks the run.
	streak, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today.AddDays(6))
	if err != nil {
		t.Fatal(err)
	}
	if streak.CurrentStreak != 1 {
		t.Errorf("after a gap current = %d, want 1", streak.CurrentStreak)
	}
	if streak.LongestStreak != 4 {
		t.Errorf("longest = %d, want the high-water mark of 4", streak.LongestStreak)
	}
}

func TestStreakTypesAreIndependent(t *testing.T) {
	today := testToday(t)
	svc := NewStreakService(newFakeStreakRepo())
	ctx := context.Background()

	if _, err := svc.RecordActivity(ctx, "user-1", model.StreakStudy, today); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordActivity(ctx, "user-1", model.StreakLogin, today); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordActivity(ctx, "user-1", model.StreakLogin, today.AddDays(1)); err != nil {
		t.Fatal(err)
	}

	study, _ := svc.GetStreak(ctx, "user-1", model.StreakStudy)
	login, _ := svc.GetStreak(ctx, "user-1", model.StreakLogin)
	if study.CurrentStreak != 1 || login.CurrentStreak != 2 {
		t.Errorf("study=%d login=%d, want 1 and 2", study.CurrentStreak, login.CurrentStreak)
	}
}

func TestGetStreakReturnsZeroValueWhenMissing(t *testing.T) {
	svc := NewStreakService(newFakeStreakRepo())

	streak, err := svc.GetStreak(context.Background(), "user-1", model.StreakStudy)
	if err != nil {
		t.Fatal(err)
	}
	if streak == nil {
		t.Fatal("expected a zero-value streak, got nil")
	}
	if streak.CurrentStreak != 0 || streak.LongestStreak != 0 {
		t.Errorf("missing streak = %d/%d, want 0/0", streak.CurrentStreak, streak.LongestStreak)
	}
}

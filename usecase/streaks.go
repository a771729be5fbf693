package usecase

import (
	"context"
	"time"

	"main/model"
)

// StreakRepository is what the streak logic needs from storage.
type StreakRepository interface {
	GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error)
	UpsertStreak(ctx context.Context, streak *model.Streak) error
}

type StreakService struct {
	repo StreakRepository
}

func NewStreakService(repo StreakRepository) *StreakService {
	return &StreakService{repo: repo}
}

// RecordActivity advances the streak for a day of activity: a repeat of
// the last recorded day is a no-op, the day immediately after extends
// the streak, and anything later restarts it at 1. The longest streak
// high-water mark only ever grows.
func (svc *StreakService) RecordActivity(ctx context.Context, userID string, streakType model.StreakType, day model.Date) (*model.Streak, error) {
	streak, err := svc.repo.GetStreak(ctx, userID, streakType)
	if err != nil {
		return nil, err
	}

	if streak == nil {
		streak = &model.Streak{
			UserID:           userID,
			Type:             streakType,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: day.Time(),
		}
		return streak, svc.repo.UpsertStreak(ctx, streak)
	}

	last := streak.LastActivityDay()
	switch last.DaysUntil(day) {
	case 0:
		return streak, nil
	case 1:
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = day.Time()
	streak.UpdatedAt = time.Now()

	return streak, svc.repo.UpsertStreak(ctx, streak)
}

func (svc *StreakService) GetStreak(ctx context.Context, userID string, streakType model.StreakType) (*model.Streak, error) {
	streak, err := svc.repo.GetStreak(ctx, userID, streakType)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &model.Streak{UserID: userID, Type: streakType}, nil
	}
	return streak, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

const maxSessionMinutes = 24 * 60

type StudySessionsService struct {
	repo    *repository.StudySessionsRepo
	streaks *StreakService
}

func NewStudySessionsService(repo *repository.StudySessionsRepo, streaks *StreakService) *StudySessionsService {
	return &StudySessionsService{repo: repo, streaks: streaks}
}

// LogSession stores a study session and advances the study streak. A
// streak update failure is logged but never loses the session itself.
func (svc *StudySessionsService) LogSession(ctx context.Context, session *model.StudySession) error {
	if session.UserID == "" {
		return errors.New("user ID is required")
	}
	if session.DurationMinutes <= 0 {
		return errors.New("duration must be positive")
	}
	if session.DurationMinutes > maxSessionMinutes {
		return errors.New("duration cannot exceed 24 hours")
	}
	if session.Date.IsZero() {
		session.Date = model.Today().Time()
	}

	if session.SessionID == "" {
		session.SessionID = uuid.New().String()
	}
	session.CreatedAt = time.Now()

	if err := svc.repo.CreateSession(ctx, session); err != nil {
		return err
	}

	if _, err := svc.streaks.RecordActivity(ctx, session.UserID, model.StreakStudy, session.Day()); err != nil {
		log.Printf("study: streak update failed for user %s: %v", session.UserID, err)
	}
	return nil
}

func (svc *StudySessionsService) GetRecentSessions(ctx context.Context, userID string, limit int64) ([]*model.StudySession, error) {
	return svc.repo.GetUserSessions(ctx, userID, limit)
}

// WeeklySummary sums study activity over the trailing seven days.
func (svc *StudySessionsService) WeeklySummary(ctx context.Context, userID string) (sessions int, minutes int, err error) {
	today := model.Today()
	return svc.repo.SumAll(ctx, userID, today.AddDays(-7), today)
}

func (svc *StudySessionsService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	return svc.repo.DeleteSession(ctx, sessionID, userID)
}

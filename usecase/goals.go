package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

type GoalsService struct {
	repo *repository.GoalsRepo
}

func NewGoalsService(repo *repository.GoalsRepo) *GoalsService {
	return &GoalsService{repo: repo}
}

func validateGoalPriority(p model.GoalPriority) error {
	switch p {
	case model.GoalPriorityLow, model.GoalPriorityMedium, model.GoalPriorityHigh, "":
		return nil
	default:
		return errors.New("invalid priority level")
	}
}

func goalPriorityWeight(p model.GoalPriority) int {
	switch p {
	case model.GoalPriorityHigh:
		return 3
	case model.GoalPriorityMedium:
		return 2
	case model.GoalPriorityLow:
		return 1
	default:
		return 0
	}
}

func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if goal.UserID == "" {
		return errors.New("user ID is required")
	}
	if goal.Title == "" {
		return errors.New("goal title is required")
	}
	if err := validateGoalPriority(goal.Priority); err != nil {
		return err
	}
	if !goal.TargetDate.IsZero() && goal.TargetDate.Before(time.Now()) {
		return errors.New("target date cannot be in the past")
	}

	if goal.GoalID == "" {
		goal.GoalID = uuid.New().String()
	}
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	return svc.repo.CreateGoal(ctx, goal)
}

// GetUserGoals returns goals sorted incomplete first, then by priority,
// then by nearest target date.
func (svc *GoalsService) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	goals, err := svc.repo.GetUserGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Complete != goals[j].Complete {
			return !goals[i].Complete
		}
		if goals[i].Priority != goals[j].Priority {
			return goalPriorityWeight(goals[i].Priority) > goalPriorityWeight(goals[j].Priority)
		}
		if !goals[i].TargetDate.IsZero() && !goals[j].TargetDate.IsZero() {
			return goals[i].TargetDate.Before(goals[j].TargetDate)
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) (*model.Goal, error) {
	existing, err := svc.repo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("goal not found")
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Priority != "" {
		if err := validateGoalPriority(updates.Priority); err != nil {
			return nil, err
		}
		existing.Priority = updates.Priority
	}
	if !updates.TargetDate.IsZero() {
		existing.TargetDate = updates.TargetDate
	}
	existing.UpdatedAt = time.Now()

	if err := svc.repo.UpdateGoal(ctx, goalID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *GoalsService) ToggleComplete(ctx context.Context, goalID, userID string) (*model.Goal, error) {
	existing, err := svc.repo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("goal not found")
	}

	existing.Complete = !existing.Complete
	if existing.Complete {
		existing.CompletedAt = time.Now()
	} else {
		existing.CompletedAt = time.Time{}
	}
	existing.UpdatedAt = time.Now()

	if err := svc.repo.UpdateGoal(ctx, goalID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	return svc.repo.DeleteGoal(ctx, goalID, userID)
}

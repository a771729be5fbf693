package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

type AssignmentsService struct {
	repo    *repository.AssignmentsRepo
	classes *repository.ClassesRepo
}

func NewAssignmentsService(repo *repository.AssignmentsRepo, classes *repository.ClassesRepo) *AssignmentsService {
	return &AssignmentsService{repo: repo, classes: classes}
}

func validateDifficulty(d model.Difficulty) error {
	switch d {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return nil
	case "": // empty difficulty defaults to medium
		return nil
	default:
		return errors.New("invalid difficulty level")
	}
}

// CreateAssignment defaults the optional fields (weight 1, difficulty
// medium) and denormalizes the class name onto the assignment so
// projections never need a second lookup.
func (svc *AssignmentsService) CreateAssignment(ctx context.Context, assignment *model.Assignment) error {
	if assignment.UserID == "" {
		return errors.New("user ID is required")
	}
	if assignment.Name == "" {
		return errors.New("assignment name is required")
	}
	if assignment.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	if err := validateDifficulty(assignment.Difficulty); err != nil {
		return err
	}
	if assignment.Difficulty == "" {
		assignment.Difficulty = model.DifficultyMedium
	}
	if assignment.Weight <= 0 {
		assignment.Weight = model.DefaultWeight
	}

	if assignment.ClassID != "" {
		class, err := svc.classes.GetClassByID(ctx, assignment.UserID, assignment.ClassID)
		if err != nil {
			return err
		}
		if class == nil {
			return errors.New("class not found")
		}
		assignment.ClassName = class.Name
	}

	if assignment.AssignmentID == "" {
		assignment.AssignmentID = uuid.New().String()
	}
	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	return svc.repo.CreateAssignment(ctx, assignment)
}

func (svc *AssignmentsService) UpdateAssignment(ctx context.Context, assignmentID, userID string, updates *model.Assignment) (*model.Assignment, error) {
	existing, err := svc.repo.GetAssignmentByID(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("assignment not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Category != "" {
		existing.Category = updates.Category
	}
	if !updates.DueDate.IsZero() {
		existing.DueDate = updates.DueDate
	}
	if updates.Weight > 0 {
		existing.Weight = updates.Weight
	}
	if updates.Difficulty != "" {
		if err := validateDifficulty(updates.Difficulty); err != nil {
			return nil, err
		}
		existing.Difficulty = updates.Difficulty
	}
	if updates.ClassID != "" && updates.ClassID != existing.ClassID {
		class, err := svc.classes.GetClassByID(ctx, userID, updates.ClassID)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, errors.New("class not found")
		}
		existing.ClassID = class.ClassID
		existing.ClassName = class.Name
	}

	if err := svc.repo.UpdateAssignment(ctx, assignmentID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// RecordGrade stores a score, marking the assignment graded.
func (svc *AssignmentsService) RecordGrade(ctx context.Context, assignmentID, userID string, score float64, maxScore *float64) error {
	if score < 0 {
		return errors.New("score cannot be negative")
	}
	if maxScore != nil && *maxScore <= 0 {
		return errors.New("max score must be positive")
	}
	return svc.repo.SetScore(ctx, assignmentID, userID, score, maxScore)
}

func (svc *AssignmentsService) DeleteAssignment(ctx context.Context, assignmentID, userID string) error {
	return svc.repo.DeleteAssignment(ctx, assignmentID, userID)
}

func (svc *AssignmentsService) GetUserAssignments(ctx context.Context, userID string) ([]*model.Assignment, error) {
	return svc.repo.GetUserAssignments(ctx, userID)
}

// GetUpcoming returns pending assignments due within the next `days`
// calendar days.
func (svc *AssignmentsService) GetUpcoming(ctx context.Context, userID string, days int) ([]*model.Assignment, error) {
	if days <= 0 {
		return nil, errors.New("days must be positive")
	}
	today := model.Today()
	return svc.repo.GetPendingInRange(ctx, userID, today, today.AddDays(days))
}

func (svc *AssignmentsService) GetGraded(ctx context.Context, userID string) ([]*model.Assignment, error) {
	return svc.repo.GetGradedAssignments(ctx, userID)
}

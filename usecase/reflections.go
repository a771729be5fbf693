package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

const (
	maxReflectionTags   = 5
	maxReflectionTagLen = 20
)

type ReflectionsService struct {
	repo *repository.ReflectionsRepo
}

func NewReflectionsService(repo *repository.ReflectionsRepo) *ReflectionsService {
	return &ReflectionsService{repo: repo}
}

func validateReflectionTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	var valid []string
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if len(tag) > maxReflectionTagLen {
			return nil, errors.New("tag cannot exceed 20 characters")
		}
		valid = append(valid, tag)
	}
	if len(valid) > maxReflectionTags {
		return nil, errors.New("cannot exceed 5 tags per reflection")
	}
	return valid, nil
}

func (svc *ReflectionsService) CreateReflection(ctx context.Context, reflection *model.Reflection) error {
	if reflection.UserID == "" {
		return errors.New("user ID is required")
	}
	if reflection.Title == "" {
		return errors.New("reflection title is required")
	}

	tags, err := validateReflectionTags(reflection.Tags)
	if err != nil {
		return err
	}
	reflection.Tags = tags

	if reflection.Date.IsZero() {
		reflection.Date = model.Today().Time()
	}
	if reflection.ReflectionID == "" {
		reflection.ReflectionID = uuid.New().String()
	}
	now := time.Now()
	reflection.CreatedAt = now
	reflection.UpdatedAt = now

	return svc.repo.CreateReflection(ctx, reflection)
}

func (svc *ReflectionsService) GetUserReflections(ctx context.Context, userID string) ([]*model.Reflection, error) {
	return svc.repo.GetUserReflections(ctx, userID)
}

func (svc *ReflectionsService) GetByClass(ctx context.Context, userID, classID string) ([]*model.Reflection, error) {
	return svc.repo.GetByClass(ctx, userID, classID)
}

// SearchReflections filters by case-insensitive substring over title,
// content and tags.
func (svc *ReflectionsService) SearchReflections(ctx context.Context, userID, query string) ([]*model.Reflection, error) {
	reflections, err := svc.repo.GetUserReflections(ctx, userID)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return []*model.Reflection{}, nil
	}

	query = strings.ToLower(query)
	var results []*model.Reflection
	for _, r := range reflections {
		if strings.Contains(strings.ToLower(r.Title), query) ||
			strings.Contains(strings.ToLower(r.Content), query) {
			results = append(results, r)
			continue
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				results = append(results, r)
				break
			}
		}
	}
	return results, nil
}

func (svc *ReflectionsService) UpdateReflection(ctx context.Context, reflectionID, userID string, updates *model.Reflection) (*model.Reflection, error) {
	existing, err := svc.repo.GetReflectionByID(ctx, userID, reflectionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("reflection not found")
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Content != "" {
		existing.Content = updates.Content
	}
	if updates.Mood != "" {
		existing.Mood = updates.Mood
	}
	if updates.Tags != nil {
		tags, err := validateReflectionTags(updates.Tags)
		if err != nil {
			return nil, err
		}
		existing.Tags = tags
	}
	if !updates.Date.IsZero() {
		existing.Date = updates.Date
	}
	existing.UpdatedAt = time.Now()

	if err := svc.repo.UpdateReflection(ctx, reflectionID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *ReflectionsService) DeleteReflection(ctx context.Context, reflectionID, userID string) error {
	return svc.repo.DeleteReflection(ctx, reflectionID, userID)
}

package service

import (
	"context"
	"fmt"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository"
)

var ErrActivityNotFound = repository.ErrActivityNotFound

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	List(ctx context.Context, includeUnavailable bool) ([]domain.Activity, error)
	ListForAccessKey(ctx context.Context, accessKey string) ([]domain.Activity, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	SetAvailability(ctx context.Context, id uint, available bool) error
	Delete(ctx context.Context, id uint) error
}

type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
	}
}

// List returns bookable activities. With an access key, activities the
// family is already signed up for are included even when unavailable.
func (s *ActivityService) List(ctx context.Context, accessKey string) ([]domain.Activity, error) {
	if accessKey != "" {
		activities, err := s.repo.ListForAccessKey(ctx, accessKey)
		if err != nil {
			return nil, fmt.Errorf("s.repo.ListForAccessKey -> %w", err)
		}
		return activities, nil
	}

	activities, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) ListAll(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}

func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update applies a partial edit; only the submitted fields change.
func (s *ActivityService) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if isNotFound(err) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

// SetAvailability is the admin override of the cached flag. For
// capacity-limited activities the gate recomputes it on the next signup
// mutation; for unlimited ones the override sticks.
func (s *ActivityService) SetAvailability(ctx context.Context, id uint, available bool) error {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		if isNotFound(err) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("s.repo.SetAvailability -> %w", err)
	}

	return nil
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

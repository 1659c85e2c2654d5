package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	List(ctx context.Context, includeUnavailable bool) ([]dao.Activity, error)
	ListForAccessKey(ctx context.Context, accessKey string) ([]dao.Activity, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	SetAvailability(ctx context.Context, id uint, available bool) error
	Delete(ctx context.Context, id uint) error
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:              a.ID,
		Name:            a.Name,
		SessionTime:     a.SessionTime,
		Cost:            a.Cost,
		Description:     a.Description,
		MaxParticipants: a.MaxParticipants,
		AllowedAges:     a.AllowedAges,
		Available:       a.Available,
		CreatedAt:       a.CreatedAt,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:              a.ID,
		Name:            a.Name,
		SessionTime:     a.SessionTime,
		Cost:            a.Cost,
		Description:     a.Description,
		MaxParticipants: a.MaxParticipants,
		AllowedAges:     a.AllowedAges,
		Available:       a.Available,
		CreatedAt:       a.CreatedAt,
	}
}

func (r *ActivityRepository) daosToDomain(activities []dao.Activity) []domain.Activity {
	result := make([]domain.Activity, len(activities))
	for i, a := range activities {
		result[i] = r.daoToDomain(a)
	}
	return result
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(activity), nil
}

func (r *ActivityRepository) List(ctx context.Context, includeUnavailable bool) ([]domain.Activity, error) {
	activities, err := r.dao.List(ctx, includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(activities), nil
}

func (r *ActivityRepository) ListForAccessKey(ctx context.Context, accessKey string) ([]domain.Activity, error) {
	activities, err := r.dao.ListForAccessKey(ctx, accessKey)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListForAccessKey -> %w", err)
	}

	return r.daosToDomain(activities), nil
}

func (r *ActivityRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := r.dao.Update(ctx, id, fields); err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) SetAvailability(ctx context.Context, id uint, available bool) error {
	if err := r.dao.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("r.dao.SetAvailability -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

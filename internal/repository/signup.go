package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository/dao"
)

var ErrSignupNotFound = dao.ErrSignupNotFound

type SignupDAO interface {
	Upsert(ctx context.Context, activityID, familyID uint, children []string) (dao.Signup, dao.SignupOutcome, error)
	ListAll(ctx context.Context) ([]dao.SignupJoined, error)
	ListByAccessKey(ctx context.Context, accessKey string) ([]dao.SignupJoined, error)
	ListByActivityID(ctx context.Context, activityID uint) ([]dao.Signup, error)
}

type SignupRepository struct {
	dao SignupDAO
}

func NewSignupRepository(dao SignupDAO) *SignupRepository {
	return &SignupRepository{
		dao: dao,
	}
}

func (r *SignupRepository) joinedToDomain(s dao.SignupJoined) domain.Signup {
	return domain.Signup{
		ID:           s.ID,
		ActivityID:   s.ActivityID,
		FamilyID:     s.FamilyID,
		Children:     s.Children,
		CreatedAt:    s.CreatedAt,
		ActivityName: s.ActivityName,
		SessionTime:  s.SessionTime,
		Cost:         s.Cost,
		BookingRef:   s.BookingRef,
	}
}

// Upsert applies the signup state machine and reports what happened.
func (r *SignupRepository) Upsert(ctx context.Context, activityID, familyID uint, children []string) (domain.SignupResult, error) {
	signup, outcome, err := r.dao.Upsert(ctx, activityID, familyID, children)
	if err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return domain.SignupResult{}, ErrActivityNotFound
		}
		return domain.SignupResult{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return domain.SignupResult{
		ID:      signup.ID,
		Outcome: domain.SignupOutcome(outcome),
	}, nil
}

func (r *SignupRepository) ListAll(ctx context.Context) ([]domain.Signup, error) {
	rows, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	signups := make([]domain.Signup, len(rows))
	for i, row := range rows {
		signups[i] = r.joinedToDomain(row)
	}

	return signups, nil
}

func (r *SignupRepository) ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Signup, error) {
	rows, err := r.dao.ListByAccessKey(ctx, accessKey)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByAccessKey -> %w", err)
	}

	signups := make([]domain.Signup, len(rows))
	for i, row := range rows {
		signups[i] = r.joinedToDomain(row)
	}

	return signups, nil
}

func (r *SignupRepository) ListByActivityID(ctx context.Context, activityID uint) ([]domain.Signup, error) {
	rows, err := r.dao.ListByActivityID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByActivityID -> %w", err)
	}

	signups := make([]domain.Signup, len(rows))
	for i, row := range rows {
		signups[i] = domain.Signup{
			ID:         row.ID,
			ActivityID: row.ActivityID,
			FamilyID:   row.FamilyID,
			Children:   row.Children,
			CreatedAt:  row.CreatedAt,
		}
	}

	return signups, nil
}

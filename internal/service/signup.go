package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/baolive/camping-api/internal/domain"
)

type SignupRepository interface {
	Upsert(ctx context.Context, activityID, familyID uint, children []string) (domain.SignupResult, error)
	ListAll(ctx context.Context) ([]domain.Signup, error)
	ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Signup, error)
	ListByActivityID(ctx context.Context, activityID uint) ([]domain.Signup, error)
}

type SignupService struct {
	repo         SignupRepository
	familyRepo   FamilyRepository
	activityRepo ActivityRepository
}

func NewSignupService(repo SignupRepository, familyRepo FamilyRepository, activityRepo ActivityRepository) *SignupService {
	return &SignupService{
		repo:         repo,
		familyRepo:   familyRepo,
		activityRepo: activityRepo,
	}
}

// Upsert resolves the family behind the access key and reconciles its
// participation in the activity. Participant names are taken as given:
// they are not checked against current members or the activity's age
// rules here.
func (s *SignupService) Upsert(ctx context.Context, activityID uint, accessKey string, children []string) (domain.SignupResult, error) {
	family, err := s.familyRepo.FindByAccessKey(ctx, accessKey)
	if err != nil {
		if isNotFound(err) {
			return domain.SignupResult{}, ErrFamilyNotFound
		}
		return domain.SignupResult{}, fmt.Errorf("s.familyRepo.FindByAccessKey -> %w", err)
	}

	result, err := s.repo.Upsert(ctx, activityID, family.ID, children)
	if err != nil {
		if isNotFound(err) {
			return domain.SignupResult{}, ErrActivityNotFound
		}
		return domain.SignupResult{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return result, nil
}

func (s *SignupService) ListAll(ctx context.Context) ([]domain.Signup, error) {
	signups, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return signups, nil
}

func (s *SignupService) ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Signup, error) {
	signups, err := s.repo.ListByAccessKey(ctx, accessKey)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByAccessKey -> %w", err)
	}

	return signups, nil
}

// Participants builds the public roster: every available activity with
// the flattened, sorted list of everyone enrolled.
func (s *SignupService) Participants(ctx context.Context) ([]domain.ActivityParticipants, error) {
	activities, err := s.activityRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("s.activityRepo.List -> %w", err)
	}

	signups, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	byActivity := make(map[uint][]string)
	for _, signup := range signups {
		byActivity[signup.ActivityID] = append(byActivity[signup.ActivityID], signup.Children...)
	}

	results := make([]domain.ActivityParticipants, len(activities))
	for i, activity := range activities {
		names := byActivity[activity.ID]
		if names == nil {
			names = []string{}
		}
		sort.Strings(names)

		results[i] = domain.ActivityParticipants{
			ID:              activity.ID,
			Name:            activity.Name,
			SessionTime:     activity.SessionTime,
			Description:     activity.Description,
			MaxParticipants: activity.MaxParticipants,
			Participants:    names,
		}
	}

	return results, nil
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository"
)

var (
	ErrFamilyNotFound   = repository.ErrFamilyNotFound
	ErrBookingRefExists = repository.ErrBookingRefExists
)

type FamilyRepository interface {
	Create(ctx context.Context, family domain.Family) (domain.Family, error)
	ReplaceRegistration(ctx context.Context, id uint, family domain.Family) error
	FindByID(ctx context.Context, id uint) (domain.Family, error)
	FindByBookingRef(ctx context.Context, bookingRef string) (domain.Family, error)
	FindByAccessKey(ctx context.Context, accessKey string) (domain.Family, error)
	ExistsByBookingRef(ctx context.Context, bookingRef string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Family, error)
	Delete(ctx context.Context, id uint) error
	Balance(ctx context.Context, familyID uint) (domain.Balance, error)
}

type FamilyService struct {
	repo FamilyRepository
}

func NewFamilyService(repo FamilyRepository) *FamilyService {
	return &FamilyService{
		repo: repo,
	}
}

// newAccessKey returns the opaque secret gating a family's self-service
// access. Random, never derived from names or the public booking ref,
// and generated exactly once per family.
func newAccessKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Register creates a family, or fully re-registers an existing one under
// the same booking ref: family details are rewritten and the member set
// replaced wholesale. Signups and payments are left alone, so names that
// disappear from the member list stay in historical signups. The access
// key survives re-registration unchanged.
func (s *FamilyService) Register(ctx context.Context, family domain.Family) (domain.Family, bool, error) {
	existing, err := s.repo.FindByBookingRef(ctx, family.BookingRef)
	if err == nil {
		if err := s.repo.ReplaceRegistration(ctx, existing.ID, family); err != nil {
			return domain.Family{}, false, fmt.Errorf("s.repo.ReplaceRegistration -> %w", err)
		}

		family.ID = existing.ID
		family.AccessKey = existing.AccessKey

		return family, false, nil
	}
	if !isNotFound(err) {
		return domain.Family{}, false, fmt.Errorf("s.repo.FindByBookingRef -> %w", err)
	}

	key, err := newAccessKey()
	if err != nil {
		return domain.Family{}, false, err
	}
	family.AccessKey = key

	created, err := s.repo.Create(ctx, family)
	if err != nil {
		return domain.Family{}, false, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, true, nil
}

func (s *FamilyService) GetByAccessKey(ctx context.Context, accessKey string) (domain.Family, error) {
	family, err := s.repo.FindByAccessKey(ctx, accessKey)
	if err != nil {
		return domain.Family{}, fmt.Errorf("s.repo.FindByAccessKey -> %w", err)
	}

	if err := s.attachBalance(ctx, &family); err != nil {
		return domain.Family{}, err
	}

	return family, nil
}

func (s *FamilyService) GetByBookingRef(ctx context.Context, bookingRef string) (domain.Family, error) {
	family, err := s.repo.FindByBookingRef(ctx, bookingRef)
	if err != nil {
		return domain.Family{}, fmt.Errorf("s.repo.FindByBookingRef -> %w", err)
	}

	if err := s.attachBalance(ctx, &family); err != nil {
		return domain.Family{}, err
	}

	return family, nil
}

// List returns all families with balances, for the admin console.
func (s *FamilyService) List(ctx context.Context) ([]domain.Family, error) {
	families, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	for i := range families {
		if err := s.attachBalance(ctx, &families[i]); err != nil {
			return nil, err
		}
	}

	return families, nil
}

func (s *FamilyService) CheckBookingRef(ctx context.Context, bookingRef string) (bool, error) {
	exists, err := s.repo.ExistsByBookingRef(ctx, bookingRef)
	if err != nil {
		return false, fmt.Errorf("s.repo.ExistsByBookingRef -> %w", err)
	}

	return exists, nil
}

func (s *FamilyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrFamilyNotFound
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// attachBalance recomputes the derived money fields. Always called before
// family state is handed back to a caller; nothing is cached.
func (s *FamilyService) attachBalance(ctx context.Context, family *domain.Family) error {
	balance, err := s.repo.Balance(ctx, family.ID)
	if err != nil {
		return fmt.Errorf("s.repo.Balance -> %w", err)
	}

	family.TotalOwed = balance.TotalOwed
	family.TotalPaid = balance.TotalPaid
	family.Outstanding = balance.Outstanding

	return nil
}

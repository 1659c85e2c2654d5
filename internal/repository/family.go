package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository/dao"
)

var (
	ErrFamilyNotFound   = dao.ErrFamilyNotFound
	ErrBookingRefExists = dao.ErrBookingRefExists
)

type FamilyDAO interface {
	Insert(ctx context.Context, family dao.Family, members []dao.Member) (dao.Family, error)
	ReplaceRegistration(ctx context.Context, id uint, family dao.Family, members []dao.Member) error
	FindByID(ctx context.Context, id uint) (dao.Family, error)
	FindByBookingRef(ctx context.Context, bookingRef string) (dao.Family, error)
	FindByAccessKey(ctx context.Context, accessKey string) (dao.Family, error)
	ExistsByBookingRef(ctx context.Context, bookingRef string) (bool, error)
	ListAll(ctx context.Context) ([]dao.Family, error)
	Delete(ctx context.Context, id uint) error
	Balance(ctx context.Context, familyID uint) (totalOwed, totalPaid float64, err error)
}

type FamilyRepository struct {
	dao FamilyDAO
}

func NewFamilyRepository(dao FamilyDAO) *FamilyRepository {
	return &FamilyRepository{
		dao: dao,
	}
}

func (r *FamilyRepository) domainToDao(f domain.Family) (dao.Family, []dao.Member) {
	members := make([]dao.Member, len(f.Members))
	for i, m := range f.Members {
		members[i] = dao.Member{
			ID:       m.ID,
			FamilyID: m.FamilyID,
			Name:     m.Name,
			IsChild:  m.IsChild,
			Class:    m.Class,
		}
	}

	return dao.Family{
		ID:          f.ID,
		BookingRef:  f.BookingRef,
		AccessKey:   f.AccessKey,
		CampingType: f.CampingType,
		Nights:      f.Nights,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}, members
}

func (r *FamilyRepository) daoToDomain(f dao.Family) domain.Family {
	members := make([]domain.Member, len(f.Members))
	for i, m := range f.Members {
		members[i] = domain.Member{
			ID:       m.ID,
			FamilyID: m.FamilyID,
			Name:     m.Name,
			IsChild:  m.IsChild,
			Class:    m.Class,
		}
	}

	return domain.Family{
		ID:          f.ID,
		BookingRef:  f.BookingRef,
		AccessKey:   f.AccessKey,
		CampingType: f.CampingType,
		Nights:      f.Nights,
		Members:     members,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (r *FamilyRepository) Create(ctx context.Context, family domain.Family) (domain.Family, error) {
	daoFamily, daoMembers := r.domainToDao(family)

	created, err := r.dao.Insert(ctx, daoFamily, daoMembers)
	if err != nil {
		if errors.Is(err, dao.ErrBookingRefExists) {
			return domain.Family{}, ErrBookingRefExists
		}
		return domain.Family{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FamilyRepository) ReplaceRegistration(ctx context.Context, id uint, family domain.Family) error {
	daoFamily, daoMembers := r.domainToDao(family)

	if err := r.dao.ReplaceRegistration(ctx, id, daoFamily, daoMembers); err != nil {
		return fmt.Errorf("r.dao.ReplaceRegistration -> %w", err)
	}

	return nil
}

func (r *FamilyRepository) FindByID(ctx context.Context, id uint) (domain.Family, error) {
	family, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(family), nil
}

func (r *FamilyRepository) FindByBookingRef(ctx context.Context, bookingRef string) (domain.Family, error) {
	family, err := r.dao.FindByBookingRef(ctx, bookingRef)
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.FindByBookingRef -> %w", err)
	}

	return r.daoToDomain(family), nil
}

func (r *FamilyRepository) FindByAccessKey(ctx context.Context, accessKey string) (domain.Family, error) {
	family, err := r.dao.FindByAccessKey(ctx, accessKey)
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.FindByAccessKey -> %w", err)
	}

	return r.daoToDomain(family), nil
}

func (r *FamilyRepository) ExistsByBookingRef(ctx context.Context, bookingRef string) (bool, error) {
	exists, err := r.dao.ExistsByBookingRef(ctx, bookingRef)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByBookingRef -> %w", err)
	}

	return exists, nil
}

func (r *FamilyRepository) ListAll(ctx context.Context) ([]domain.Family, error) {
	families, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	result := make([]domain.Family, len(families))
	for i, f := range families {
		result[i] = r.daoToDomain(f)
	}

	return result, nil
}

func (r *FamilyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if errors.Is(err, dao.ErrFamilyNotFound) {
			return ErrFamilyNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FamilyRepository) Balance(ctx context.Context, familyID uint) (domain.Balance, error) {
	owed, paid, err := r.dao.Balance(ctx, familyID)
	if err != nil {
		return domain.Balance{}, fmt.Errorf("r.dao.Balance -> %w", err)
	}

	return domain.Balance{
		TotalOwed:   owed,
		TotalPaid:   paid,
		Outstanding: owed - paid,
	}, nil
}

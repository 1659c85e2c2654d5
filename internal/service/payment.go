package service

import (
	"context"
	"fmt"
	"time"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository"
)

var ErrPaymentNotFound = repository.ErrPaymentNotFound

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByID(ctx context.Context, id uint) (domain.Payment, error)
	ListByFamilyID(ctx context.Context, familyID uint) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	SetCancelled(ctx context.Context, id uint, cancelled bool) error
	Update(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) error
	Delete(ctx context.Context, id uint) error
}

type PaymentService struct {
	repo       PaymentRepository
	familyRepo FamilyRepository
}

func NewPaymentService(repo PaymentRepository, familyRepo FamilyRepository) *PaymentService {
	return &PaymentService{
		repo:       repo,
		familyRepo: familyRepo,
	}
}

// Record logs a payment against the family behind the access key. The
// amount is trusted as submitted; overpayment just drives the balance
// negative.
func (s *PaymentService) Record(ctx context.Context, accessKey string, amount float64, paymentDate time.Time, notes string) (domain.Payment, error) {
	family, err := s.familyRepo.FindByAccessKey(ctx, accessKey)
	if err != nil {
		if isNotFound(err) {
			return domain.Payment{}, ErrFamilyNotFound
		}
		return domain.Payment{}, fmt.Errorf("s.familyRepo.FindByAccessKey -> %w", err)
	}

	payment, err := s.repo.Create(ctx, domain.Payment{
		FamilyID:    family.ID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Notes:       notes,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return payment, nil
}

// ListByAccessKey returns a family's full payment history, voided
// entries included so the family sees the same ledger the admin does.
func (s *PaymentService) ListByAccessKey(ctx context.Context, accessKey string) ([]domain.Payment, error) {
	family, err := s.familyRepo.FindByAccessKey(ctx, accessKey)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFamilyNotFound
		}
		return nil, fmt.Errorf("s.familyRepo.FindByAccessKey -> %w", err)
	}

	payments, err := s.repo.ListByFamilyID(ctx, family.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByFamilyID -> %w", err)
	}

	return payments, nil
}

func (s *PaymentService) ListAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return payments, nil
}

// Void marks a payment cancelled. The row survives for the audit trail;
// only the balance stops counting it. Voiding twice is a no-op.
func (s *PaymentService) Void(ctx context.Context, id uint) error {
	return s.setCancelled(ctx, id, true)
}

// Reinstate undoes a void.
func (s *PaymentService) Reinstate(ctx context.Context, id uint) error {
	return s.setCancelled(ctx, id, false)
}

func (s *PaymentService) setCancelled(ctx context.Context, id uint, cancelled bool) error {
	if err := s.repo.SetCancelled(ctx, id, cancelled); err != nil {
		if isNotFound(err) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("s.repo.SetCancelled -> %w", err)
	}

	return nil
}

// Edit corrects a payment in place. The cancelled flag is untouched, so
// editing a voided payment does not quietly reinstate it.
func (s *PaymentService) Edit(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) (domain.Payment, error) {
	if err := s.repo.Update(ctx, id, amount, paymentDate, notes); err != nil {
		if isNotFound(err) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return payment, nil
}

// Delete removes a payment outright. Void is the usual correction; this
// is for rows that should never have existed.
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

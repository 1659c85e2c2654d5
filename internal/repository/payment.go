package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	ListByFamilyID(ctx context.Context, familyID uint) ([]dao.Payment, error)
	ListAll(ctx context.Context) ([]dao.PaymentJoined, error)
	SetCancelled(ctx context.Context, id uint, cancelled bool) error
	Update(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) error
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          p.ID,
		FamilyID:    p.FamilyID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		Cancelled:   p.Cancelled,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		FamilyID:    payment.FamilyID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		Notes:       payment.Notes,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	payment, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(payment), nil
}

func (r *PaymentRepository) ListByFamilyID(ctx context.Context, familyID uint) ([]domain.Payment, error) {
	payments, err := r.dao.ListByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByFamilyID -> %w", err)
	}

	result := make([]domain.Payment, len(payments))
	for i, p := range payments {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	result := make([]domain.Payment, len(payments))
	for i, p := range payments {
		converted := r.daoToDomain(p.Payment)
		converted.BookingRef = p.BookingRef
		result[i] = converted
	}

	return result, nil
}

func (r *PaymentRepository) SetCancelled(ctx context.Context, id uint, cancelled bool) error {
	if err := r.dao.SetCancelled(ctx, id, cancelled); err != nil {
		if errors.Is(err, dao.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("r.dao.SetCancelled -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) error {
	if err := r.dao.Update(ctx, id, amount, paymentDate, notes); err != nil {
		if errors.Is(err, dao.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if errors.Is(err, dao.ErrPaymentNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

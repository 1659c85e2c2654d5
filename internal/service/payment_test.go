package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository"
)

type fakePaymentRepo struct {
	payments map[uint]domain.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: map[uint]domain.Payment{},
		nextID:   1,
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	payment.ID = f.nextID
	f.nextID++
	f.payments[payment.ID] = payment
	return payment, nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uint) (domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return domain.Payment{}, repository.ErrPaymentNotFound
	}
	return payment, nil
}

func (f *fakePaymentRepo) ListByFamilyID(_ context.Context, familyID uint) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range f.payments {
		if p.FamilyID == familyID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListAll(_ context.Context) ([]domain.Payment, error) {
	result := make([]domain.Payment, 0, len(f.payments))
	for _, p := range f.payments {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePaymentRepo) SetCancelled(_ context.Context, id uint, cancelled bool) error {
	payment, ok := f.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.Cancelled = cancelled
	f.payments[id] = payment
	return nil
}

func (f *fakePaymentRepo) Update(_ context.Context, id uint, amount float64, paymentDate time.Time, notes string) error {
	payment, ok := f.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	payment.Amount = amount
	payment.PaymentDate = paymentDate
	payment.Notes = notes
	f.payments[id] = payment
	return nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.payments[id]; !ok {
		return repository.ErrPaymentNotFound
	}
	delete(f.payments, id)
	return nil
}

func newPaymentFixture(t *testing.T) (*PaymentService, *fakePaymentRepo, domain.Family) {
	t.Helper()

	familyRepo := newFakeFamilyRepo()
	family, err := familyRepo.Create(context.Background(), domain.Family{
		BookingRef: "BK-1",
		AccessKey:  "key-1",
	})
	require.NoError(t, err)

	repo := newFakePaymentRepo()

	return NewPaymentService(repo, familyRepo), repo, family
}

func TestPaymentService_Record(t *testing.T) {
	svc, _, family := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.Record(ctx, "key-1", 25, time.Time{}, "bank transfer")
	require.NoError(t, err)
	assert.Equal(t, family.ID, payment.FamilyID)
	assert.Equal(t, float64(25), payment.Amount)

	_, err = svc.Record(ctx, "no-such-key", 25, time.Time{}, "")
	assert.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestPaymentService_VoidAndReinstate(t *testing.T) {
	svc, repo, _ := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.Record(ctx, "key-1", 25, time.Time{}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Void(ctx, payment.ID))
	assert.True(t, repo.payments[payment.ID].Cancelled)

	// Voiding again changes nothing.
	require.NoError(t, svc.Void(ctx, payment.ID))
	assert.True(t, repo.payments[payment.ID].Cancelled)

	require.NoError(t, svc.Reinstate(ctx, payment.ID))
	assert.False(t, repo.payments[payment.ID].Cancelled)

	assert.ErrorIs(t, svc.Void(ctx, 999), ErrPaymentNotFound)
}

func TestPaymentService_Edit_KeepsCancelledFlag(t *testing.T) {
	svc, repo, _ := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.Record(ctx, "key-1", 25, time.Time{}, "")
	require.NoError(t, err)
	require.NoError(t, svc.Void(ctx, payment.ID))

	edited, err := svc.Edit(ctx, payment.ID, 30, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "corrected")
	require.NoError(t, err)
	assert.Equal(t, float64(30), edited.Amount)
	assert.True(t, edited.Cancelled)
	assert.True(t, repo.payments[payment.ID].Cancelled)
}

func TestPaymentService_Delete(t *testing.T) {
	svc, repo, _ := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.Record(ctx, "key-1", 25, time.Time{}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, payment.ID))
	assert.Empty(t, repo.payments)
	assert.ErrorIs(t, svc.Delete(ctx, payment.ID), ErrPaymentNotFound)
}

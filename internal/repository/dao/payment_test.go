package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentDAO_Insert_DefaultsDate(t *testing.T) {
	db := newTestDB(t)
	d := NewPaymentDAO(db)

	family := seedFamily(t, db, "BK-20", "key-20")

	payment, err := d.Insert(context.Background(), Payment{FamilyID: family.ID, Amount: 25})
	require.NoError(t, err)
	assert.False(t, payment.PaymentDate.IsZero())
	assert.False(t, payment.Cancelled)
}

func TestPaymentDAO_SetCancelled_Idempotent(t *testing.T) {
	db := newTestDB(t)
	d := NewPaymentDAO(db)
	ctx := context.Background()

	family := seedFamily(t, db, "BK-21", "key-21")
	payment, err := d.Insert(ctx, Payment{FamilyID: family.ID, Amount: 25})
	require.NoError(t, err)

	require.NoError(t, d.SetCancelled(ctx, payment.ID, true))
	require.NoError(t, d.SetCancelled(ctx, payment.ID, true))

	got, err := d.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.True(t, got.Cancelled)
	assert.Equal(t, float64(25), got.Amount)

	assert.ErrorIs(t, d.SetCancelled(ctx, 999, true), ErrPaymentNotFound)
}

func TestPaymentDAO_Update_LeavesCancelledAlone(t *testing.T) {
	db := newTestDB(t)
	d := NewPaymentDAO(db)
	ctx := context.Background()

	family := seedFamily(t, db, "BK-22", "key-22")
	payment, err := d.Insert(ctx, Payment{FamilyID: family.ID, Amount: 25})
	require.NoError(t, err)
	require.NoError(t, d.SetCancelled(ctx, payment.ID, true))

	newDate := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, d.Update(ctx, payment.ID, 30, newDate, "corrected"))

	got, err := d.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(30), got.Amount)
	assert.Equal(t, "corrected", got.Notes)
	assert.True(t, got.Cancelled)

	assert.ErrorIs(t, d.Update(ctx, 999, 1, newDate, ""), ErrPaymentNotFound)
}

func TestPaymentDAO_ListAll_JoinsBookingRef(t *testing.T) {
	db := newTestDB(t)
	d := NewPaymentDAO(db)
	ctx := context.Background()

	family := seedFamily(t, db, "BK-23", "key-23")
	_, err := d.Insert(ctx, Payment{FamilyID: family.ID, Amount: 5})
	require.NoError(t, err)

	payments, err := d.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "BK-23", payments[0].BookingRef)
}

func TestPaymentDAO_Delete(t *testing.T) {
	db := newTestDB(t)
	d := NewPaymentDAO(db)
	ctx := context.Background()

	family := seedFamily(t, db, "BK-24", "key-24")
	payment, err := d.Insert(ctx, Payment{FamilyID: family.ID, Amount: 5})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, payment.ID))
	assert.ErrorIs(t, d.Delete(ctx, payment.ID), ErrPaymentNotFound)
}

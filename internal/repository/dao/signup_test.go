package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedActivity(t *testing.T, db *gorm.DB, maxParticipants int) Activity {
	t.Helper()

	activity := Activity{
		Name:            "Kayaking",
		SessionTime:     "Saturday 10:00",
		Cost:            5,
		MaxParticipants: maxParticipants,
		AllowedAges:     "both",
		Available:       true,
	}
	require.NoError(t, db.Create(&activity).Error)

	return activity
}

func seedFamily(t *testing.T, db *gorm.DB, bookingRef, accessKey string) Family {
	t.Helper()

	family := Family{
		BookingRef:  bookingRef,
		AccessKey:   accessKey,
		CampingType: "tent",
		Nights:      []string{"friday"},
	}
	require.NoError(t, db.Create(&family).Error)

	return family
}

func TestSignupDAO_Upsert_Branches(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 0)
	family := seedFamily(t, db, "BK-100", "key-100")

	// No row, no names.
	_, outcome, err := d.Upsert(ctx, activity.ID, family.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, SignupSkipped, outcome)

	// No row, names.
	signup, outcome, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada", "Ben"})
	require.NoError(t, err)
	assert.Equal(t, SignupCreated, outcome)
	assert.NotZero(t, signup.ID)

	// Row exists, new names.
	signup, outcome, err = d.Upsert(ctx, activity.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)
	assert.Equal(t, SignupUpdated, outcome)
	assert.Equal(t, []string{"Ada"}, signup.Children)

	var count int64
	require.NoError(t, db.Model(&Signup{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Row exists, empty names.
	_, outcome, err = d.Upsert(ctx, activity.ID, family.ID, []string{})
	require.NoError(t, err)
	assert.Equal(t, SignupDeleted, outcome)

	require.NoError(t, db.Model(&Signup{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSignupDAO_Upsert_ReplaceStoresChildrenAsJSON(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	familyDAO := NewFamilyDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 0) // costs 5 per head
	family := seedFamily(t, db, "BK-102", "key-102")

	_, _, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada", "Ben"})
	require.NoError(t, err)

	_, outcome, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)
	require.Equal(t, SignupUpdated, outcome)

	// The replaced column must hold the serialized form, or every
	// later read of this signup fails to deserialize.
	var raw string
	require.NoError(t, db.Raw(
		"SELECT children FROM activity_signups WHERE activity_id = ? AND family_id = ?",
		activity.ID, family.ID).Scan(&raw).Error)
	assert.JSONEq(t, `["Ada"]`, raw)

	rows, err := d.ListByActivityID(ctx, activity.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Ada"}, rows[0].Children)

	owed, _, err := familyDAO.Balance(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(5), owed)
}

func TestSignupDAO_Upsert_UnknownActivity(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)

	family := seedFamily(t, db, "BK-101", "key-101")

	_, _, err := d.Upsert(context.Background(), 999, family.ID, []string{"Ada"})
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestSignupDAO_CapacityGate(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 2)
	f1 := seedFamily(t, db, "BK-1", "key-1")
	f2 := seedFamily(t, db, "BK-2", "key-2")

	// One of two places taken; still available.
	_, _, err := d.Upsert(ctx, activity.ID, f1.ID, []string{"Ada"})
	require.NoError(t, err)

	var got Activity
	require.NoError(t, db.First(&got, activity.ID).Error)
	assert.True(t, got.Available)

	// Full.
	_, _, err = d.Upsert(ctx, activity.ID, f2.ID, []string{"Ben"})
	require.NoError(t, err)

	require.NoError(t, db.First(&got, activity.ID).Error)
	assert.False(t, got.Available)

	// A withdrawal frees a place and flips the flag back.
	_, _, err = d.Upsert(ctx, activity.ID, f2.ID, nil)
	require.NoError(t, err)

	require.NoError(t, db.First(&got, activity.ID).Error)
	assert.True(t, got.Available)
}

func TestSignupDAO_CapacityGate_UnlimitedNeverFlips(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 0)
	family := seedFamily(t, db, "BK-3", "key-3")

	// Admin closed it; signup churn must not reopen it.
	require.NoError(t, db.Model(&Activity{}).Where("id = ?", activity.ID).
		UpdateColumn("available", false).Error)

	_, _, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada", "Ben", "Cam"})
	require.NoError(t, err)

	var got Activity
	require.NoError(t, db.First(&got, activity.ID).Error)
	assert.False(t, got.Available)
}

func TestSignupDAO_CapacityGate_OverridesAdminForLimited(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 5)
	family := seedFamily(t, db, "BK-4", "key-4")

	require.NoError(t, db.Model(&Activity{}).Where("id = ?", activity.ID).
		UpdateColumn("available", false).Error)

	// Capacity says there is room, so the next mutation reopens it.
	_, _, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)

	var got Activity
	require.NoError(t, db.First(&got, activity.ID).Error)
	assert.True(t, got.Available)
}

func TestSignupDAO_ListByAccessKey(t *testing.T) {
	db := newTestDB(t)
	d := NewSignupDAO(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 0)
	family := seedFamily(t, db, "BK-5", "key-5")

	_, _, err := d.Upsert(ctx, activity.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)

	signups, err := d.ListByAccessKey(ctx, "key-5")
	require.NoError(t, err)
	require.Len(t, signups, 1)
	assert.Equal(t, "Kayaking", signups[0].ActivityName)
	assert.Equal(t, "BK-5", signups[0].BookingRef)
	assert.Equal(t, float64(5), signups[0].Cost)

	// Unknown key is an empty list, not an error.
	signups, err = d.ListByAccessKey(ctx, "no-such-key")
	require.NoError(t, err)
	assert.Empty(t, signups)
}

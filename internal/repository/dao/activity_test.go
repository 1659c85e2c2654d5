package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDAO_List_FiltersUnavailable(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, Activity{Name: "Archery", SessionTime: "Saturday 14:00", Available: true})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Activity{Name: "Climbing", SessionTime: "Saturday 09:00", Available: false})
	require.NoError(t, err)

	visible, err := d.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Archery", visible[0].Name)

	all, err := d.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by session time.
	assert.Equal(t, "Climbing", all[0].Name)
}

func TestActivityDAO_Insert_KeepsUnavailable(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	activity, err := d.Insert(ctx, Activity{Name: "Climbing", SessionTime: "a", Available: false})
	require.NoError(t, err)

	got, err := d.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
}

func TestActivityDAO_ListForAccessKey(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	signupDAO := NewSignupDAO(db)
	ctx := context.Background()

	open, err := d.Insert(ctx, Activity{Name: "Archery", SessionTime: "a", Available: true})
	require.NoError(t, err)
	closed, err := d.Insert(ctx, Activity{Name: "Climbing", SessionTime: "b", Available: false})
	require.NoError(t, err)

	family := seedFamily(t, db, "BK-30", "key-30")
	_, _, err = signupDAO.Upsert(ctx, closed.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)

	// The family keeps sight of the closed activity it is enrolled in.
	activities, err := d.ListForAccessKey(ctx, "key-30")
	require.NoError(t, err)
	require.Len(t, activities, 2)

	ids := []uint{activities[0].ID, activities[1].ID}
	assert.ElementsMatch(t, []uint{open.ID, closed.ID}, ids)

	// Unknown key falls back to the public list.
	activities, err = d.ListForAccessKey(ctx, "no-such-key")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, open.ID, activities[0].ID)
}

func TestActivityDAO_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	activity, err := d.Insert(ctx, Activity{Name: "Archery", SessionTime: "a", Cost: 3, Available: true})
	require.NoError(t, err)

	require.NoError(t, d.Update(ctx, activity.ID, map[string]interface{}{"cost": 4.5}))

	got, err := d.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Cost)
	assert.Equal(t, "Archery", got.Name)

	assert.ErrorIs(t, d.Update(ctx, 999, map[string]interface{}{"cost": 1}), ErrActivityNotFound)
}

func TestActivityDAO_Delete_RemovesSignups(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	signupDAO := NewSignupDAO(db)
	ctx := context.Background()

	activity, err := d.Insert(ctx, Activity{Name: "Archery", SessionTime: "a", Available: true})
	require.NoError(t, err)

	family := seedFamily(t, db, "BK-31", "key-31")
	_, _, err = signupDAO.Upsert(ctx, activity.ID, family.ID, []string{"Ada"})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, activity.ID))

	var count int64
	require.NoError(t, db.Model(&Signup{}).Where("activity_id = ?", activity.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, d.Delete(ctx, activity.ID), ErrActivityNotFound)
}

func TestActivityDAO_SetAvailability(t *testing.T) {
	db := newTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	activity, err := d.Insert(ctx, Activity{Name: "Archery", SessionTime: "a", Available: true})
	require.NoError(t, err)

	require.NoError(t, d.SetAvailability(ctx, activity.ID, false))

	got, err := d.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)

	assert.ErrorIs(t, d.SetAvailability(ctx, 999, true), ErrActivityNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baolive/camping-api/internal/domain"
	"github.com/baolive/camping-api/internal/repository"
)

type fakeFamilyRepo struct {
	families map[uint]domain.Family
	nextID   uint
	balances map[uint]domain.Balance
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{
		families: map[uint]domain.Family{},
		nextID:   1,
		balances: map[uint]domain.Balance{},
	}
}

func (f *fakeFamilyRepo) Create(_ context.Context, family domain.Family) (domain.Family, error) {
	for _, existing := range f.families {
		if existing.BookingRef == family.BookingRef {
			return domain.Family{}, repository.ErrBookingRefExists
		}
	}

	family.ID = f.nextID
	f.nextID++
	f.families[family.ID] = family

	return family, nil
}

func (f *fakeFamilyRepo) ReplaceRegistration(_ context.Context, id uint, family domain.Family) error {
	existing, ok := f.families[id]
	if !ok {
		return repository.ErrFamilyNotFound
	}

	family.ID = id
	family.AccessKey = existing.AccessKey
	f.families[id] = family

	return nil
}

func (f *fakeFamilyRepo) FindByID(_ context.Context, id uint) (domain.Family, error) {
	family, ok := f.families[id]
	if !ok {
		return domain.Family{}, repository.ErrFamilyNotFound
	}
	return family, nil
}

func (f *fakeFamilyRepo) FindByBookingRef(_ context.Context, bookingRef string) (domain.Family, error) {
	for _, family := range f.families {
		if family.BookingRef == bookingRef {
			return family, nil
		}
	}
	return domain.Family{}, repository.ErrFamilyNotFound
}

func (f *fakeFamilyRepo) FindByAccessKey(_ context.Context, accessKey string) (domain.Family, error) {
	for _, family := range f.families {
		if family.AccessKey == accessKey {
			return family, nil
		}
	}
	return domain.Family{}, repository.ErrFamilyNotFound
}

func (f *fakeFamilyRepo) ExistsByBookingRef(_ context.Context, bookingRef string) (bool, error) {
	for _, family := range f.families {
		if family.BookingRef == bookingRef {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFamilyRepo) ListAll(_ context.Context) ([]domain.Family, error) {
	families := make([]domain.Family, 0, len(f.families))
	for _, family := range f.families {
		families = append(families, family)
	}
	return families, nil
}

func (f *fakeFamilyRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.families[id]; !ok {
		return repository.ErrFamilyNotFound
	}
	delete(f.families, id)
	return nil
}

func (f *fakeFamilyRepo) Balance(_ context.Context, familyID uint) (domain.Balance, error) {
	return f.balances[familyID], nil
}

func TestNewAccessKey(t *testing.T) {
	key, err := newAccessKey()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	other, err := newAccessKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestFamilyService_Register_New(t *testing.T) {
	repo := newFakeFamilyRepo()
	svc := NewFamilyService(repo)

	family, created, err := svc.Register(context.Background(), domain.Family{
		BookingRef:  "BK-1",
		CampingType: "tent",
		Nights:      []string{"friday"},
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, family.ID)
	assert.Len(t, family.AccessKey, 32)
}

func TestFamilyService_Register_ExistingKeepsAccessKey(t *testing.T) {
	repo := newFakeFamilyRepo()
	svc := NewFamilyService(repo)
	ctx := context.Background()

	first, created, err := svc.Register(ctx, domain.Family{
		BookingRef:  "BK-2",
		CampingType: "tent",
		Nights:      []string{"friday"},
	})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Register(ctx, domain.Family{
		BookingRef:  "BK-2",
		CampingType: "campervan",
		Nights:      []string{"saturday"},
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.AccessKey, second.AccessKey)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "campervan", stored.CampingType)
}

func TestFamilyService_GetByAccessKey_AttachesBalance(t *testing.T) {
	repo := newFakeFamilyRepo()
	svc := NewFamilyService(repo)
	ctx := context.Background()

	family, _, err := svc.Register(ctx, domain.Family{
		BookingRef:  "BK-3",
		CampingType: "tent",
		Nights:      []string{"friday"},
	})
	require.NoError(t, err)

	repo.balances[family.ID] = domain.Balance{TotalOwed: 10, TotalPaid: 4, Outstanding: 6}

	got, err := svc.GetByAccessKey(ctx, family.AccessKey)
	require.NoError(t, err)
	assert.Equal(t, float64(10), got.TotalOwed)
	assert.Equal(t, float64(4), got.TotalPaid)
	assert.Equal(t, float64(6), got.Outstanding)
}

func TestFamilyService_CheckBookingRef(t *testing.T) {
	repo := newFakeFamilyRepo()
	svc := NewFamilyService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, domain.Family{
		BookingRef:  "BK-4",
		CampingType: "tent",
		Nights:      []string{"friday"},
	})
	require.NoError(t, err)

	exists, err := svc.CheckBookingRef(ctx, "BK-4")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckBookingRef(ctx, "BK-unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

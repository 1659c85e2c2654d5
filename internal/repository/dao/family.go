package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrFamilyNotFound   = errors.New("family not found")
	ErrBookingRefExists = errors.New("booking reference already registered")
)

type Family struct {
	ID          uint     `gorm:"primaryKey"`
	BookingRef  string   `gorm:"uniqueIndex;not null"`
	AccessKey   string   `gorm:"index;not null"`
	CampingType string   `gorm:"not null"`
	Nights      []string `gorm:"serializer:json;not null"`
	Members     []Member `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Member struct {
	ID       uint   `gorm:"primaryKey"`
	FamilyID uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	IsChild  bool   `gorm:"not null"`
	Class    *string
}

func (Member) TableName() string {
	return "family_members"
}

type FamilyDAO struct {
	db *gorm.DB
}

func NewFamilyDAO(db *gorm.DB) *FamilyDAO {
	return &FamilyDAO{
		db: db,
	}
}

// Insert creates the family row and its members in one transaction.
func (d *FamilyDAO) Insert(ctx context.Context, family Family, members []Member) (Family, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&family).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrBookingRefExists
			}
			return err
		}

		for i := range members {
			members[i].FamilyID = family.ID
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Family{}, err
	}

	family.Members = members

	return family, nil
}

// ReplaceRegistration rewrites a family's details and replaces the full
// member set. Runs in one transaction so a failed reinsert cannot leave
// the family memberless.
func (d *FamilyDAO) ReplaceRegistration(ctx context.Context, id uint, family Family, members []Member) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Struct-based update so the json serializer runs on Nights.
		result := tx.Model(&Family{}).Where("id = ?", id).
			Select("booking_ref", "camping_type", "nights").
			Updates(Family{
				BookingRef:  family.BookingRef,
				CampingType: family.CampingType,
				Nights:      family.Nights,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFamilyNotFound
		}

		if err := tx.Where("family_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}

		for i := range members {
			members[i].ID = 0
			members[i].FamilyID = id
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (d *FamilyDAO) FindByID(ctx context.Context, id uint) (Family, error) {
	var family Family

	result := d.db.WithContext(ctx).Preload("Members").First(&family, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Family{}, ErrFamilyNotFound
		}

		return Family{}, result.Error
	}

	return family, nil
}

func (d *FamilyDAO) FindByBookingRef(ctx context.Context, bookingRef string) (Family, error) {
	return d.findOne(ctx, "booking_ref = ?", bookingRef)
}

func (d *FamilyDAO) FindByAccessKey(ctx context.Context, accessKey string) (Family, error) {
	return d.findOne(ctx, "access_key = ?", accessKey)
}

func (d *FamilyDAO) findOne(ctx context.Context, query string, arg interface{}) (Family, error) {
	var family Family

	result := d.db.WithContext(ctx).Preload("Members").Where(query, arg).First(&family)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Family{}, ErrFamilyNotFound
		}

		return Family{}, result.Error
	}

	return family, nil
}

func (d *FamilyDAO) ExistsByBookingRef(ctx context.Context, bookingRef string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Family{}).Where("booking_ref = ?", bookingRef).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *FamilyDAO) ListAll(ctx context.Context) ([]Family, error) {
	var families []Family

	result := d.db.WithContext(ctx).Preload("Members").Order("created_at DESC").Find(&families)
	if result.Error != nil {
		return nil, result.Error
	}

	return families, nil
}

// Delete removes the family and everything hanging off it: members,
// signups and payments.
func (d *FamilyDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}
		if err := tx.Where("family_id = ?", id).Delete(&Signup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("family_id = ?", id).Delete(&Payment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Family{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFamilyNotFound
		}

		return nil
	})
}

// Balance recomputes the family's money position from current rows.
// total_owed is cost times participant count summed over the family's
// signups; total_paid skips cancelled payments.
func (d *FamilyDAO) Balance(ctx context.Context, familyID uint) (totalOwed, totalPaid float64, err error) {
	var signups []Signup
	if err = d.db.WithContext(ctx).Where("family_id = ?", familyID).Find(&signups).Error; err != nil {
		return 0, 0, err
	}

	if len(signups) > 0 {
		activityIDs := make([]uint, len(signups))
		for i, s := range signups {
			activityIDs[i] = s.ActivityID
		}

		var activities []Activity
		if err = d.db.WithContext(ctx).Where("id IN ?", activityIDs).Find(&activities).Error; err != nil {
			return 0, 0, err
		}

		costByID := make(map[uint]float64, len(activities))
		for _, a := range activities {
			costByID[a.ID] = a.Cost
		}

		for _, s := range signups {
			totalOwed += costByID[s.ActivityID] * float64(len(s.Children))
		}
	}

	err = d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("family_id = ? AND cancelled = ?", familyID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalPaid).Error
	if err != nil {
		return 0, 0, err
	}

	return totalOwed, totalPaid, nil
}

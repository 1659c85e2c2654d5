package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	SessionTime string
	Cost        float64 `gorm:"default:0"`
	Description string
	// 0 means unlimited.
	MaxParticipants int    `gorm:"default:0"`
	AllowedAges     string `gorm:"default:both"` // "child", "adult", or "both"
	Available       bool
	CreatedAt       time.Time
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) List(ctx context.Context, includeUnavailable bool) ([]Activity, error) {
	var activities []Activity

	query := d.db.WithContext(ctx)
	if !includeUnavailable {
		query = query.Where("available = ?", true)
	}

	result := query.Order("session_time").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// ListForAccessKey returns available activities plus any unavailable ones
// the family already has a signup for, so a family never loses sight of
// an activity it is enrolled in.
func (d *ActivityDAO) ListForAccessKey(ctx context.Context, accessKey string) ([]Activity, error) {
	var family Family
	err := d.db.WithContext(ctx).Where("access_key = ?", accessKey).First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return d.List(ctx, false)
		}

		return nil, err
	}

	var signups []Signup
	if err := d.db.WithContext(ctx).Where("family_id = ?", family.ID).Find(&signups).Error; err != nil {
		return nil, err
	}

	var activities []Activity
	query := d.db.WithContext(ctx)
	if len(signups) > 0 {
		signedUpIDs := make([]uint, len(signups))
		for i, s := range signups {
			signedUpIDs[i] = s.ActivityID
		}
		query = query.Where("available = ? OR id IN ?", true, signedUpIDs)
	} else {
		query = query.Where("available = ?", true)
	}

	if err := query.Order("session_time").Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

// Update applies a partial column update.
func (d *ActivityDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).Model(&Activity{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// SetAvailability is the admin override. The capacity gate may re-correct
// it on the next signup mutation for capacity-limited activities.
func (d *ActivityDAO) SetAvailability(ctx context.Context, id uint, available bool) error {
	var activity Activity
	if err := d.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}

		return err
	}

	return d.db.WithContext(ctx).Model(&Activity{}).Where("id = ?", id).
		UpdateColumn("available", available).Error
}

// Delete removes the activity and all signups recorded against it.
func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&Signup{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Activity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrActivityNotFound
		}

		return nil
	})
}

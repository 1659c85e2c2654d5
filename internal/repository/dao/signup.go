package dao

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSignupNotFound = errors.New("signup not found")

// Signup holds the participant names (not member ids) a family enrolled
// in one activity. The (activity_id, family_id) pair is unique; an empty
// children list is never persisted.
type Signup struct {
	ID         uint     `gorm:"primaryKey"`
	ActivityID uint     `gorm:"not null;uniqueIndex:idx_signups_activity_family"`
	FamilyID   uint     `gorm:"not null;uniqueIndex:idx_signups_activity_family"`
	Children   []string `gorm:"serializer:json;not null"`
	CreatedAt  time.Time
}

func (Signup) TableName() string {
	return "activity_signups"
}

type SignupOutcome string

const (
	SignupCreated SignupOutcome = "created"
	SignupUpdated SignupOutcome = "updated"
	SignupDeleted SignupOutcome = "deleted"
	SignupSkipped SignupOutcome = "skipped"
)

// SignupJoined carries the activity and family columns listings need.
type SignupJoined struct {
	Signup
	ActivityName string
	SessionTime  string
	Cost         float64
	BookingRef   string
}

type SignupDAO struct {
	db *gorm.DB
}

func NewSignupDAO(db *gorm.DB) *SignupDAO {
	return &SignupDAO{
		db: db,
	}
}

// Upsert reconciles a family's participation in one activity:
// no row + no names is a no-op, no row + names inserts, row + no names
// deletes, row + names replaces the stored set. The capacity gate runs
// as the last step of the same transaction.
func (d *SignupDAO) Upsert(ctx context.Context, activityID, familyID uint, children []string) (Signup, SignupOutcome, error) {
	var (
		signup  Signup
		outcome SignupOutcome
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity Activity
		if err := tx.First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}
			return err
		}

		var existing Signup
		err := tx.Where("activity_id = ? AND family_id = ?", activityID, familyID).First(&existing).Error
		missing := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !missing {
			return err
		}

		switch {
		case missing && len(children) == 0:
			outcome = SignupSkipped
			return nil

		case missing:
			row := Signup{
				ActivityID: activityID,
				FamilyID:   familyID,
				Children:   children,
			}
			// Two concurrent submissions for the same pair collapse
			// into one row.
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "activity_id"}, {Name: "family_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"children"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
			signup = row
			outcome = SignupCreated

		case len(children) == 0:
			if err := tx.Delete(&Signup{}, existing.ID).Error; err != nil {
				return err
			}
			signup = existing
			outcome = SignupDeleted

		default:
			// Struct-based update so the json serializer runs on Children.
			err := tx.Model(&Signup{}).Where("id = ?", existing.ID).
				Select("children").
				Updates(Signup{Children: children}).Error
			if err != nil {
				return err
			}
			existing.Children = children
			signup = existing
			outcome = SignupUpdated
		}

		return d.reconcileCapacity(tx, activityID)
	})
	if err != nil {
		return Signup{}, "", err
	}

	return signup, outcome, nil
}

// reconcileCapacity recounts an activity's participants and flips the
// cached available flag. Unlimited activities (max_participants = 0) are
// left alone entirely so an admin override on them sticks.
func (d *SignupDAO) reconcileCapacity(tx *gorm.DB, activityID uint) error {
	var activity Activity
	if err := tx.First(&activity, activityID).Error; err != nil {
		return err
	}
	if activity.MaxParticipants == 0 {
		return nil
	}

	var signups []Signup
	if err := tx.Where("activity_id = ?", activityID).Find(&signups).Error; err != nil {
		return err
	}

	count := 0
	for _, s := range signups {
		count += len(s.Children)
	}

	return tx.Model(&Activity{}).Where("id = ?", activityID).
		UpdateColumn("available", count < activity.MaxParticipants).Error
}

func (d *SignupDAO) ListAll(ctx context.Context) ([]SignupJoined, error) {
	var signups []Signup
	if err := d.db.WithContext(ctx).Find(&signups).Error; err != nil {
		return nil, err
	}

	joined, err := d.join(ctx, signups)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(joined, func(i, j int) bool {
		if joined[i].SessionTime != joined[j].SessionTime {
			return joined[i].SessionTime < joined[j].SessionTime
		}
		return joined[i].CreatedAt.Before(joined[j].CreatedAt)
	})

	return joined, nil
}

// ListByAccessKey returns the signups visible to one family. An unknown
// key yields an empty list, not an error.
func (d *SignupDAO) ListByAccessKey(ctx context.Context, accessKey string) ([]SignupJoined, error) {
	var family Family
	err := d.db.WithContext(ctx).Where("access_key = ?", accessKey).First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []SignupJoined{}, nil
		}
		return nil, err
	}

	var signups []Signup
	if err := d.db.WithContext(ctx).Where("family_id = ?", family.ID).Find(&signups).Error; err != nil {
		return nil, err
	}

	joined, err := d.join(ctx, signups)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].SessionTime < joined[j].SessionTime
	})

	return joined, nil
}

func (d *SignupDAO) ListByActivityID(ctx context.Context, activityID uint) ([]Signup, error) {
	var signups []Signup

	result := d.db.WithContext(ctx).Where("activity_id = ?", activityID).Find(&signups)
	if result.Error != nil {
		return nil, result.Error
	}

	return signups, nil
}

func (d *SignupDAO) join(ctx context.Context, signups []Signup) ([]SignupJoined, error) {
	if len(signups) == 0 {
		return []SignupJoined{}, nil
	}

	activityIDs := make([]uint, 0, len(signups))
	familyIDs := make([]uint, 0, len(signups))
	for _, s := range signups {
		activityIDs = append(activityIDs, s.ActivityID)
		familyIDs = append(familyIDs, s.FamilyID)
	}

	var activities []Activity
	if err := d.db.WithContext(ctx).Where("id IN ?", activityIDs).Find(&activities).Error; err != nil {
		return nil, err
	}
	activityByID := make(map[uint]Activity, len(activities))
	for _, a := range activities {
		activityByID[a.ID] = a
	}

	var families []Family
	if err := d.db.WithContext(ctx).Where("id IN ?", familyIDs).Find(&families).Error; err != nil {
		return nil, err
	}
	familyByID := make(map[uint]Family, len(families))
	for _, f := range families {
		familyByID[f.ID] = f
	}

	joined := make([]SignupJoined, len(signups))
	for i, s := range signups {
		activity := activityByID[s.ActivityID]
		joined[i] = SignupJoined{
			Signup:       s,
			ActivityName: activity.Name,
			SessionTime:  activity.SessionTime,
			Cost:         activity.Cost,
			BookingRef:   familyByID[s.FamilyID].BookingRef,
		}
	}

	return joined, nil
}

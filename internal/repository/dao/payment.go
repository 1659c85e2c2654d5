package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment rows are soft-deleted via the cancelled flag; only the admin
// hard delete removes one. Everything ever entered stays retrievable.
type Payment struct {
	ID          uint      `gorm:"primaryKey"`
	FamilyID    uint      `gorm:"index;not null"`
	Amount      float64   `gorm:"not null"`
	PaymentDate time.Time `gorm:"not null"`
	Notes       string
	Cancelled   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// PaymentJoined carries the booking ref for admin listings.
type PaymentJoined struct {
	Payment
	BookingRef string
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now().UTC()
	}

	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) ListByFamilyID(ctx context.Context, familyID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("payment_date DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) ListAll(ctx context.Context) ([]PaymentJoined, error) {
	var payments []Payment
	err := d.db.WithContext(ctx).Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}

	if len(payments) == 0 {
		return []PaymentJoined{}, nil
	}

	familyIDs := make([]uint, len(payments))
	for i, p := range payments {
		familyIDs[i] = p.FamilyID
	}

	var families []Family
	if err := d.db.WithContext(ctx).Where("id IN ?", familyIDs).Find(&families).Error; err != nil {
		return nil, err
	}
	refByID := make(map[uint]string, len(families))
	for _, f := range families {
		refByID[f.ID] = f.BookingRef
	}

	joined := make([]PaymentJoined, len(payments))
	for i, p := range payments {
		joined[i] = PaymentJoined{
			Payment:    p,
			BookingRef: refByID[p.FamilyID],
		}
	}

	return joined, nil
}

// SetCancelled toggles the soft-delete flag. Setting the flag to its
// current value is a no-op in effect.
func (d *PaymentDAO) SetCancelled(ctx context.Context, id uint, cancelled bool) error {
	var payment Payment
	if err := d.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}

		return err
	}

	return d.db.WithContext(ctx).Model(&Payment{}).Where("id = ?", id).
		UpdateColumn("cancelled", cancelled).Error
}

// Update rewrites amount, date and notes in place. The cancelled flag is
// untouched; edits do not create a new audit entry.
func (d *PaymentDAO) Update(ctx context.Context, id uint, amount float64, paymentDate time.Time, notes string) error {
	result := d.db.WithContext(ctx).Model(&Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount":       amount,
		"payment_date": paymentDate,
		"notes":        notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// Delete is the admin destructive path; the only way a payment row ever
// disappears.
func (d *PaymentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

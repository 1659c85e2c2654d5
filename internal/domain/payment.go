package domain

import "time"

// Payment amounts are signed; negative entries record corrections.
// Cancelled payments stay on the books and contribute nothing to totals.
type Payment struct {
	ID          uint      `json:"id"`
	FamilyID    uint      `json:"family_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Notes       string    `json:"notes"`
	Cancelled   bool      `json:"cancelled"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined for admin listings.
	BookingRef string `json:"booking_ref,omitempty"`
}

package domain

import "time"

const (
	CampingTent      = "tent"
	CampingCampervan = "campervan"
)

// Class labels used for children. "Other" covers siblings and guests.
const (
	ClassBaobab = "Baobab"
	ClassOlive  = "Olive"
	ClassOther  = "Other"
)

type Family struct {
	ID          uint      `json:"id"`
	BookingRef  string    `json:"booking_ref"`
	AccessKey   string    `json:"access_key"`
	CampingType string    `json:"camping_type"`
	Nights      []string  `json:"nights"`
	Members     []Member  `json:"members"`
	TotalOwed   float64   `json:"total_owed"`
	TotalPaid   float64   `json:"total_paid"`
	Outstanding float64   `json:"outstanding"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Member struct {
	ID       uint    `json:"id"`
	FamilyID uint    `json:"family_id"`
	Name     string  `json:"name"`
	IsChild  bool    `json:"is_child"`
	Class    *string `json:"class"`
}

// Balance is always derived from current signup and payment rows,
// never cached.
type Balance struct {
	TotalOwed   float64 `json:"total_owed"`
	TotalPaid   float64 `json:"total_paid"`
	Outstanding float64 `json:"outstanding"`
}

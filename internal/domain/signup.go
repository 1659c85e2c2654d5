package domain

import "time"

// Signup records a family's participation in one activity as a list of
// participant names. Names are plain strings, not member references:
// renaming a member later does not rewrite history here.
type Signup struct {
	ID         uint      `json:"id"`
	ActivityID uint      `json:"activity_id"`
	FamilyID   uint      `json:"family_id"`
	Children   []string  `json:"children"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined for listings.
	ActivityName string  `json:"activity_name,omitempty"`
	SessionTime  string  `json:"session_time,omitempty"`
	Cost         float64 `json:"cost,omitempty"`
	BookingRef   string  `json:"booking_ref,omitempty"`
}

type SignupOutcome string

const (
	SignupCreated SignupOutcome = "created"
	SignupUpdated SignupOutcome = "updated"
	SignupDeleted SignupOutcome = "deleted"
	SignupSkipped SignupOutcome = "skipped"
)

type SignupResult struct {
	ID      uint          `json:"id,omitempty"`
	Outcome SignupOutcome `json:"outcome"`
}

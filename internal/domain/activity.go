package domain

import "time"

const (
	AgesChild = "child"
	AgesAdult = "adult"
	AgesBoth  = "both"
)

type Activity struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	SessionTime string    `json:"session_time"`
	Cost        float64   `json:"cost"`
	Description string    `json:"description"`
	// MaxParticipants of 0 means unlimited.
	MaxParticipants int    `json:"max_participants"`
	AllowedAges     string `json:"allowed_ages"`
	// Available is a cached flag maintained by the capacity gate on every
	// signup mutation; admins may override it directly.
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityParticipants is the public roster view of one activity.
type ActivityParticipants struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	SessionTime     string   `json:"session_time"`
	Description     string   `json:"description"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

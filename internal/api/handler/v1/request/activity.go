package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/baolive/camping-api/internal/domain"
)

type CreateActivityRequest struct {
	Name            string  `json:"name"`
	SessionTime     string  `json:"session_time"`
	Cost            float64 `json:"cost"`
	Description     string  `json:"description"`
	MaxParticipants int     `json:"max_participants"`
	AllowedAges     string  `json:"allowed_ages"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.SessionTime, validation.Required),
		validation.Field(&req.Cost, validation.Min(0.0)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
		validation.Field(&req.AllowedAges, validation.In(domain.AgesChild, domain.AgesAdult, domain.AgesBoth)),
	)
}

func (req *CreateActivityRequest) ToDomain() domain.Activity {
	ages := req.AllowedAges
	if ages == "" {
		ages = domain.AgesBoth
	}

	return domain.Activity{
		Name:            req.Name,
		SessionTime:     req.SessionTime,
		Cost:            req.Cost,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
		AllowedAges:     ages,
		Available:       true,
	}
}

// UpdateActivityRequest is a partial edit; absent fields keep their
// current values.
type UpdateActivityRequest struct {
	Name            *string  `json:"name"`
	SessionTime     *string  `json:"session_time"`
	Cost            *float64 `json:"cost"`
	Description     *string  `json:"description"`
	MaxParticipants *int     `json:"max_participants"`
	AllowedAges     *string  `json:"allowed_ages"`
}

func (req *UpdateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.Cost, validation.Min(0.0)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
		validation.Field(&req.AllowedAges, validation.In(domain.AgesChild, domain.AgesAdult, domain.AgesBoth)),
	)
}

// Fields returns the submitted columns for a gorm Updates call.
func (req *UpdateActivityRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SessionTime != nil {
		fields["session_time"] = *req.SessionTime
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MaxParticipants != nil {
		fields["max_participants"] = *req.MaxParticipants
	}
	if req.AllowedAges != nil {
		fields["allowed_ages"] = *req.AllowedAges
	}

	return fields
}

type ActivityAvailabilityRequest struct {
	Available *bool `json:"available"`
}

func (req *ActivityAvailabilityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Available, validation.NotNil),
	)
}

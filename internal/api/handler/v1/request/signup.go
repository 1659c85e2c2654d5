package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// UpsertSignupRequest reconciles one family's participation in one
// activity. An empty children list means withdraw.
type UpsertSignupRequest struct {
	ActivityID uint     `json:"activity_id"`
	AccessKey  string   `json:"access_key"`
	Children   []string `json:"children"`
}

func (req *UpsertSignupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.AccessKey, validation.Required),
		validation.Field(&req.Children, validation.Each(validation.Required, validation.Length(1, 100))),
	)
}

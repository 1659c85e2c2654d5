package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SigninRequest struct {
	Password string `json:"password"`
}

func (req *SigninRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}

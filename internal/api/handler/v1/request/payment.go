package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type RecordPaymentRequest struct {
	AccessKey   string   `json:"access_key"`
	Amount      *float64 `json:"amount"`
	PaymentDate string   `json:"payment_date"`
	Notes       string   `json:"notes"`
}

func (req *RecordPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AccessKey, validation.Required),
		validation.Field(&req.Amount, validation.NotNil),
		validation.Field(&req.PaymentDate, validation.Date(time.RFC3339)),
	)
}

// ParsedDate returns the submitted payment date, or the zero time when
// omitted so storage can default it.
func (req *RecordPaymentRequest) ParsedDate() time.Time {
	if req.PaymentDate == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, req.PaymentDate)
	if err != nil {
		return time.Time{}
	}

	return t
}

type EditPaymentRequest struct {
	Amount      *float64 `json:"amount"`
	PaymentDate string   `json:"payment_date"`
	Notes       string   `json:"notes"`
}

func (req *EditPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.NotNil),
		validation.Field(&req.PaymentDate, validation.Required, validation.Date(time.RFC3339)),
	)
}

func (req *EditPaymentRequest) ParsedDate() time.Time {
	t, err := time.Parse(time.RFC3339, req.PaymentDate)
	if err != nil {
		return time.Time{}
	}

	return t
}

package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordPaymentRequest_Validate(t *testing.T) {
	amount := 25.0
	req := RecordPaymentRequest{AccessKey: "key", Amount: &amount}
	assert.NoError(t, req.Validate())

	// Negative corrections are allowed.
	negative := -5.0
	req.Amount = &negative
	assert.NoError(t, req.Validate())

	req.Amount = nil
	assert.Error(t, req.Validate())

	req.Amount = &amount
	req.AccessKey = ""
	assert.Error(t, req.Validate())

	req.AccessKey = "key"
	req.PaymentDate = "yesterday"
	assert.Error(t, req.Validate())
}

func TestRecordPaymentRequest_ParsedDate(t *testing.T) {
	req := RecordPaymentRequest{}
	assert.True(t, req.ParsedDate().IsZero())

	req.PaymentDate = "2026-06-01T12:00:00Z"
	assert.Equal(t, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), req.ParsedDate())
}

func TestEditPaymentRequest_Validate(t *testing.T) {
	amount := 30.0
	req := EditPaymentRequest{Amount: &amount, PaymentDate: "2026-06-01T12:00:00Z"}
	assert.NoError(t, req.Validate())

	req.PaymentDate = ""
	assert.Error(t, req.Validate())
}

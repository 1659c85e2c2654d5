package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignIn(t *testing.T) {
	svc, err := NewAuthService("open-sesame")
	require.NoError(t, err)

	assert.NoError(t, svc.SignIn("open-sesame"))
	assert.ErrorIs(t, svc.SignIn("wrong"), ErrWrongPassword)
	assert.ErrorIs(t, svc.SignIn(""), ErrWrongPassword)
}

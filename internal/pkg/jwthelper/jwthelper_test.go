package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateAdminToken(key, "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(key, token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "test-agent", claims.UserAgent)
}

func TestParseAdminToken_WrongKey(t *testing.T) {
	token, err := GenerateAdminToken([]byte("key-one"), "agent")
	require.NoError(t, err)

	_, err = ParseAdminToken([]byte("key-two"), token)
	assert.Error(t, err)
}

func TestParseAdminToken_Garbage(t *testing.T) {
	_, err := ParseAdminToken([]byte("key"), "not-a-token")
	assert.Error(t, err)
}

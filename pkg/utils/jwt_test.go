package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "u1", "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "u1", "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("another-secret", token)
	require.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, "u1", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, token)
	require.Error(t, err)
}

func TestToken_Garbage(t *testing.T) {
	_, err := ValidateToken(testSecret, "not.a.token")
	require.Error(t, err)
}

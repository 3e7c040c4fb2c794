package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewear/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("testsecret", time.Hour)

	token, err := tm.GenerateToken(42, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claim, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claim.UserID)
	assert.Equal(t, models.RoleAdmin, claim.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("testsecret", time.Hour)
	other := NewTokenManager("othersecret", time.Hour)

	token, err := tm.GenerateToken(42, models.RoleUser)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("testsecret", -time.Minute)

	token, err := tm.GenerateToken(42, models.RoleUser)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

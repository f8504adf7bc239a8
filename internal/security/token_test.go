package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "a@b.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute, 24*time.Hour)

	token, err := tm.GenerateAccessToken("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	other := NewTokenManager("another-secret-0123456789abcdef01234", time.Hour, 24*time.Hour)

	token, err := other.GenerateAccessToken("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_TypeIsRefresh(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	token, err := tm.GenerateRefreshToken("user-1", "a@b.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

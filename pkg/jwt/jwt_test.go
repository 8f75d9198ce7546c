package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "admin@perkpal.io", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@perkpal.io", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)

	access, err := m.GenerateAccessToken("user-1", "a@b.co", "user")
	require.NoError(t, err)
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "a@b.co", "user")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)
	other := NewManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "a@b.co", "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

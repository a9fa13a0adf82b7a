package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, exp, err := m.GenerateAccessToken("user-1", "sid-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestJWTSecretsAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "sid-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1", "sid-1")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, _, err := m.GenerateAccessToken("user-1", "sid-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
)

const testJWTSecret = "test-signing-secret"

func TestHMACTokenService_RoundTrip(t *testing.T) {
	tokens, err := NewHMACTokenService(testJWTSecret, 15*time.Minute)
	require.NoError(t, err)

	signed, claims, err := tokens.GenerateToken("123456789", false)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.Equal(t, "123456789", claims.TelegramID)
	assert.False(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)

	parsed, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "123456789", parsed.TelegramID)
	assert.False(t, parsed.IsAdmin)
}

func TestHMACTokenService_AdminClaim(t *testing.T) {
	tokens, err := NewHMACTokenService(testJWTSecret, 15*time.Minute)
	require.NoError(t, err)

	signed, _, err := tokens.GenerateToken("admin", true)
	require.NoError(t, err)

	parsed, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin)
	assert.Equal(t, "admin", parsed.TelegramID)
}

func TestHMACTokenService_Expired(t *testing.T) {
	tokens, err := NewHMACTokenService(testJWTSecret, time.Nanosecond)
	require.NoError(t, err)

	signed, _, err := tokens.GenerateToken("123456789", false)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = tokens.ValidateToken(signed)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestHMACTokenService_WrongSecret(t *testing.T) {
	tokens, err := NewHMACTokenService(testJWTSecret, 15*time.Minute)
	require.NoError(t, err)
	otherTokens, err := NewHMACTokenService("other-secret", 15*time.Minute)
	require.NoError(t, err)

	signed, _, err := otherTokens.GenerateToken("123456789", false)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(signed)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestHMACTokenService_Garbage(t *testing.T) {
	tokens, err := NewHMACTokenService(testJWTSecret, 15*time.Minute)
	require.NoError(t, err)

	_, err = tokens.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestNewHMACTokenService_Validation(t *testing.T) {
	_, err := NewHMACTokenService("", 15*time.Minute)
	assert.Error(t, err)

	_, err = NewHMACTokenService(testJWTSecret, 0)
	assert.Error(t, err)
}

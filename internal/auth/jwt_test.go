package auth

import (
	"testing"
	"time"

	"talentcast_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, ttlHours int) {
	t.Helper()
	prev := config.AppConfig

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit_test_secret"
	cfg.JWT.TTL = ttlHours
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t, 7*24)

	token, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, 7*24)

	now := time.Now().Add(-48 * time.Hour)
	claims := Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("unit_test_secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, 7*24)

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a_different_secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, 7*24)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_MissingSubject(t *testing.T) {
	setTestConfig(t, 7*24)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("unit_test_secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

package auth

import (
	"testing"
	"time"

	"monateg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "monateg-test",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, 42, 123456789, "USER")
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, uint64(123456789), claims.TelegramID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "monateg-test", claims.Issuer)
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, 42, 123456789, "USER")
	require.NoError(t, err)

	other := *cfg
	other.Secret = "different-secret"
	_, err = ParseToken(&other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute
	token, err := GenerateToken(cfg, 42, 123456789, "USER")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testJWTConfig(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

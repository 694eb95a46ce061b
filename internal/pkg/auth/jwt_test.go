// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Le Petit Marché API"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.SessionExpiry = time.Hour
	return cfg
}

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateSessionToken(42, "marie@example.fr", "Marie")
	require.NoError(t, err)

	claims, err := manager.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "marie@example.fr", claims.Email)
	assert.Equal(t, "Marie", claims.Name)
	assert.Equal(t, "user:42", claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateSessionToken(1, "a@b.fr", "A")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewJWTManager(other).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.SessionExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateSessionToken(1, "a@b.fr", "A")
	require.NoError(t, err)

	_, err = manager.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "abc", ExtractTokenFromHeader("bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("abc"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}

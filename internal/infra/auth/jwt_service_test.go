package auth

import (
	"testing"

	"wayfare/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenService.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	signer, err := NewJWTService(newTestTokenConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("secret-b"))
	require.NoError(t, err)

	token, err := signer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	tokenService, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	_, err = tokenService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
}

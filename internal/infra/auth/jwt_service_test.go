package auth

import (
	"testing"
	"time"

	"arenago/config"
	"arenago/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	pair, err := jwtService.GenerateTokens(userID, entity.RoleCenter)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.RoleCenter, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens don't carry a role
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	userID := uuid.New()
	pair, err := jwtService.GenerateTokens(userID, entity.RoleUser)
	assert.NoError(t, err)

	// A refresh token must not pass where an access token is expected,
	// and vice versa.
	claims, err := jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}

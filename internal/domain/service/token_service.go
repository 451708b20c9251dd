package service

import (
	"time"

	"arenago/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the signed tokens.
// The Role claim on an access token is the authoritative authorization
// tag; it is a cached copy of the profile role and can lag behind a
// role-mutating operation until the client refreshes its session.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens issued for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	// Only the access token carries the role claim.
	GenerateTokens(userID uuid.UUID, role entity.Role) (*TokenPair, error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

package usecase

import (
	"context"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the issued tokens along with the session identity.
type SessionOutput struct {
	UserID uuid.UUID
	Role   entity.Role
	Tokens *service.TokenPair
}

// AuthUsecase defines the interface for account lifecycle operations.
type AuthUsecase interface {
	// SignUp creates an account and its profile (role "user") in one
	// transaction, then issues a token pair.
	SignUp(ctx context.Context, input *SignUpInput) (*SessionOutput, error)

	// Login verifies the credentials and issues a token pair carrying
	// the profile's current role.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Refresh validates a refresh token, re-resolves the role from the
	// profile row and issues a new pair. This is the explicit re-auth
	// that makes a freshly stamped role visible to the client.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Promote updates the profile role directly. Exposed only through the
	// development routes; gated by configuration.
	Promote(ctx context.Context, userID uuid.UUID, role entity.Role) error
}

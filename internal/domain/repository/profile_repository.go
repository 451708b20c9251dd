// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrProfileNotFound is returned when a profile row is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// ProfileRepository defines the operations for application-identity persistence.
type ProfileRepository interface {
	// FindByID retrieves a profile by the owning account's ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile row.
	Create(ctx context.Context, profile *entity.Profile) error

	// Upsert inserts the profile or, when a row with the same ID exists,
	// overwrites its role, center link and active flag in place.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// UpdateRole sets the role sync copy on an existing profile row.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// FindActiveReviewerIDs lists the account IDs of active admin and
	// superadmin profiles, used for the new-registration broadcast.
	FindActiveReviewerIDs(ctx context.Context) ([]uuid.UUID, error)
}

// AccountRepository defines the operations for credential persistence.
type AccountRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}

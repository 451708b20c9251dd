package usecase

import (
	"context"

	"arenago/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterCenterInput defines the data required to submit a center registration.
// UserID identifies the already-authenticated submitting account; the endpoint
// trusts it as supplied.
type RegisterCenterInput struct {
	UserID             uuid.UUID
	CenterName         string
	Email              string
	Phone              string
	Address            string
	PostalCode         string
	City               string
	State              string
	Country            string
	CountryCode        string
	BusinessID         string
	ContactPerson      string
	ContactPersonPhone string
}

// --- Output DTOs ---

// RegisterCenterOutput returns the new center's ID along with a freshly
// issued token pair carrying the center role, so the caller does not have
// to hold a stale-role token until the next refresh.
type RegisterCenterOutput struct {
	CenterID uuid.UUID
	Tokens   *service.TokenPair
}

// RegistrationUsecase defines the interface for the center registration intake.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type RegistrationUsecase interface {
	// Register runs the staged intake: center insert, best-effort geocode
	// enrichment, profile upsert and role stamping. The first and last two
	// stages are fatal on failure; geocoding never is.
	Register(ctx context.Context, input *RegisterCenterInput) (*RegisterCenterOutput, error)
}

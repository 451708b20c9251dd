package usecase

import (
	"context"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PatchAddressInput carries the partial address update for the caller's
// center. Nil members leave the corresponding column untouched.
type PatchAddressInput struct {
	Address    *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
}

// IsEmpty reports whether no column would be written.
func (in *PatchAddressInput) IsEmpty() bool {
	return in.Address == nil && in.City == nil && in.State == nil &&
		in.Country == nil && in.PostalCode == nil
}

// --- Output DTOs ---

// ProfileOutput is the joined view of a profile with its center and the
// center's geocoded coordinates, when present.
type ProfileOutput struct {
	Profile *entity.Profile
	Center  *entity.Center
}

// ProfileUsecase defines the interface for profile and center-profile reads
// and the center address update.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile joined with the linked
	// center and its coordinates. A missing center link yields a profile
	// with a nil Center.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// PatchAddress applies the partial address update to the caller's own
	// center, then re-geocodes best-effort. The geocode never fails the
	// update.
	PatchAddress(ctx context.Context, userID uuid.UUID, input *PatchAddressInput) (*entity.Center, error)
}

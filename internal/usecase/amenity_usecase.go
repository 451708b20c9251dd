package usecase

import (
	"context"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAmenityInput defines the data required to add an amenity.
// The slug is derived from Name; a name with no usable characters is a
// validation error.
type CreateAmenityInput struct {
	Name string
	Icon string
}

// AmenityUsecase defines the interface for amenity management, scoped to
// the caller's own center.
type AmenityUsecase interface {
	// CreateAmenity adds an amenity to the caller's center.
	CreateAmenity(ctx context.Context, centerID uuid.UUID, input *CreateAmenityInput) (*entity.Amenity, error)

	// ListAmenities returns the caller's amenities ordered by name.
	ListAmenities(ctx context.Context, centerID uuid.UUID) ([]*entity.Amenity, error)

	// SetAmenityActive toggles whether an amenity is advertised.
	SetAmenityActive(ctx context.Context, centerID, amenityID uuid.UUID, active bool) (*entity.Amenity, error)

	// DeleteAmenity removes an amenity.
	DeleteAmenity(ctx context.Context, centerID, amenityID uuid.UUID) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for facility persistence.
var (
	// ErrFieldNotFound is returned when a field is not found within the caller's center.
	ErrFieldNotFound = errors.New("field not found")
	// ErrAmenityNotFound is returned when an amenity is not found within the caller's center.
	ErrAmenityNotFound = errors.New("amenity not found")
)

// FieldRepository defines the operations for playing-field persistence.
// Every operation is fenced by the owning center's ID.
type FieldRepository interface {
	// Create persists a new field.
	Create(ctx context.Context, field *entity.Field) error

	// ListByCenter retrieves all fields of a center, newest first, with sports preloaded.
	ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*entity.Field, error)

	// Update applies the non-nil updates to a field owned by the center
	// and returns the updated record.
	Update(ctx context.Context, id, centerID uuid.UUID, updates *FieldUpdates) (*entity.Field, error)
}

// FieldUpdates carries the partial-update set for a field. Nil members
// leave the corresponding column untouched.
type FieldUpdates struct {
	Name         *string
	SportID      *uuid.UUID
	Area         *entity.FieldArea
	Status       *entity.FieldStatus
	LocationNote *string
	ImageURL     *string
}

// IsEmpty reports whether no column would be written.
func (u *FieldUpdates) IsEmpty() bool {
	return u.Name == nil && u.SportID == nil && u.Area == nil &&
		u.Status == nil && u.LocationNote == nil && u.ImageURL == nil
}

// AmenityRepository defines the operations for amenity persistence.
type AmenityRepository interface {
	// Create persists a new amenity.
	Create(ctx context.Context, amenity *entity.Amenity) error

	// ListByCenter retrieves all amenities of a center ordered by name.
	ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*entity.Amenity, error)

	// SetActive toggles the is_active flag on an amenity owned by the center
	// and returns the updated record.
	SetActive(ctx context.Context, id, centerID uuid.UUID, active bool) (*entity.Amenity, error)

	// Delete removes an amenity owned by the center.
	Delete(ctx context.Context, id, centerID uuid.UUID) error
}

// SportRepository defines read access to the sports catalog.
type SportRepository interface {
	// List retrieves the full catalog ordered by name.
	List(ctx context.Context) ([]*entity.Sport, error)
}

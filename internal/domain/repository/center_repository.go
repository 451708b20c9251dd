// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCenterNotFound is a domain-specific error returned when a center is not found.
var ErrCenterNotFound = errors.New("center not found")

// CenterRepository defines the standard operations for center persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CenterRepository interface {
	// Create persists a new center entity to the storage.
	Create(ctx context.Context, center *entity.Center) error

	// FindByID retrieves a single center by its unique ID, preloading its coordinates.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Center, error)

	// UpdateStatus sets the lifecycle status of a center and returns the
	// updated record. Returns ErrCenterNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CenterStatus) (*entity.Center, error)

	// UpdateAddress overwrites the postal address fields of a center.
	UpdateAddress(ctx context.Context, id uuid.UUID, addr *entity.Center) error

	// UpsertCoordinates writes the geocoded location for a center. When the
	// center already references a coordinates row it is updated in place;
	// otherwise a new row is inserted and back-linked onto the center.
	UpsertCoordinates(ctx context.Context, centerID uuid.UUID, coords *entity.Coordinates) error

	// ListByStatus retrieves centers in a given lifecycle status, newest first.
	ListByStatus(ctx context.Context, status entity.CenterStatus, limit, offset int) ([]*entity.Center, error)
}

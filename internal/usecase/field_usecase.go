package usecase

import (
	"context"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateFieldInput defines the data required to add a playing field.
// Area and Status are optional and default to Outdoor/active.
type CreateFieldInput struct {
	Name         string
	SportID      uuid.UUID
	Area         entity.FieldArea
	Status       entity.FieldStatus
	LocationNote string
	ImageURL     string
}

// FieldUsecase defines the interface for playing-field management.
// Every operation runs in the context of the caller's own center.
type FieldUsecase interface {
	// CreateField adds a field to the caller's center.
	CreateField(ctx context.Context, centerID uuid.UUID, input *CreateFieldInput) (*entity.Field, error)

	// ListFields returns the caller's fields, newest first.
	ListFields(ctx context.Context, centerID uuid.UUID) ([]*entity.Field, error)

	// UpdateField applies a partial update to one of the caller's fields.
	// An update with no recognized fields is a validation error.
	UpdateField(ctx context.Context, centerID, fieldID uuid.UUID, updates *repository.FieldUpdates) (*entity.Field, error)

	// ListSports returns the public sports catalog.
	ListSports(ctx context.Context) ([]*entity.Sport, error)
}

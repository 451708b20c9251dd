package usecase

import (
	"context"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ReviewInput defines the data required to review a pending registration.
// Reviewer carries the caller's resolved identity; authorization is checked
// before any validation or mutation.
type ReviewInput struct {
	Reviewer *ResolvedIdentity
	CenterID uuid.UUID
	Action   entity.ReviewAction
}

// --- Output DTOs ---

// ReviewOutput returns the reviewed center's ID and its new status.
type ReviewOutput struct {
	CenterID uuid.UUID
	Status   entity.CenterStatus
}

// ReviewUsecase defines the interface for the registration approval workflow.
type ReviewUsecase interface {
	// Review applies an approve or reject decision to a center. The status
	// write is unconditional (concurrent reviews race with last write wins)
	// and commits before the best-effort notification to the submitter.
	Review(ctx context.Context, input *ReviewInput) (*ReviewOutput, error)
}

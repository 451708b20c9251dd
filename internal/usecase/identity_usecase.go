// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/service"

	"github.com/google/uuid"
)

// ResolvedIdentity is the outcome of resolving a session's identity:
// who the caller is and which application role they hold right now.
type ResolvedIdentity struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IdentityUsecase resolves the application role of an authenticated
// session. The token's role claim is the fast path; when it is absent
// the profile row is consulted, with the answer cached briefly.
type IdentityUsecase interface {
	// Resolve returns the caller's identity. A claim without a role
	// falls back to the profile row; a failed fallback lookup resolves
	// to the empty role rather than an error.
	Resolve(ctx context.Context, claims *service.Claims) *ResolvedIdentity

	// InvalidateRole drops the cached fallback role for one account.
	// Called after any role mutation so the next fallback hits the row.
	InvalidateRole(userID uuid.UUID)
}

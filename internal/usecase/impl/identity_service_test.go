package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	mockRepo "arenago/internal/mocks/repository"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service     usecase.IdentityUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewIdentityService(profileRepo, nil, logger)

	return identityServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
	}
}

func TestIdentityService_Resolve_NilClaims(t *testing.T) {
	fx := createTestIdentityService(t)

	identity := fx.service.Resolve(context.Background(), nil)

	assert.Nil(t, identity)
}

func TestIdentityService_Resolve_ClaimRoleWins(t *testing.T) {
	fx := createTestIdentityService(t)

	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleAdmin}

	identity := fx.service.Resolve(context.Background(), claims)

	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
}

func TestIdentityService_Resolve_FallsBackToProfileRow(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID}

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleCenter}, nil)

	identity := fx.service.Resolve(ctx, claims)

	require.NotNil(t, identity)
	assert.Equal(t, entity.RoleCenter, identity.Role)
}

func TestIdentityService_Resolve_FallbackInfersRoleFromCenterLink(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CenterID: &centerID}, nil)

	identity := fx.service.Resolve(ctx, &service.Claims{UserID: userID})

	require.NotNil(t, identity)
	assert.Equal(t, entity.RoleCenter, identity.Role)
}

func TestIdentityService_Resolve_FallbackIsCached(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID}

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleUser}, nil).
		Once()

	first := fx.service.Resolve(ctx, claims)
	second := fx.service.Resolve(ctx, claims)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, entity.RoleUser, second.Role)
}

func TestIdentityService_Resolve_FallbackErrorResolvesToNoRole(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, errors.New("connection refused"))

	identity := fx.service.Resolve(ctx, &service.Claims{UserID: userID})

	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.Role(""), identity.Role)
}

func TestIdentityService_Resolve_MissingProfileResolvesToNoRole(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	identity := fx.service.Resolve(ctx, &service.Claims{UserID: userID})

	require.NotNil(t, identity)
	assert.False(t, identity.Role.IsValid())
}

func TestIdentityService_InvalidateRole_DropsCachedFallback(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID}

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleUser}, nil).
		Once()

	first := fx.service.Resolve(ctx, claims)
	require.NotNil(t, first)
	assert.Equal(t, entity.RoleUser, first.Role)

	fx.service.InvalidateRole(userID)

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleCenter}, nil).
		Once()

	second := fx.service.Resolve(ctx, claims)
	require.NotNil(t, second)
	assert.Equal(t, entity.RoleCenter, second.Role)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	mockRepo "arenago/internal/mocks/repository"
	mockService "arenago/internal/mocks/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	centerRepo  *mockRepo.MockCenterRepository
	geocoder    *mockService.MockGeocoder
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	centerRepo := mockRepo.NewMockCenterRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(profileRepo, centerRepo, geocoder, logger)

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		centerRepo:  centerRepo,
		geocoder:    geocoder,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile_WithCenter(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleCenter, CenterID: &centerID}
	center := &entity.Center{ID: centerID, Name: "Padel Palace"}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(center, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
	assert.Equal(t, center, output.Center)
}

func TestProfileService_GetProfile_NoCenterLink(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleUser}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
	assert.Nil(t, output.Center)
}

func TestProfileService_GetProfile_DanglingCenterLink(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleCenter, CenterID: &centerID}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(nil, repository.ErrCenterNotFound)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
	assert.Nil(t, output.Center)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.GetProfile(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, output)
}

func TestProfileService_PatchAddress_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleCenter, CenterID: &centerID}
	center := &entity.Center{
		ID:      centerID,
		Name:    "Padel Palace",
		Address: "Old Street 1",
		City:    "Helsinki",
		Country: "Finland",
	}
	reloaded := &entity.Center{ID: centerID, Name: "Padel Palace", Address: "New Street 2"}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(center, nil).Once()
	fx.centerRepo.EXPECT().
		UpdateAddress(ctx, centerID, mock.AnythingOfType("*entity.Center")).
		Run(func(ctx context.Context, id uuid.UUID, addr *entity.Center) {
			assert.Equal(t, "New Street 2", addr.Address)
			assert.Equal(t, "Espoo", addr.City)
			assert.Equal(t, "Finland", addr.Country)
		}).
		Return(nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, "New Street 2, Espoo, Finland").
		Return(&service.GeocodeResult{Latitude: 60.2, Longitude: 24.65}, nil)
	fx.centerRepo.EXPECT().
		UpsertCoordinates(ctx, centerID, mock.AnythingOfType("*entity.Coordinates")).
		Return(nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(reloaded, nil).Once()

	updated, err := fx.service.PatchAddress(ctx, userID, &usecase.PatchAddressInput{
		Address: strPtr("New Street 2"),
		City:    strPtr("Espoo"),
	})

	require.NoError(t, err)
	assert.Equal(t, reloaded, updated)
}

func TestProfileService_PatchAddress_EmptyPatch(t *testing.T) {
	fx := createTestProfileService(t)

	updated, err := fx.service.PatchAddress(context.Background(), uuid.New(), &usecase.PatchAddressInput{})

	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "no valid fields to update", appErr.Details())
}

func TestProfileService_PatchAddress_NoCenterLink(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleUser}, nil)

	updated, err := fx.service.PatchAddress(ctx, userID, &usecase.PatchAddressInput{
		City: strPtr("Espoo"),
	})

	require.ErrorIs(t, err, domainerrors.ErrCenterNotFound)
	assert.Nil(t, updated)
}

func TestProfileService_PatchAddress_GeocodeFailureIsNotFatal(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleCenter, CenterID: &centerID}
	center := &entity.Center{ID: centerID, Name: "Padel Palace", City: "Helsinki"}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(center, nil).Once()
	fx.centerRepo.EXPECT().
		UpdateAddress(ctx, centerID, mock.AnythingOfType("*entity.Center")).
		Return(nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("string")).
		Return(nil, errors.New("nominatim timeout"))
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(center, nil).Once()

	updated, err := fx.service.PatchAddress(ctx, userID, &usecase.PatchAddressInput{
		City: strPtr("Espoo"),
	})

	require.NoError(t, err)
	assert.Equal(t, center, updated)
}

func TestProfileService_PatchAddress_WriteFails(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	centerID := uuid.New()
	profile := &entity.Profile{ID: userID, Role: entity.RoleCenter, CenterID: &centerID}
	center := &entity.Center{ID: centerID, Name: "Padel Palace"}

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.centerRepo.EXPECT().FindByID(ctx, centerID).Return(center, nil)
	fx.centerRepo.EXPECT().
		UpdateAddress(ctx, centerID, mock.AnythingOfType("*entity.Center")).
		Return(errors.New("connection reset"))

	updated, err := fx.service.PatchAddress(ctx, userID, &usecase.PatchAddressInput{
		City: strPtr("Espoo"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "address", appErr.Details())
}

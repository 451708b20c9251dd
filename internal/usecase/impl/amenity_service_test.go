package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	mockRepo "arenago/internal/mocks/repository"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// amenityServiceFixtures holds all test dependencies for amenity service tests.
type amenityServiceFixtures struct {
	service     usecase.AmenityUsecase
	amenityRepo *mockRepo.MockAmenityRepository
}

func createTestAmenityService(t *testing.T) amenityServiceFixtures {
	amenityRepo := mockRepo.NewMockAmenityRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAmenityService(amenityRepo, logger)

	return amenityServiceFixtures{
		service:     svc,
		amenityRepo: amenityRepo,
	}
}

func TestAmenityService_CreateAmenity_Success(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()

	fx.amenityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Amenity")).
		Run(func(ctx context.Context, amenity *entity.Amenity) {
			amenity.ID = uuid.New()
			assert.Equal(t, centerID, amenity.CenterID)
			assert.Equal(t, "Locker Rooms", amenity.Name)
			assert.Equal(t, "locker-rooms", amenity.Slug)
			assert.True(t, amenity.IsActive)
		}).
		Return(nil)

	amenity, err := fx.service.CreateAmenity(ctx, centerID, &usecase.CreateAmenityInput{
		Name: "Locker Rooms",
		Icon: "locker",
	})

	require.NoError(t, err)
	assert.Equal(t, "locker-rooms", amenity.Slug)
}

func TestAmenityService_CreateAmenity_UnusableName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "punctuation only", input: "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAmenityService(t)

			amenity, err := fx.service.CreateAmenity(context.Background(), uuid.New(), &usecase.CreateAmenityInput{
				Name: tt.input,
			})

			require.Error(t, err)
			assert.Nil(t, amenity)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAmenityService_ListAmenities(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()
	expected := []*entity.Amenity{{ID: uuid.New(), CenterID: centerID, Name: "Showers"}}

	fx.amenityRepo.EXPECT().ListByCenter(ctx, centerID).Return(expected, nil)

	amenities, err := fx.service.ListAmenities(ctx, centerID)

	require.NoError(t, err)
	assert.Equal(t, expected, amenities)
}

func TestAmenityService_SetAmenityActive(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()
	amenityID := uuid.New()
	expected := &entity.Amenity{ID: amenityID, CenterID: centerID, IsActive: false}

	fx.amenityRepo.EXPECT().SetActive(ctx, amenityID, centerID, false).Return(expected, nil)

	amenity, err := fx.service.SetAmenityActive(ctx, centerID, amenityID, false)

	require.NoError(t, err)
	assert.False(t, amenity.IsActive)
}

func TestAmenityService_SetAmenityActive_NotOwned(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()
	amenityID := uuid.New()

	fx.amenityRepo.EXPECT().
		SetActive(ctx, amenityID, centerID, true).
		Return(nil, repository.ErrAmenityNotFound)

	amenity, err := fx.service.SetAmenityActive(ctx, centerID, amenityID, true)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, amenity)
}

func TestAmenityService_DeleteAmenity(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()
	amenityID := uuid.New()

	fx.amenityRepo.EXPECT().Delete(ctx, amenityID, centerID).Return(nil)

	err := fx.service.DeleteAmenity(ctx, centerID, amenityID)

	require.NoError(t, err)
}

func TestAmenityService_DeleteAmenity_NotOwned(t *testing.T) {
	fx := createTestAmenityService(t)

	ctx := context.Background()
	centerID := uuid.New()
	amenityID := uuid.New()

	fx.amenityRepo.EXPECT().
		Delete(ctx, amenityID, centerID).
		Return(repository.ErrAmenityNotFound)

	err := fx.service.DeleteAmenity(ctx, centerID, amenityID)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Locker Rooms", expected: "locker-rooms"},
		{input: "  Café & Bar  ", expected: "caf-bar"},
		{input: "WiFi", expected: "wifi"},
		{input: "A  -  B", expected: "a-b"},
		{input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, entity.Slugify(tt.input), "input %q", tt.input)
	}
}

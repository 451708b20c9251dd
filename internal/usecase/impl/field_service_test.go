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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fieldServiceFixtures holds all test dependencies for field service tests.
type fieldServiceFixtures struct {
	service   usecase.FieldUsecase
	fieldRepo *mockRepo.MockFieldRepository
	sportRepo *mockRepo.MockSportRepository
}

func createTestFieldService(t *testing.T) fieldServiceFixtures {
	fieldRepo := mockRepo.NewMockFieldRepository(t)
	sportRepo := mockRepo.NewMockSportRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewFieldService(fieldRepo, sportRepo, logger)

	return fieldServiceFixtures{
		service:   svc,
		fieldRepo: fieldRepo,
		sportRepo: sportRepo,
	}
}

func TestFieldService_CreateField_DefaultsAreaAndStatus(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()
	centerID := uuid.New()
	sportID := uuid.New()

	fx.fieldRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Field")).
		Run(func(ctx context.Context, field *entity.Field) {
			field.ID = uuid.New()
			assert.Equal(t, centerID, field.CenterID)
			assert.Equal(t, entity.FieldAreaOutdoor, field.Area)
			assert.Equal(t, entity.FieldStatusActive, field.Status)
		}).
		Return(nil)

	field, err := fx.service.CreateField(ctx, centerID, &usecase.CreateFieldInput{
		Name:    "Court 1",
		SportID: sportID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Court 1", field.Name)
}

func TestFieldService_CreateField_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateFieldInput
		details string
	}{
		{
			name:    "missing name",
			input:   &usecase.CreateFieldInput{SportID: uuid.New()},
			details: "name is required",
		},
		{
			name:    "missing sport",
			input:   &usecase.CreateFieldInput{Name: "Court 1"},
			details: "sportId is required",
		},
		{
			name:    "bad area",
			input:   &usecase.CreateFieldInput{Name: "Court 1", SportID: uuid.New(), Area: "Rooftop"},
			details: "area must be Indoor or Outdoor",
		},
		{
			name:    "bad status",
			input:   &usecase.CreateFieldInput{Name: "Court 1", SportID: uuid.New(), Status: "closed"},
			details: "status must be active or maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFieldService(t)

			field, err := fx.service.CreateField(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, field)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestFieldService_ListFields(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()
	centerID := uuid.New()
	expected := []*entity.Field{{ID: uuid.New(), CenterID: centerID, Name: "Court 1"}}

	fx.fieldRepo.EXPECT().ListByCenter(ctx, centerID).Return(expected, nil)

	fields, err := fx.service.ListFields(ctx, centerID)

	require.NoError(t, err)
	assert.Equal(t, expected, fields)
}

func TestFieldService_UpdateField_Success(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()
	centerID := uuid.New()
	fieldID := uuid.New()
	newStatus := entity.FieldStatusMaintenance
	updates := &repository.FieldUpdates{Status: &newStatus}
	expected := &entity.Field{ID: fieldID, CenterID: centerID, Status: newStatus}

	fx.fieldRepo.EXPECT().Update(ctx, fieldID, centerID, updates).Return(expected, nil)

	field, err := fx.service.UpdateField(ctx, centerID, fieldID, updates)

	require.NoError(t, err)
	assert.Equal(t, expected, field)
}

func TestFieldService_UpdateField_EmptyUpdate(t *testing.T) {
	fx := createTestFieldService(t)

	field, err := fx.service.UpdateField(context.Background(), uuid.New(), uuid.New(), &repository.FieldUpdates{})

	require.Error(t, err)
	assert.Nil(t, field)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "no valid fields to update", appErr.Details())
}

func TestFieldService_UpdateField_InvalidArea(t *testing.T) {
	fx := createTestFieldService(t)

	badArea := entity.FieldArea("Rooftop")
	field, err := fx.service.UpdateField(context.Background(), uuid.New(), uuid.New(), &repository.FieldUpdates{Area: &badArea})

	require.Error(t, err)
	assert.Nil(t, field)
}

func TestFieldService_UpdateField_NotOwned(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()
	centerID := uuid.New()
	fieldID := uuid.New()
	name := "Court 2"
	updates := &repository.FieldUpdates{Name: &name}

	fx.fieldRepo.EXPECT().
		Update(ctx, fieldID, centerID, updates).
		Return(nil, repository.ErrFieldNotFound)

	field, err := fx.service.UpdateField(ctx, centerID, fieldID, updates)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, field)
}

func TestFieldService_ListSports(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()
	expected := []*entity.Sport{{ID: uuid.New(), Name: "Padel", Slug: "padel"}}

	fx.sportRepo.EXPECT().List(ctx).Return(expected, nil)

	sports, err := fx.service.ListSports(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, sports)
}

func TestFieldService_ListSports_Error(t *testing.T) {
	fx := createTestFieldService(t)

	ctx := context.Background()

	fx.sportRepo.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

	sports, err := fx.service.ListSports(ctx)

	require.Error(t, err)
	assert.Nil(t, sports)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	mockRepo "arenago/internal/mocks/repository"
	mockUsecase "arenago/internal/mocks/usecase"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service        usecase.ReviewUsecase
	centerRepo     *mockRepo.MockCenterRepository
	notificationUC *mockUsecase.MockNotificationUsecase
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	centerRepo := mockRepo.NewMockCenterRepository(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewReviewService(centerRepo, notificationUC, logger)

	return reviewServiceFixtures{
		service:        svc,
		centerRepo:     centerRepo,
		notificationUC: notificationUC,
	}
}

func adminReviewer() *usecase.ResolvedIdentity {
	return &usecase.ResolvedIdentity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func TestReviewService_Review_Approve(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	centerID := uuid.New()
	submitterID := uuid.New()
	center := &entity.Center{
		ID:        centerID,
		Name:      "Padel Palace",
		Status:    entity.CenterStatusActive,
		CreatedBy: submitterID,
	}

	fx.centerRepo.EXPECT().
		UpdateStatus(ctx, centerID, entity.CenterStatusActive).
		Return(center, nil)
	fx.notificationUC.EXPECT().
		Notify(ctx, mock.AnythingOfType("*usecase.NotifyInput")).
		Run(func(ctx context.Context, notify *usecase.NotifyInput) {
			assert.Equal(t, submitterID, notify.RecipientUserID)
			assert.Equal(t, entity.NotificationTypeCenterApproved, notify.Type)
			assert.Equal(t, "Center approved", notify.Title)
			assert.Equal(t, "Padel Palace has been approved by admin.", notify.Message)
			assert.Equal(t, centerID.String(), notify.Payload["centerId"])
			assert.Equal(t, "/center/dashboard", notify.Payload["route"])
		}).
		Return(nil)

	output, err := fx.service.Review(ctx, &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: centerID,
		Action:   entity.ReviewActionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, centerID, output.CenterID)
	assert.Equal(t, entity.CenterStatusActive, output.Status)
}

func TestReviewService_Review_Reject(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	centerID := uuid.New()
	submitterID := uuid.New()
	center := &entity.Center{
		ID:        centerID,
		Name:      "Padel Palace",
		Status:    entity.CenterStatusRejected,
		CreatedBy: submitterID,
	}

	fx.centerRepo.EXPECT().
		UpdateStatus(ctx, centerID, entity.CenterStatusRejected).
		Return(center, nil)
	fx.notificationUC.EXPECT().
		Notify(ctx, mock.AnythingOfType("*usecase.NotifyInput")).
		Run(func(ctx context.Context, notify *usecase.NotifyInput) {
			assert.Equal(t, entity.NotificationTypeCenterRejected, notify.Type)
			assert.Equal(t, "Center registration rejected", notify.Title)
			assert.Equal(t, "Padel Palace has been rejected by admin.", notify.Message)
			assert.Equal(t, "/center/pending", notify.Payload["route"])
		}).
		Return(nil)

	output, err := fx.service.Review(ctx, &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: centerID,
		Action:   entity.ReviewActionReject,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CenterStatusRejected, output.Status)
}

func TestReviewService_Review_UnauthorizedRoles(t *testing.T) {
	tests := []struct {
		name     string
		reviewer *usecase.ResolvedIdentity
	}{
		{name: "no session", reviewer: nil},
		{name: "player role", reviewer: &usecase.ResolvedIdentity{UserID: uuid.New(), Role: entity.RoleUser}},
		{name: "center role", reviewer: &usecase.ResolvedIdentity{UserID: uuid.New(), Role: entity.RoleCenter}},
		{name: "empty role", reviewer: &usecase.ResolvedIdentity{UserID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			output, err := fx.service.Review(context.Background(), &usecase.ReviewInput{
				Reviewer: tt.reviewer,
				CenterID: uuid.New(),
				Action:   entity.ReviewActionApprove,
			})

			require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
			assert.Nil(t, output)
		})
	}
}

// Authorization is checked before the action verb, so a bad action from
// an unauthorized caller still reads as unauthorized.
func TestReviewService_Review_UnauthorizedBeforeValidation(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Review(context.Background(), &usecase.ReviewInput{
		Reviewer: nil,
		CenterID: uuid.Nil,
		Action:   entity.ReviewAction("purge"),
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestReviewService_Review_MissingCenterID(t *testing.T) {
	fx := createTestReviewService(t)

	output, err := fx.service.Review(context.Background(), &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: uuid.Nil,
		Action:   entity.ReviewActionApprove,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_Review_InvalidAction(t *testing.T) {
	fx := createTestReviewService(t)

	output, err := fx.service.Review(context.Background(), &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: uuid.New(),
		Action:   entity.ReviewAction("archive"),
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidAction)
	assert.Nil(t, output)
}

func TestReviewService_Review_StatusWriteFails(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	centerID := uuid.New()

	fx.centerRepo.EXPECT().
		UpdateStatus(ctx, centerID, entity.CenterStatusActive).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Review(ctx, &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: centerID,
		Action:   entity.ReviewActionApprove,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "status", appErr.Details())
}

func TestReviewService_Review_NotifyFailureIsNotFatal(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	centerID := uuid.New()
	center := &entity.Center{
		ID:        centerID,
		Name:      "Padel Palace",
		Status:    entity.CenterStatusActive,
		CreatedBy: uuid.New(),
	}

	fx.centerRepo.EXPECT().
		UpdateStatus(ctx, centerID, entity.CenterStatusActive).
		Return(center, nil)
	fx.notificationUC.EXPECT().
		Notify(ctx, mock.AnythingOfType("*usecase.NotifyInput")).
		Return(errors.New("redis down"))

	output, err := fx.service.Review(ctx, &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: centerID,
		Action:   entity.ReviewActionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CenterStatusActive, output.Status)
}

func TestReviewService_Review_NoSubmitterSkipsNotification(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	centerID := uuid.New()
	center := &entity.Center{
		ID:     centerID,
		Name:   "Padel Palace",
		Status: entity.CenterStatusActive,
	}

	fx.centerRepo.EXPECT().
		UpdateStatus(ctx, centerID, entity.CenterStatusActive).
		Return(center, nil)

	output, err := fx.service.Review(ctx, &usecase.ReviewInput{
		Reviewer: adminReviewer(),
		CenterID: centerID,
		Action:   entity.ReviewActionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, centerID, output.CenterID)
}

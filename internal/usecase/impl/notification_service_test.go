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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockService.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewNotificationService(notificationRepo, publisher, nil, logger)

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func TestNotificationService_Notify_StoresAndPublishes(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()
	input := &usecase.NotifyInput{
		RecipientUserID: recipientID,
		Type:            entity.NotificationTypeCenterApproved,
		Title:           "Center approved",
		Message:         "Padel Palace has been approved by admin.",
		Payload:         map[string]any{"route": "/center/dashboard"},
	}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notification.ID = notificationID
			assert.Equal(t, recipientID, notification.RecipientUserID)
			assert.Equal(t, input.Title, notification.Title)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			assert.Equal(t, notificationID.String(), event.NotificationID)
			assert.Equal(t, recipientID.String(), event.RecipientUserID)
			assert.Equal(t, input.Message, event.Message)
		}).
		Return(nil)

	err := fx.service.Notify(ctx, input)

	require.NoError(t, err)
}

func TestNotificationService_Notify_DegradedStoreIsNoop(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.NotifyInput{
		RecipientUserID: uuid.New(),
		Type:            entity.NotificationTypeCenterApproved,
		Title:           "Center approved",
	}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(repository.ErrNotificationStoreUnavailable)

	err := fx.service.Notify(ctx, input)

	require.NoError(t, err)
}

func TestNotificationService_Notify_StoreErrorSurfaces(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.NotifyInput{RecipientUserID: uuid.New()}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("disk full"))

	err := fx.service.Notify(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store notification")
}

func TestNotificationService_Notify_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.NotifyInput{RecipientUserID: uuid.New(), Title: "Center approved"}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(errors.New("redis down"))

	err := fx.service.Notify(ctx, input)

	require.NoError(t, err)
}

func TestNotificationService_NotifyMany_PublishesPerRecipient(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	input := &usecase.NotifyInput{
		Type:    entity.NotificationTypeCenterSubmitted,
		Title:   "New center registration",
		Message: "Padel Palace submitted a registration request.",
	}

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, notifications []*entity.Notification) {
			require.Len(t, notifications, len(recipientIDs))
			for i, notification := range notifications {
				notification.ID = uuid.New()
				assert.Equal(t, recipientIDs[i], notification.RecipientUserID)
			}
		}).
		Return(nil)

	published := make(map[string]bool)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			published[event.RecipientUserID] = true
		}).
		Return(nil).
		Times(len(recipientIDs))

	err := fx.service.NotifyMany(ctx, recipientIDs, input)

	require.NoError(t, err)
	assert.Len(t, published, len(recipientIDs))
}

func TestNotificationService_NotifyMany_NoRecipientsIsNoop(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.NotifyMany(context.Background(), nil, &usecase.NotifyInput{})

	require.NoError(t, err)
}

func TestNotificationService_NotifyMany_DegradedStoreIsNoop(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientIDs := []uuid.UUID{uuid.New()}

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(repository.ErrNotificationStoreUnavailable)

	err := fx.service.NotifyMany(ctx, recipientIDs, &usecase.NotifyInput{})

	require.NoError(t, err)
}

func TestNotificationService_List_ReturnsNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), RecipientUserID: recipientID, Title: "Center approved"},
	}

	fx.notificationRepo.EXPECT().
		ListByRecipient(ctx, recipientID, defaultNotificationListLimit).
		Return(expected, nil)

	notifications, err := fx.service.List(ctx, recipientID)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_List_DegradedStoreReadsEmpty(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		ListByRecipient(ctx, recipientID, defaultNotificationListLimit).
		Return(nil, repository.ErrNotificationStoreUnavailable)

	notifications, err := fx.service.List(ctx, recipientID)

	require.NoError(t, err)
	assert.Empty(t, notifications)
	assert.NotNil(t, notifications)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID, recipientID).
		Return(nil)

	err := fx.service.MarkRead(ctx, recipientID, notificationID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_MissReadsAsNotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID, recipientID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, recipientID, notificationID)

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationService_MarkAllRead_DegradedStoreIsNoop(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, recipientID).
		Return(repository.ErrNotificationStoreUnavailable)

	err := fx.service.MarkAllRead(ctx, recipientID)

	require.NoError(t, err)
}

package impl

import (
	"context"
	"log/slog"

	"arenago/config"
	deliverycontext "arenago/internal/delivery/context"
	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/domain/service"
	"arenago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultNotificationListLimit = 50

// notificationService implements the NotificationUsecase interface.
// The notifications table is an optional feature: when it has not been
// provisioned, writes become silent no-ops and reads return empty lists.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	listLimit        int
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	listLimit := defaultNotificationListLimit
	if cfg != nil && cfg.Notifications != nil && cfg.Notifications.ListLimit > 0 {
		listLimit = cfg.Notifications.ListLimit
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		listLimit:        listLimit,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify inserts one notification and pushes it onto the recipient's
// realtime channel. A missing notifications table is a no-op success.
func (srv *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) error {
	notification := &entity.Notification{
		RecipientUserID: input.RecipientUserID,
		Type:            input.Type,
		Title:           input.Title,
		Message:         input.Message,
		Payload:         input.Payload,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrNotificationStoreUnavailable) {
			srv.log(ctx).Debug("notification store not provisioned, skipping",
				slog.String("type", input.Type),
			)

			return nil
		}

		return errors.Wrap(err, "failed to store notification")
	}

	srv.publish(ctx, notification)

	return nil
}

// NotifyMany inserts one row per recipient in a single write, then pushes
// each onto its recipient's channel.
func (srv *notificationService) NotifyMany(ctx context.Context, recipientIDs []uuid.UUID, input *usecase.NotifyInput) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	notifications := make([]*entity.Notification, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		notifications = append(notifications, &entity.Notification{
			RecipientUserID: recipientID,
			Type:            input.Type,
			Title:           input.Title,
			Message:         input.Message,
			Payload:         input.Payload,
		})
	}

	if err := srv.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		if errors.Is(err, repository.ErrNotificationStoreUnavailable) {
			srv.log(ctx).Debug("notification store not provisioned, skipping broadcast",
				slog.String("type", input.Type),
				slog.Int("recipients", len(recipientIDs)),
			)

			return nil
		}

		return errors.Wrap(err, "failed to store notifications")
	}

	for _, notification := range notifications {
		srv.publish(ctx, notification)
	}

	return nil
}

// List returns the caller's newest notifications. A missing table reads
// as an empty list.
func (srv *notificationService) List(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByRecipient(ctx, recipientID, srv.listLimit)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationStoreUnavailable) {
			return []*entity.Notification{}, nil
		}

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead marks one of the caller's notifications read.
func (srv *notificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, notificationID, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationStoreUnavailable) {
			return nil
		}
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread notification of the caller read.
func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationStoreUnavailable) {
			return nil
		}

		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// publish pushes one stored notification onto the realtime channel.
// Delivery is at-most-once; a publish failure is logged and swallowed.
func (srv *notificationService) publish(ctx context.Context, notification *entity.Notification) {
	event := &service.NotificationEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID:  notification.ID.String(),
		RecipientUserID: notification.RecipientUserID.String(),
		Type:            notification.Type,
		Title:           notification.Title,
		Message:         notification.Message,
		Payload:         notification.Payload,
	}

	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("realtime publish failed",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

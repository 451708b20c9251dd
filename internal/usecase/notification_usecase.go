package usecase

import (
	"context"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// NotifyInput defines a single fire-and-forget message to one recipient.
type NotifyInput struct {
	RecipientUserID uuid.UUID
	Type            string
	Title           string
	Message         string
	Payload         map[string]any
}

// NotificationUsecase defines the interface for notification delivery and
// the recipient-side read operations. The backing table is optional: when
// it is not provisioned, writes become no-ops and reads return empty lists.
type NotificationUsecase interface {
	// Notify inserts one notification and publishes it on the realtime
	// channel. Degraded storage is a silent no-op.
	Notify(ctx context.Context, input *NotifyInput) error

	// NotifyMany inserts one row per recipient in a single write, then
	// publishes per recipient. Used for the admin broadcast.
	NotifyMany(ctx context.Context, recipientIDs []uuid.UUID, input *NotifyInput) error

	// List returns the caller's newest notifications.
	List(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead marks one of the caller's notifications read. Idempotent.
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification of the caller read.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}

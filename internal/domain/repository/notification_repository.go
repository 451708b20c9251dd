// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"arenago/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrNotificationStoreUnavailable is returned when the notifications
	// table has not been provisioned. Notifications are an optional
	// feature; callers treat this as a degraded no-op, never a failure.
	ErrNotificationStoreUnavailable = errors.New("notification store not provisioned")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a single notification row.
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch persists one row per recipient in a single insert.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	// ListByRecipient retrieves the newest notifications addressed to one account.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead sets read_at on a single notification owned by the recipient.
	// Marking an already-read notification is a no-op, not an error.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// MarkAllRead sets read_at on every unread notification of the recipient.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}

package service

import (
	"context"
)

// NotificationEvent mirrors a freshly inserted notification row for
// realtime delivery. Delivery is at-most-once and best-effort: there is
// no replay and no acknowledgment, subscribers simply render what arrives.
type NotificationEvent struct {
	RequestID       string         `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID  string         `json:"notification_id"`
	RecipientUserID string         `json:"recipient_user_id"`
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for pushing notification events
// onto the realtime channel keyed by the recipient's account ID.
type EventPublisher interface {
	// PublishNotificationEvent publishes one event; failures are the
	// caller's to log, never to propagate past the enclosing operation.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

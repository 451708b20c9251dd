// Package pubsub implements the realtime notification channel.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"arenago/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultChannelPrefix = "notifications:"

// redisPublisher implements EventPublisher by publishing each event to a
// Redis channel derived from the recipient's account ID. Subscribers hold
// an open SUBSCRIBE on their own channel; delivery is at-most-once.
type redisPublisher struct {
	client        *redis.Client
	channelPrefix string
	logger        *slog.Logger
}

// NewRedisPublisher creates a publisher on an already-connected client.
func NewRedisPublisher(client *redis.Client, channelPrefix string, logger *slog.Logger) service.EventPublisher {
	if channelPrefix == "" {
		channelPrefix = defaultChannelPrefix
	}

	return &redisPublisher{
		client:        client,
		channelPrefix: channelPrefix,
		logger:        logger,
	}
}

// PublishNotificationEvent pushes one event onto the recipient's channel.
func (p *redisPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	channel := p.channelPrefix + event.RecipientUserID
	if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
		return errors.Wrap(err, "failed to publish notification event")
	}

	p.logger.Debug("published notification event",
		slog.String("channel", channel),
		slog.String("notification_id", event.NotificationID),
		slog.String("type", event.Type),
	)

	return nil
}

// Close releases the underlying Redis connection.
func (p *redisPublisher) Close() error {
	return p.client.Close()
}

package pubsub

import (
	"context"
	"log/slog"

	"arenago/config"
	"arenago/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when realtime delivery is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(_ context.Context, event *service.NotificationEvent) error {
	p.logger.Debug("realtime delivery disabled, skipping event",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration.
// Without a Redis section the realtime channel is disabled and a no-op
// publisher is returned; stored notifications are unaffected either way.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(params.Ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	logger.Info("Using Redis publisher for realtime notifications",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	publisher := NewRedisPublisher(client, cfg.ChannelPrefix, logger)

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the pubsub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

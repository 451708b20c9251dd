package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"arenago/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_PublishesToRecipientChannel(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	subscriber := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = subscriber.Close() })

	ctx := context.Background()
	sub := subscriber.Subscribe(ctx, "notifications:user-123")
	t.Cleanup(func() { _ = sub.Close() })

	// Wait for the subscription to be established.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewRedisPublisher(client, "", slog.New(slog.DiscardHandler))

	event := &service.NotificationEvent{
		NotificationID:  "n-1",
		RecipientUserID: "user-123",
		Type:            "center_registration_approved",
		Title:           "Registration approved",
		Message:         "Your center is now active.",
		Payload:         map[string]any{"route": "/center/dashboard"},
	}
	require.NoError(t, publisher.PublishNotificationEvent(ctx, event))

	select {
	case msg := <-sub.Channel():
		var got service.NotificationEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "n-1", got.NotificationID)
		assert.Equal(t, "center_registration_approved", got.Type)
		assert.Equal(t, "/center/dashboard", got.Payload["route"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestRedisPublisher_CustomChannelPrefix(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	subscriber := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = subscriber.Close() })

	ctx := context.Background()
	sub := subscriber.Subscribe(ctx, "arena:events:user-9")
	t.Cleanup(func() { _ = sub.Close() })

	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewRedisPublisher(client, "arena:events:", slog.New(slog.DiscardHandler))

	err = publisher.PublishNotificationEvent(ctx, &service.NotificationEvent{
		NotificationID:  "n-2",
		RecipientUserID: "user-9",
		Type:            "center_registration_submitted",
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		assert.Contains(t, msg.Payload, "n-2")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

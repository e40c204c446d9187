package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"hotelbooking/internal/observability"
)

// Publisher sends domain events to the statistics side channel.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// RedisPublisher appends events to a Redis stream per topic.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a RedisPublisher on an existing client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{
			"event_id": uuid.New().String(),
			"payload":  string(body),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append to stream %s: %w", topic, err)
	}
	return nil
}

// NopPublisher drops events. Used when no Redis address is configured.
type NopPublisher struct {
	log zerolog.Logger
}

func NewNopPublisher(log zerolog.Logger) *NopPublisher {
	return &NopPublisher{log: log}
}

func (p *NopPublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.log.Debug().Str("topic", topic).Msg("event dropped: no message channel configured")
	return nil
}

// Emit publishes in the background and never reports failure to the caller.
// Booking and registration must not roll back when the side channel is down,
// so errors are logged and counted only.
func Emit(p Publisher, log zerolog.Logger, topic string, payload any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := p.Publish(ctx, topic, payload)
		observability.ObserveEvent(topic, err)
		if err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
		}
	}()
}

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"hotelbooking/internal/events"
)

// Consumer tails the event streams and records one statistic per event.
// Delivery is at least once: the last seen stream id is kept in memory
// only, so a restart may re-record recent events.
type Consumer struct {
	client  *redis.Client
	service Service
	log     zerolog.Logger
}

func NewConsumer(client *redis.Client, service Service, log zerolog.Logger) *Consumer {
	return &Consumer{
		client:  client,
		service: service,
		log:     log,
	}
}

// Run blocks until ctx is cancelled, reading both topics concurrently.
func (c *Consumer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.consume(ctx, events.TopicUserRegistration)
	})
	g.Go(func() error {
		return c.consume(ctx, events.TopicRoomBooking)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c *Consumer) consume(ctx context.Context, topic string) error {
	// "$" skips history on first read; afterwards the loop follows the
	// stream from the last seen id.
	lastID := "$"

	for {
		streams, err := c.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{topic, lastID},
			Count:   64,
			Block:   0,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read stream %s failed: %w", topic, err)
		}

		for _, stream := range streams {
			for _, entry := range stream.Messages {
				lastID = entry.ID
				if err := c.processEntry(ctx, topic, entry); err != nil {
					c.log.Error().Err(err).
						Str("topic", topic).
						Str("entry_id", entry.ID).
						Msg("failed to process event")
				}
			}
		}
	}
}

func (c *Consumer) processEntry(ctx context.Context, topic string, entry redis.XMessage) error {
	payload, ok := entry.Values["payload"].(string)
	if !ok {
		return fmt.Errorf("entry %s has no payload", entry.ID)
	}

	switch topic {
	case events.TopicUserRegistration:
		var ev events.UserRegistrationEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return fmt.Errorf("decode registration event failed: %w", err)
		}
		return c.service.RecordRegistration(ctx, ev.UserID)

	case events.TopicRoomBooking:
		var ev events.RoomBookingEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return fmt.Errorf("decode booking event failed: %w", err)
		}
		return c.service.RecordBooking(ctx, ev.UserID, ev.CheckIn, ev.CheckOut)

	default:
		return fmt.Errorf("unknown topic %s", topic)
	}
}

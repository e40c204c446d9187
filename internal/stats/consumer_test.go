package stats

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/events"
)

func entry(payload string) redis.XMessage {
	return redis.XMessage{
		ID:     "1-0",
		Values: map[string]interface{}{"payload": payload},
	}
}

func TestProcessEntry(t *testing.T) {
	repo := &fakeRepo{}
	c := NewConsumer(nil, NewService(repo), zerolog.Nop())
	ctx := context.Background()

	err := c.processEntry(ctx, events.TopicUserRegistration, entry(`{"user_id":7}`))
	require.NoError(t, err)

	err = c.processEntry(ctx, events.TopicRoomBooking,
		entry(`{"user_id":8,"check_in":"2026-09-10","check_out":"2026-09-15"}`))
	require.NoError(t, err)

	require.Len(t, repo.stats, 2)
	assert.Equal(t, int64(7), repo.stats[0].UserID)
	assert.Equal(t, EventRegistration, repo.stats[0].EventType)
	assert.Equal(t, int64(8), repo.stats[1].UserID)
	assert.Equal(t, "2026-09-10", repo.stats[1].CheckIn)
}

func TestProcessEntryBadInput(t *testing.T) {
	c := NewConsumer(nil, NewService(&fakeRepo{}), zerolog.Nop())
	ctx := context.Background()

	err := c.processEntry(ctx, events.TopicRoomBooking, redis.XMessage{ID: "1-0"})
	assert.Error(t, err, "missing payload must be rejected")

	err = c.processEntry(ctx, events.TopicRoomBooking, entry("not json"))
	assert.Error(t, err)

	err = c.processEntry(ctx, "unknown_topic", entry(`{}`))
	assert.Error(t, err)
}

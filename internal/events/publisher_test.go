package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*RedisPublisher, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisPublisher(client), client
}

func TestRedisPublisherAppendsToStream(t *testing.T) {
	pub, client := newTestPublisher(t)
	ctx := context.Background()

	err := pub.Publish(ctx, TopicRoomBooking, RoomBookingEvent{
		UserID:   42,
		CheckIn:  "2026-01-01",
		CheckOut: "2026-01-05",
	})
	require.NoError(t, err)

	entries, err := client.XRange(ctx, TopicRoomBooking, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	raw, ok := entries[0].Values["payload"].(string)
	require.True(t, ok, "payload field missing")

	var ev RoomBookingEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	assert.Equal(t, int64(42), ev.UserID)
	assert.Equal(t, "2026-01-01", ev.CheckIn)
	assert.Equal(t, "2026-01-05", ev.CheckOut)

	assert.NotEmpty(t, entries[0].Values["event_id"])
}

func TestRedisPublisherSeparatesTopics(t *testing.T) {
	pub, client := newTestPublisher(t)
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, TopicUserRegistration, UserRegistrationEvent{UserID: 7}))
	require.NoError(t, pub.Publish(ctx, TopicRoomBooking, RoomBookingEvent{UserID: 7}))

	reg, err := client.XLen(ctx, TopicUserRegistration).Result()
	require.NoError(t, err)
	book, err := client.XLen(ctx, TopicRoomBooking).Result()
	require.NoError(t, err)

	assert.Equal(t, int64(1), reg)
	assert.Equal(t, int64(1), book)
}

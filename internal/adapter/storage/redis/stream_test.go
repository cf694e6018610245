package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamQueue_AddReadAck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	ctx := context.Background()

	q, err := NewStreamQueue(ctx, client, "tracker:tasks", "tracker:workers")
	require.NoError(t, err)

	id, err := q.Add(ctx, map[string]any{
		"task_type":    "payment_sync",
		"reference_id": "pay_123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	msgs, err := q.ReadGroup(ctx, "worker-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "payment_sync", msgs[0].Values["task_type"])

	require.NoError(t, q.Ack(ctx, msgs[0].ID))

	msgs, err = q.ReadGroup(ctx, "worker-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs, "acked entry should be removed from the stream")
}

func TestStreamQueue_SecondGroupCreateIsIdempotent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	ctx := context.Background()

	_, err := NewStreamQueue(ctx, client, "tracker:tasks", "tracker:workers")
	require.NoError(t, err)

	_, err = NewStreamQueue(ctx, client, "tracker:tasks", "tracker:workers")
	assert.NoError(t, err, "re-attaching to an existing consumer group must not error")
}

func TestStreamQueue_LockPreventsDoubleSchedule(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	ctx := context.Background()

	q, err := NewStreamQueue(ctx, client, "tracker:tasks", "tracker:workers")
	require.NoError(t, err)

	ok, err := q.Lock(ctx, "pay_123", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.Lock(ctx, "pay_123", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second lock attempt on the same reference must fail")

	require.NoError(t, q.Unlock(ctx, "pay_123"))

	ok, err = q.Lock(ctx, "pay_123", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "lock should be acquirable again after unlock")
}

package tracker

import (
	"context"
	"testing"
	"time"

	"paymentcore/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKVStore(t *testing.T) *redis.KVStore {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return redis.NewKVStore(client)
}

func TestDrainWorker_DrainOnce_PersistsAndConsumesEntry(t *testing.T) {
	store := newTestKVStore(t)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "payment_intent", "pay_1", []byte(`{"status":"succeeded"}`)))

	w := NewDrainWorker(store, time.Second, zerolog.Nop())
	var persisted []byte
	w.Register("payment_intent", func(_ context.Context, id string, payload []byte) error {
		assert.Equal(t, "pay_1", id)
		persisted = payload
		return nil
	})

	drained, err := w.drainOnce(ctx)
	require.NoError(t, err)
	assert.True(t, drained)
	assert.JSONEq(t, `{"status":"succeeded"}`, string(persisted))

	drained, err = w.drainOnce(ctx)
	require.NoError(t, err)
	assert.False(t, drained, "drainer queue should be empty after the single entry is consumed")
}

func TestDrainWorker_DrainOnce_UnregisteredEntityTypeIsDroppedNotRetried(t *testing.T) {
	store := newTestKVStore(t)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "unregistered_entity", "x_1", []byte(`{}`)))

	w := NewDrainWorker(store, time.Second, zerolog.Nop())

	drained, err := w.drainOnce(ctx)
	require.NoError(t, err)
	assert.True(t, drained)

	drained, err = w.drainOnce(ctx)
	require.NoError(t, err)
	assert.False(t, drained)
}

func TestDrainWorker_Run_StopsOnContextCancel(t *testing.T) {
	store := newTestKVStore(t)
	w := NewDrainWorker(store, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := w.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

package tracker

import (
	"context"
	"testing"

	"paymentcore/internal/adapter/storage/redis"
	"paymentcore/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *redis.StreamQueue {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue, err := redis.NewStreamQueue(context.Background(), client, "tracker:tasks", "tracker:workers")
	require.NoError(t, err)
	return queue
}

func TestProducer_Enqueue_PersistsAndAppendsToStream(t *testing.T) {
	queue := newTestQueue(t)
	repo := newFakeTrackerRepo()
	p := NewProducer(queue, repo, zerolog.Nop())

	task := ports.TrackerTask{ID: "pt_1", TaskType: "payment_sync", ReferenceID: "pay_1", ConnectorName: "mock"}

	require.NoError(t, p.Enqueue(context.Background(), task))

	stored, err := repo.Get(context.Background(), "pt_1")
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Status)

	msgs, err := queue.ReadGroup(context.Background(), "worker-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "pay_1", msgs[0].Values["reference_id"])
}

func TestProducer_Enqueue_SkipsWhenAlreadyLocked(t *testing.T) {
	queue := newTestQueue(t)
	repo := newFakeTrackerRepo()
	p := NewProducer(queue, repo, zerolog.Nop())
	ctx := context.Background()

	task1 := ports.TrackerTask{ID: "pt_1", TaskType: "payment_sync", ReferenceID: "pay_1", ConnectorName: "mock"}
	task2 := ports.TrackerTask{ID: "pt_2", TaskType: "payment_sync", ReferenceID: "pay_1", ConnectorName: "mock"}

	require.NoError(t, p.Enqueue(ctx, task1))
	require.NoError(t, p.Enqueue(ctx, task2))

	_, err := repo.Get(ctx, "pt_2")
	assert.Error(t, err, "second task sharing the reference id must never be persisted")

	msgs, err := queue.ReadGroup(ctx, "worker-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestProducer_EnqueueBatch_ContinuesPastIndividualFailure(t *testing.T) {
	queue := newTestQueue(t)
	repo := newFakeTrackerRepo()
	p := NewProducer(queue, repo, zerolog.Nop())
	ctx := context.Background()

	tasks := []ports.TrackerTask{
		{ID: "pt_1", TaskType: "payment_sync", ReferenceID: "pay_1", ConnectorName: "mock"},
		{ID: "pt_2", TaskType: "payment_sync", ReferenceID: "pay_1", ConnectorName: "mock"}, // same reference, will be skipped
		{ID: "pt_3", TaskType: "payment_sync", ReferenceID: "pay_3", ConnectorName: "mock"},
	}

	require.NoError(t, p.EnqueueBatch(ctx, tasks))

	_, err := repo.Get(ctx, "pt_1")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "pt_3")
	assert.NoError(t, err)
}

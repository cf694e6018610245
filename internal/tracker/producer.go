package tracker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"paymentcore/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// streamQueue is the Redis surface the producer/consumer need, narrowed
// from *redis.StreamQueue so this package never imports the adapter
// package directly (mirrors Pool in the postgres adapter).
type streamQueue interface {
	Lock(ctx context.Context, referenceID string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, referenceID string) error
	Add(ctx context.Context, fields map[string]any) (string, error)
	ReadGroup(ctx context.Context, consumerName string, count int64, blockFor time.Duration) ([]goredis.XMessage, error)
	Ack(ctx context.Context, id string) error
}

// defaultLockTTL bounds how long a SETNX schedule-lock survives before
// a stuck producer no longer blocks a legitimate re-schedule.
const defaultLockTTL = 10 * time.Minute

// Producer implements ports.TrackerProducer: every Enqueue SETNX-locks
// the task's ReferenceID so the same payment/refund/webhook never gets
// two live tasks in flight, persists the durable row, then XADDs the
// entry the Consumer will pick up.
type Producer struct {
	queue   streamQueue
	repo    ports.TrackerTaskRepository
	lockTTL time.Duration
	log     zerolog.Logger
}

// NewProducer creates a Producer bound to one stream/repository pair.
func NewProducer(queue streamQueue, repo ports.TrackerTaskRepository, log zerolog.Logger) *Producer {
	return &Producer{queue: queue, repo: repo, lockTTL: defaultLockTTL, log: log}
}

var _ ports.TrackerProducer = (*Producer)(nil)

// Enqueue locks ReferenceID, persists the task row, then XADDs the
// entry. A lock already held for this ReferenceID means a task is
// already in flight — Enqueue treats that as success (the existing
// task will eventually run) rather than erroring the caller.
func (p *Producer) Enqueue(ctx context.Context, task ports.TrackerTask) error {
	acquired, err := p.queue.Lock(ctx, task.ReferenceID, p.lockTTL)
	if err != nil {
		return fmt.Errorf("acquiring tracker schedule lock: %w", err)
	}
	if !acquired {
		p.log.Debug().Str("reference_id", task.ReferenceID).Msg("tracker: task already scheduled, skipping enqueue")
		return nil
	}

	if task.Status == "" {
		task.Status = "new"
	}
	if task.Schedule.IsZero() {
		task.Schedule = time.Now()
	}

	if err := p.repo.Create(ctx, task); err != nil {
		_ = p.queue.Unlock(ctx, task.ReferenceID)
		return fmt.Errorf("persisting tracker task: %w", err)
	}

	if _, err := p.queue.Add(ctx, encodeTask(task)); err != nil {
		_ = p.queue.Unlock(ctx, task.ReferenceID)
		return fmt.Errorf("enqueueing tracker task: %w", err)
	}
	return nil
}

// EnqueueBatch schedules multiple tasks, continuing past individual
// failures so one bad task in a batch does not block the rest; the
// first error encountered is returned.
func (p *Producer) EnqueueBatch(ctx context.Context, tasks []ports.TrackerTask) error {
	var firstErr error
	for _, task := range tasks {
		if err := p.Enqueue(ctx, task); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func encodeTask(task ports.TrackerTask) map[string]any {
	payload, _ := toJSONString(task.Payload)
	return map[string]any{
		"id":             task.ID,
		"task_type":      task.TaskType,
		"reference_id":   task.ReferenceID,
		"connector_name": task.ConnectorName,
		"retry_count":    strconv.Itoa(task.RetryCount),
		"status":         task.Status,
		"payload":        payload,
	}
}

package tracker

import (
	"context"
	"time"

	"paymentcore/internal/core/ports"

	"github.com/rs/zerolog"
)

// defaultBatchSize and defaultBlockFor bound one XREADGROUP call: pull
// up to defaultBatchSize entries, blocking defaultBlockFor for new work
// when the stream is currently empty.
const (
	defaultBatchSize = 10
	defaultBlockFor  = 5 * time.Second
)

// Consumer implements ports.TrackerConsumer: it drains a stream's
// consumer group and invokes the caller-supplied workflow handler for
// every task. A handler error triggers a policy-driven redrive rather
// than an immediate reprocessing — the failing entry is acknowledged
// right away so it never blocks the group, and a fresh entry is
// scheduled after the retry interval elapses.
type Consumer struct {
	queue        streamQueue
	repo         ports.TrackerTaskRepository
	policies     *PolicyRegistry
	consumerName string
	batchSize    int64
	blockFor     time.Duration
	log          zerolog.Logger
	done         chan struct{}
}

// NewConsumer creates a Consumer reading as consumerName (the
// per-process identity XREADGROUP uses to track in-flight ownership),
// pacing failed-task redrives by the given policy registry.
func NewConsumer(queue streamQueue, repo ports.TrackerTaskRepository, policies *PolicyRegistry, consumerName string, log zerolog.Logger) *Consumer {
	return &Consumer{
		queue:        queue,
		repo:         repo,
		policies:     policies,
		consumerName: consumerName,
		batchSize:    defaultBatchSize,
		blockFor:     defaultBlockFor,
		log:          log,
		done:         make(chan struct{}),
	}
}

var _ ports.TrackerConsumer = (*Consumer)(nil)

// Close stops any in-flight redrive timers from firing after shutdown.
func (c *Consumer) Close() {
	close(c.done)
}

// Consume blocks, repeatedly draining the stream until ctx is canceled.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, ports.TrackerTask) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msgs, err := c.queue.ReadGroup(ctx, c.consumerName, c.batchSize, c.blockFor)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			task, err := decodeTask(msg)
			if err != nil {
				c.log.Error().Err(err).Str("stream_id", msg.ID).Msg("tracker: dropping malformed task entry")
				_ = c.queue.Ack(ctx, msg.ID)
				continue
			}

			handlerErr := handler(ctx, task)
			if handlerErr != nil {
				c.handleFailure(ctx, task, handlerErr)
			} else {
				c.finish(ctx, task)
			}

			if err := c.queue.Ack(ctx, msg.ID); err != nil {
				c.log.Error().Err(err).Str("stream_id", msg.ID).Msg("tracker: failed to ack processed entry")
			}
		}
	}
}

func (c *Consumer) finish(ctx context.Context, task ports.TrackerTask) {
	if err := c.repo.UpdateStatus(ctx, task.ID, "finish", task.RetryCount, task.Schedule); err != nil {
		c.log.Error().Err(err).Str("task_id", task.ID).Msg("tracker: failed to persist task completion")
	}
	if err := c.queue.Unlock(ctx, task.ReferenceID); err != nil {
		c.log.Error().Err(err).Str("reference_id", task.ReferenceID).Msg("tracker: failed to release schedule lock")
	}
}

func (c *Consumer) handleFailure(ctx context.Context, task ports.TrackerTask, cause error) {
	policy := c.policies.PolicyFor(task.ConnectorName, task.TaskType)

	if policy.Exhausted(task.RetryCount) {
		c.log.Error().Err(cause).Str("task_id", task.ID).Int("retry_count", task.RetryCount).
			Msg("tracker: task exhausted its retry budget")
		if err := c.repo.UpdateStatus(ctx, task.ID, "failed", task.RetryCount, task.Schedule); err != nil {
			c.log.Error().Err(err).Str("task_id", task.ID).Msg("tracker: failed to persist task failure")
		}
		if err := c.queue.Unlock(ctx, task.ReferenceID); err != nil {
			c.log.Error().Err(err).Str("reference_id", task.ReferenceID).Msg("tracker: failed to release schedule lock")
		}
		return
	}

	delay := policy.NextInterval(task.RetryCount)
	task.RetryCount++
	task.Schedule = time.Now().Add(delay)
	task.Status = "processing"

	if err := c.repo.UpdateStatus(ctx, task.ID, task.Status, task.RetryCount, task.Schedule); err != nil {
		c.log.Error().Err(err).Str("task_id", task.ID).Msg("tracker: failed to persist retry schedule")
	}

	c.log.Warn().Err(cause).Str("task_id", task.ID).Int("retry_count", task.RetryCount).
		Dur("delay", delay).Msg("tracker: scheduling retry")

	go c.redrive(task, delay)
}

// redrive re-adds task to the stream after delay. The schedule lock is
// not released here, but it is not renewed either: it lapses when the
// producer's lock TTL (defaultLockTTL, 10 minutes) runs out, so for a
// longer delay a new Enqueue of the same reference is accepted while
// the retry is pending.
func (c *Consumer) redrive(task ports.TrackerTask, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-c.done:
		return
	case <-timer.C:
	}

	ctx := context.Background()
	if _, err := c.queue.Add(ctx, encodeTask(task)); err != nil {
		c.log.Error().Err(err).Str("task_id", task.ID).Msg("tracker: failed to re-enqueue task for retry")
	}
}

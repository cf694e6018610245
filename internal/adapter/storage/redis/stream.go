package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// StreamQueue wraps a single Redis Stream plus consumer group, the
// transport internal/tracker drives its Producer/Consumer over.
type StreamQueue struct {
	client *goredis.Client
	stream string
	group  string
}

// NewStreamQueue creates a StreamQueue bound to one stream/group pair.
// It tolerates the group already existing (BUSYGROUP) and creates the
// stream with MKSTREAM if this is the first consumer to attach.
func NewStreamQueue(ctx context.Context, client *goredis.Client, stream, group string) (*StreamQueue, error) {
	q := &StreamQueue{client: client, stream: stream, group: group}
	err := client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil && !isBusyGroup(err) {
		return nil, fmt.Errorf("creating consumer group: %w", err)
	}
	return q, nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

// Lock acquires the per-reference SETNX lock the Producer uses to avoid
// double-scheduling the same task while a prior schedule is still live.
func (q *StreamQueue) Lock(ctx context.Context, referenceID string, ttl time.Duration) (bool, error) {
	ok, err := q.client.SetNX(ctx, "tracker:lock:"+referenceID, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis tracker lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the SETNX lock once the task reaches a terminal state.
func (q *StreamQueue) Unlock(ctx context.Context, referenceID string) error {
	if err := q.client.Del(ctx, "tracker:lock:"+referenceID).Err(); err != nil {
		return fmt.Errorf("redis tracker unlock: %w", err)
	}
	return nil
}

// Add appends one task entry to the stream.
func (q *StreamQueue) Add(ctx context.Context, fields map[string]any) (string, error) {
	id, err := q.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: q.stream,
		Values: fields,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("redis XADD: %w", err)
	}
	return id, nil
}

// ReadGroup claims up to count pending entries for consumerName,
// blocking up to blockFor when the stream is empty. A blockFor of zero
// or less polls once and returns at once on an empty stream.
func (q *StreamQueue) ReadGroup(ctx context.Context, consumerName string, count int64, blockFor time.Duration) ([]goredis.XMessage, error) {
	block := blockFor
	if block <= 0 {
		block = -1 // go-redis omits BLOCK for a negative duration; 0 would block forever
	}
	res, err := q.client.XReadGroup(ctx, &goredis.XReadGroupArgs{
		Group:    q.group,
		Consumer: consumerName,
		Streams:  []string{q.stream, ">"},
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis XREADGROUP: %w", err)
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0].Messages, nil
}

// Ack acknowledges and deletes an entry once its handler completes
// successfully, keeping the stream from growing unbounded.
func (q *StreamQueue) Ack(ctx context.Context, id string) error {
	pipe := q.client.TxPipeline()
	pipe.XAck(ctx, q.stream, q.group, id)
	pipe.XDel(ctx, q.stream, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis XACK/XDEL: %w", err)
	}
	return nil
}

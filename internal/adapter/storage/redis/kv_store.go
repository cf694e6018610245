package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// KVStore is the hash-per-entity mirror used when a merchant's
// storage_scheme is REDIS_KV: writes land here first for
// low-latency reads, then a drainer enqueued alongside the write carries
// the row into Postgres so it remains the system of record.
type KVStore struct {
	client     *goredis.Client
	prefix     string
	drainerKey string
}

// NewKVStore creates a new Redis hash-per-entity mirror.
func NewKVStore(client *goredis.Client) *KVStore {
	return &KVStore{
		client:     client,
		prefix:     "kv:",
		drainerKey: "kv:drainer",
	}
}

func (s *KVStore) hashKey(entityType, id string) string {
	return s.prefix + entityType + ":" + id
}

// Write stores payload under the "data" field of the entity's hash and
// enqueues a drainer entry so the postgres drain worker picks it up.
func (s *KVStore) Write(ctx context.Context, entityType, id string, payload []byte) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.hashKey(entityType, id), "data", payload)
	pipe.RPush(ctx, s.drainerKey, entityType+":"+id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis kv write: %w", err)
	}
	return nil
}

// Read fetches the entity's mirrored payload. Returns nil, false on miss.
func (s *KVStore) Read(ctx context.Context, entityType, id string) ([]byte, bool, error) {
	val, err := s.client.HGet(ctx, s.hashKey(entityType, id), "data").Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis kv read: %w", err)
	}
	return val, true, nil
}

// Lock takes the short-lived advisory lock serializing KV writes to one
// entity. Returns false while another writer holds it; the TTL releases
// it after a crash.
func (s *KVStore) Lock(ctx context.Context, entityType, id string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.lockKey(entityType, id), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis kv lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the advisory lock taken by Lock.
func (s *KVStore) Unlock(ctx context.Context, entityType, id string) error {
	if err := s.client.Del(ctx, s.lockKey(entityType, id)).Err(); err != nil {
		return fmt.Errorf("redis kv unlock: %w", err)
	}
	return nil
}

func (s *KVStore) lockKey(entityType, id string) string {
	return s.prefix + "lock:" + entityType + ":" + id
}

// PopDrainEntry pops the next "entityType:id" reference the drain worker
// must persist to Postgres, without blocking (LPop, matching the rest of
// the tracker's SETNX+poll style). Returns "", false on an empty queue.
func (s *KVStore) PopDrainEntry(ctx context.Context) (string, bool, error) {
	val, err := s.client.LPop(ctx, s.drainerKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis kv drain pop: %w", err)
	}
	return val, true, nil
}

// Package cache implements the process-local + Redis pub/sub invalidated
// cache fronting merchant/profile/connector-account lookups. The
// functional-options construction mirrors the cache layer pattern used
// elsewhere in the stack: New takes a variable number of Configuration
// functions, each applied in order against the same Cache value.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redactChannel = "paymentcore:redact"

// Configuration mutates a Cache during construction.
type Configuration func(c *Cache) error

// Cache is a two-tier lookup cache: a process-local store for the fast
// path, invalidated across all instances via a Redis pub/sub channel
// whenever a write happens anywhere in the fleet.
type Cache struct {
	local  *cache.Cache
	redis  *redis.Client
	logger zerolog.Logger
	mu     sync.RWMutex
}

// New applies the given Configurations in order and returns the Cache.
func New(configs ...Configuration) (*Cache, error) {
	c := &Cache{}
	for _, cfg := range configs {
		if err := cfg(c); err != nil {
			return nil, err
		}
	}
	if c.local == nil {
		c.local = cache.New(5*time.Minute, 10*time.Minute)
	}
	return c, nil
}

// WithLocalTTL sets the process-local store's default expiration and
// cleanup interval.
func WithLocalTTL(defaultExpiration, cleanupInterval time.Duration) Configuration {
	return func(c *Cache) error {
		c.local = cache.New(defaultExpiration, cleanupInterval)
		return nil
	}
}

// WithRedis attaches a Redis client used solely for the "redact"
// invalidation channel, not as a storage tier — the local store is the
// only read path.
func WithRedis(rdb *redis.Client, logger zerolog.Logger) Configuration {
	return func(c *Cache) error {
		c.redis = rdb
		c.logger = logger
		return nil
	}
}

// Get returns the cached bytes for key, if present and unexpired.
func (c *Cache) Get(_ context.Context, key string) ([]byte, bool) {
	v, found := c.local.Get(key)
	if !found {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set stores value under key for ttl (0 uses the store's default).
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.local.Set(key, value, ttl)
	return nil
}

// Invalidate removes key locally and publishes a redact notice so every
// other instance drops its local copy too.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	c.local.Delete(key)
	if c.redis == nil {
		return nil
	}
	return c.redis.Publish(ctx, redactChannel, key).Err()
}

// Subscribe blocks, applying redact notices from other instances to the
// local store until ctx is cancelled.
func (c *Cache) Subscribe(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	sub := c.redis.Subscribe(ctx, redactChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			c.local.Delete(msg.Payload)
			c.logger.Debug().Str("key", msg.Payload).Msg("cache key redacted")
		}
	}
}

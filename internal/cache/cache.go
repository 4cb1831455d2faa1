// Package cache holds the Redis-backed copy of the serialized item list.
// A cache failure is never surfaced to callers; it is logged and treated as a
// miss so the handlers fall back to the database.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const itemListKey = "inventory:items"

type ListCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewListCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ListCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached list payload, or ok=false on a miss or error.
func (c *ListCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, itemListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set stores the serialized list with the configured TTL.
func (c *ListCache) Set(ctx context.Context, data []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, itemListKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list. Called after every successful mutation.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, itemListKey).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

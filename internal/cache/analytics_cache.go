package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AnalyticsCache stores computed analytics responses per user with a
// short TTL. Keys follow "analytics:{userID}:{kind}:{params}" so a
// user's whole cache can be dropped in one invalidation when any of
// their habits or completions change. Redis being down never fails a
// request: Get degrades to a miss and Set/Invalidate to no-ops.
type AnalyticsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *AnalyticsCache {
	return &AnalyticsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func key(userID int, kind, params string) string {
	return fmt.Sprintf("analytics:%d:%s:%s", userID, kind, params)
}

// Get loads a cached value into v. Returns false on miss or any Redis
// failure.
func (c *AnalyticsCache) Get(ctx context.Context, userID int, kind, params string, v any) bool {
	raw, err := c.rdb.Get(ctx, key(userID, kind, params)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("analytics cache get failed", zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		c.logger.Warn("analytics cache decode failed", zap.Error(err))
		return false
	}
	return true
}

// Set stores a computed value. Failures are logged and swallowed.
func (c *AnalyticsCache) Set(ctx context.Context, userID int, kind, params string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("analytics cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key(userID, kind, params), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("analytics cache set failed", zap.Error(err))
	}
}

// Invalidate drops every cached analytics entry for the user. Called
// after any habit or completion write.
func (c *AnalyticsCache) Invalidate(ctx context.Context, userID int) {
	pattern := fmt.Sprintf("analytics:%d:*", userID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("analytics cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("analytics cache invalidate failed", zap.Error(err))
	}
}

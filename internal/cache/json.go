package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/logger"

	"go.uber.org/zap"
)

// GetJSON loads key into dest. It reports false on a miss, a cache error or
// an undecodable value; callers then fall back to the store.
func GetJSON(ctx context.Context, c domain.Cache, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("cache value undecodable", zap.String("key", key), zap.Error(err))
		_ = c.Delete(ctx, key)
		return false
	}
	return true
}

// SetJSON stores value under key. Failures are logged and dropped.
func SetJSON(ctx context.Context, c domain.Cache, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("cache value unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Set(ctx, key, string(b), ttl); err != nil {
		logger.Get().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate deletes keys, logging failures.
func Invalidate(ctx context.Context, c domain.Cache, keys ...string) {
	if c == nil {
		return
	}
	for _, key := range keys {
		if err := c.Delete(ctx, key); err != nil {
			logger.Get().Warn("cache delete failed", zap.String("key", key), zap.Error(err))
		}
	}
}

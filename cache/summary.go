// Package cache holds the Redis-backed dashboard cache. The dashboard is
// read on every page load but changes only on mutations, so the computed
// summary is kept as a JSON blob with a short TTL and dropped on every
// write. Cache failures are never surfaced; the caller recomputes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/redis/go-redis/v9"
)

const summaryKey = "tooltrack:dashboard"

type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSummaryCache wraps rdb; a nil client disables the cache.
func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func (c *SummaryCache) Get(ctx context.Context) *engine.Summary {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if err != nil {
		return nil
	}
	var s engine.Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	return &s
}

func (c *SummaryCache) Set(ctx context.Context, s *engine.Summary) {
	if c == nil || c.rdb == nil {
		return
	}
	b, _ := json.Marshal(s)
	_ = c.rdb.Set(ctx, summaryKey, b, c.ttl).Err()
}

// Invalidate drops the cached summary; called after every mutating
// operation.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, summaryKey).Err()
}

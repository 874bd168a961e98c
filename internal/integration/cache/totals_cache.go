// Package cache implements Redis-backed caching adapters.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// DefaultTotalsTTL bounds how stale a cached monthly totals series can get.
const DefaultTotalsTTL = 5 * time.Minute

// totalsCache implements the dashboard.MonthlyTotalsCache interface on Redis.
// Every failure is treated as a miss so the dashboard keeps working when
// Redis is down. Entries expire rather than being invalidated on writes,
// so a series can lag behind expense changes for up to the configured TTL.
type totalsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTotalsCache creates a new Redis-backed monthly totals cache.
func NewTotalsCache(client *redis.Client, ttl time.Duration) dashboard.MonthlyTotalsCache {
	if ttl <= 0 {
		ttl = DefaultTotalsTTL
	}
	return &totalsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached series, reporting a miss on any error.
func (c *totalsCache) Get(ctx context.Context, key string) ([]dashboard.MonthTotal, bool) {
	payload, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Totals cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var totals []dashboard.MonthTotal
	if err := json.Unmarshal(payload, &totals); err != nil {
		slog.Warn("Totals cache payload corrupt", "key", key, "error", err)
		return nil, false
	}
	return totals, true
}

// Set stores a series, logging and ignoring failures.
func (c *totalsCache) Set(ctx context.Context, key string, totals []dashboard.MonthTotal) {
	payload, err := json.Marshal(totals)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.fullKey(key), payload, c.ttl).Err(); err != nil {
		slog.Warn("Totals cache write failed", "key", key, "error", err)
	}
}

func (c *totalsCache) fullKey(key string) string {
	return "dashboard:totals:" + key
}

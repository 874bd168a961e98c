// Package cache implements Redis-backed caching adapters.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

func newTestCache(t *testing.T) (dashboard.MonthlyTotalsCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewTotalsCache(client, time.Minute), server
}

func TestTotalsCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	totals := []dashboard.MonthTotal{
		{Period: "February 2024", Total: 300},
		{Period: "March 2024", Total: 0},
	}

	cache.Set(ctx, "user:2024-01:2", totals)

	got, ok := cache.Get(ctx, "user:2024-01:2")
	require.True(t, ok)
	assert.Equal(t, totals, got)
}

func TestTotalsCache_MissOnUnknownKey(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.Get(context.Background(), "nope")
	assert.False(t, ok)
}

func TestTotalsCache_EntriesExpire(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "user:2024-01:2", []dashboard.MonthTotal{{Period: "February 2024", Total: 10}})
	server.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "user:2024-01:2")
	assert.False(t, ok)
}

func TestTotalsCache_CorruptPayloadIsAMiss(t *testing.T) {
	cache, server := newTestCache(t)

	require.NoError(t, server.Set("dashboard:totals:bad", "{not json"))

	_, ok := cache.Get(context.Background(), "bad")
	assert.False(t, ok)
}

func TestTotalsCache_DownRedisIsAMiss(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := NewTotalsCache(client, time.Minute)
	server.Close()

	_, ok := cache.Get(context.Background(), "anything")
	assert.False(t, ok)

	// Set must not panic either.
	cache.Set(context.Background(), "anything", []dashboard.MonthTotal{{Period: "May 2024", Total: 5}})
}

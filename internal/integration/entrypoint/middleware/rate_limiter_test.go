// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.take("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if limiter.take("10.0.0.1") {
		t.Error("attempt over the limit should be rejected")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, time.Minute)

	if !limiter.take("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if limiter.take("10.0.0.1") {
		t.Error("second attempt from the same key should be rejected")
	}
	if !limiter.take("10.0.0.2") {
		t.Error("another key should have its own window")
	}
}

func TestRateLimiter_WindowExpiryResets(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if !limiter.take("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if limiter.take("10.0.0.1") {
		t.Fatal("second attempt should be rejected within the window")
	}

	time.Sleep(20 * time.Millisecond)
	if !limiter.take("10.0.0.1") {
		t.Error("attempt after window expiry should be allowed")
	}
}

func TestRateLimiter_ResetClearsState(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, time.Minute)

	limiter.take("10.0.0.1")
	limiter.Reset()

	if !limiter.take("10.0.0.1") {
		t.Error("attempt after reset should be allowed")
	}
}

func TestRateLimiter_CleanupDropsExpiredBuckets(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	limiter.take("10.0.0.1")
	time.Sleep(20 * time.Millisecond)
	limiter.Cleanup()

	if len(limiter.buckets) != 0 {
		t.Errorf("expected expired buckets to be dropped, got %d", len(limiter.buckets))
	}
}

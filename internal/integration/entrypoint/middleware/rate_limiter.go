// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// loginAttemptLimit is how many attempts a client gets per window.
	loginAttemptLimit = 5
	// loginAttemptWindow is the length of one throttling window.
	loginAttemptWindow = time.Minute
)

// bucket counts the hits of one client within the current window.
type bucket struct {
	hits    int
	expires time.Time
}

// RateLimiter throttles requests per client IP over fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with the login defaults.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(loginAttemptLimit, loginAttemptWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with a custom limit and window.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
}

// Middleware returns a handler that rejects clients over their attempt limit.
// E2E and test runs bypass throttling entirely.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.take(key) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// take consumes one attempt for the key, reporting whether it was within the
// limit. A fresh window starts when the previous one has expired.
func (rl *RateLimiter) take(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	b, ok := rl.buckets[key]
	if !ok || now.After(b.expires) {
		rl.buckets[key] = &bucket{hits: 1, expires: now.Add(rl.window)}
		return true
	}

	if b.hits >= rl.limit {
		return false
	}
	b.hits++
	return true
}

// Reset drops all throttling state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.buckets = make(map[string]*bucket)
}

// Cleanup removes buckets whose window has passed.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, b := range rl.buckets {
		if now.After(b.expires) {
			delete(rl.buckets, key)
		}
	}
}

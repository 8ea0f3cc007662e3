package middleware

import (
	"sync"
	"time"

	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket limiter
type TokenBucket struct {
	rate       float64
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// RateLimitByIP limits requests per client IP, used on the login
// endpoint to slow credential guessing. Each middleware instance keeps
// its own bucket map so routes with different rates never share a
// bucket for the same IP.
func RateLimitByIP(rate float64, burst int) gin.HandlerFunc {
	ipLimiters := make(map[string]*TokenBucket)
	var ipLimitersMu sync.Mutex

	return func(c *gin.Context) {
		ip := c.ClientIP()

		ipLimitersMu.Lock()
		limiter, ok := ipLimiters[ip]
		if !ok {
			limiter = NewTokenBucket(rate, burst)
			ipLimiters[ip] = limiter
		}
		ipLimitersMu.Unlock()

		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

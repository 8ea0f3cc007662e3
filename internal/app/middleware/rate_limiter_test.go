package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// limited runs one request from a fixed IP through the handler and
// reports whether it was rejected
func limited(handler gin.HandlerFunc) bool {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	handler(c)
	return c.IsAborted()
}

func TestTokenBucket_Burst(t *testing.T) {
	tb := NewTokenBucket(0, 2)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimitByIP_BlocksWhenExhausted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No refill, burst of one: the second request must be rejected
	strict := RateLimitByIP(0, 1)
	assert.False(t, limited(strict))
	assert.True(t, limited(strict))
}

func TestRateLimitByIP_InstancesDoNotShareBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	strict := RateLimitByIP(0, 1)
	loose := RateLimitByIP(0, 100)

	// Drain the strict instance for this IP
	assert.False(t, limited(strict))
	assert.True(t, limited(strict))

	// The same IP keeps its full budget on the other instance
	assert.False(t, limited(loose))
	assert.False(t, limited(loose))
}

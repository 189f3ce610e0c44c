//go:build !integration

package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/trips", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	defer rl.Stop()
	router := newRateLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := perform(router, http.MethodGet, "/trips", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := perform(router, http.MethodGet, "/trips", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"error":"rate_limit_exceeded"`)
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.Visitors())
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	defer rl.Stop()

	assert.Equal(t, 1, rl.burst)
	assert.True(t, rl.Allow("client"))
	assert.False(t, rl.Allow("client"))
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	defer rl.Stop()

	rl.Allow("old")
	rl.Allow("fresh")

	rl.mu.Lock()
	rl.visitors["old"].lastSeen = time.Now().Add(-2 * defaultIdleTTL)
	rl.mu.Unlock()

	rl.removeIdle(time.Now())

	assert.Equal(t, 1, rl.Visitors())
	rl.mu.Lock()
	_, ok := rl.visitors["fresh"]
	rl.mu.Unlock()
	assert.True(t, ok)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := NewInMemoryRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"))
	}
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimiterIsPerKey(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, time.Minute)
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, 20*time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

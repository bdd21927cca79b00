package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientRateLimiter keeps one token bucket per client key (typically the
// caller IP). The feed is a pure read surface, so exceeding the budget is
// rejected rather than queued.
type ClientRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	limit    rate.Limit
	burst    int
}

func NewClientRateLimiter(perSecond float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow reports whether the client may proceed right now.
func (c *ClientRateLimiter) Allow(key string) bool {
	return c.getLimiter(key).Allow()
}

func (c *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[key]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check pattern
	if limiter, exists := c.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(c.limit, c.burst)
	c.limiters[key] = limiter
	return limiter
}

// Len returns the number of tracked clients.
func (c *ClientRateLimiter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.limiters)
}

// Prune drops idle limiters so the map does not grow unbounded. Buckets that
// are full again (no recent consumption) are eligible.
func (c *ClientRateLimiter) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, limiter := range c.limiters {
		if limiter.TokensAt(time.Now()) >= float64(c.burst) {
			delete(c.limiters, key)
		}
	}
}

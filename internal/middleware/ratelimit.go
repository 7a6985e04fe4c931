package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// client is one caller's token bucket
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter manages token buckets per client IP. capacity requests are
// allowed per interval, refilled smoothly.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	capacity int
	interval time.Duration
	clock    Clock

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	return NewRateLimiterWithClock(capacity, interval, realClock{})
}

// NewRateLimiterWithClock is NewRateLimiter with an injectable clock.
func NewRateLimiterWithClock(capacity int, interval time.Duration, clock Clock) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	limiter := &RateLimiter{
		clients:  make(map[string]*client),
		capacity: capacity,
		interval: interval,
		clock:    clock,
		cancel:   cancel,
	}

	// Start cleanup goroutine
	limiter.wg.Add(1)
	go limiter.cleanup(ctx)

	return limiter
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.cancel()
	rl.wg.Wait()
}

// cleanup removes idle clients every 5 minutes
func (rl *RateLimiter) cleanup(ctx context.Context) {
	defer rl.wg.Done()
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Prune()
		}
	}
}

// Prune drops clients idle for longer than the refill interval, whose
// buckets are full again anyway.
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	removed := 0
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.interval {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// Limit returns the capacity per interval.
func (rl *RateLimiter) Limit() int {
	return rl.capacity
}

// Allow checks if a request from ip should be allowed. It returns the
// tokens left and, when denied, how long until the next token.
func (rl *RateLimiter) Allow(ip string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	c, exists := rl.clients[ip]
	if !exists {
		every := rl.interval / time.Duration(rl.capacity)
		c = &client{limiter: rate.NewLimiter(rate.Every(every), rl.capacity)}
		rl.clients[ip] = c
	}
	c.lastSeen = now

	r := c.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(math.Floor(c.limiter.TokensAt(now))), 0
}

// RateLimitMiddleware creates a rate limiting middleware. With no paths
// every request through it is limited.
func RateLimitMiddleware(limiter *RateLimiter, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		// Check if this path requires rate limiting
		if len(pathMap) > 0 && !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		allowed, remaining, retryAfter := limiter.Allow(clientIP)

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.Limit()))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", fmt.Sprintf("%d", seconds))
			log.Warn().
				Str("ip", clientIP).
				Str("path", c.Request.URL.Path).
				Int("retry_after", seconds).
				Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}

		c.Next()
	}
}

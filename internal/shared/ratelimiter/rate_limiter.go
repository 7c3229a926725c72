// Package ratelimiter throttles repeated requests from a single client.
package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// KeyedLimiter enforces a fixed-window request limit per key.
// It is used to slow down credential guessing on the auth endpoints.
type KeyedLimiter struct {
	limit    int           // Allowed requests per window
	interval time.Duration // Window length

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewKeyedLimiter creates a new KeyedLimiter allowing limit requests per interval and key.
func NewKeyedLimiter(limit int, interval time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether a request for key fits in the current window.
// The count resets once the window has elapsed.
func (l *KeyedLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		l.pruneLocked(now)
		return true
	}

	w.count++
	return w.count <= l.limit
}

// pruneLocked drops windows that elapsed, keeping the map from growing
// with one entry per client ever seen. Caller holds l.mu.
func (l *KeyedLimiter) pruneLocked(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
		}
	}
}

// Middleware returns a Gin middleware that rejects requests over the limit
// with 429, keyed by client IP.
func (l *KeyedLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.Allow(ip) {
			slog.Warn("rate limit exceeded", "remote_addr", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

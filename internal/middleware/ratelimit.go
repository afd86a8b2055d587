package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// bucket is one client's token bucket. Tokens refill continuously
// based on elapsed time rather than with a background goroutine, so
// idle buckets cost nothing.
type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// RateLimiter applies a per-client token bucket: capacity and refill
// rate both equal the configured requests per minute.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perMinute float64
}

// NewRateLimiter creates a limiter allowing perMinute requests per
// client per minute.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RateLimiter{
		buckets:   make(map[string]*bucket),
		perMinute: float64(perMinute),
	}
}

// Limit wraps a handler, responding 429 when a client exhausts its
// bucket.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(client string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[client]
	if !ok {
		b = &bucket{tokens: rl.perMinute, lastRefill: now}
		rl.buckets[client] = b
	}

	refill := now.Sub(b.lastRefill).Minutes() * rl.perMinute
	b.tokens = min(rl.perMinute, b.tokens+refill)
	b.lastRefill = now
	b.lastSeen = now

	if len(rl.buckets) > 1024 {
		rl.prune(now)
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// prune drops buckets idle long enough to have refilled completely.
func (rl *RateLimiter) prune(now time.Time) {
	for client, b := range rl.buckets {
		if now.Sub(b.lastSeen) > 10*time.Minute {
			delete(rl.buckets, client)
		}
	}
}

// clientIP resolves the caller address, honoring the first entry of
// X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

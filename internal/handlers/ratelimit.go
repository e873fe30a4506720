package handlers

import (
	"net/http"
	"sync"
	"time"
)

// EmailRateLimiter throttles the email-trigger endpoints per family, so
// a misbehaving caller cannot flood a household's inbox. Token bucket,
// refilled once per window.
type EmailRateLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	rate    int
	window  time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewEmailRateLimiter creates a limiter allowing rate sends per window
// for each family
func NewEmailRateLimiter(rate int, window time.Duration) *EmailRateLimiter {
	rl := &EmailRateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

func (rl *EmailRateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.rate, lastRefill: time.Now()}
		rl.buckets[key] = b
	}

	if time.Since(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = time.Now()
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// cleanup drops stale buckets so the map does not grow without bound
func (rl *EmailRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for key, b := range rl.buckets {
			if time.Since(b.lastRefill) > rl.window*2 {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Limit wraps an email-trigger handler, keying the bucket by family id
func (rl *EmailRateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.PathValue("familyID")) {
			respondWithError(w, http.StatusTooManyRequests, "Too many email requests, try again later", "", nil)
			return
		}
		next(w, r)
	}
}

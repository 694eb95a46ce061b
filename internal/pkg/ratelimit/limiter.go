// internal/pkg/ratelimit/limiter.go
package ratelimit

import (
	"sync"
	"time"
)

// FallbackKey is used when no client address can be determined.
const FallbackKey = "local"

// Limiter is a process-wide sliding-window request counter keyed by
// client address. It is constructed once at startup and passed to
// handlers; it provides no cross-instance guarantee in a horizontally
// scaled deployment.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	entries map[string][]time.Time
	now     func() time.Time
}

// NewLimiter creates a limiter allowing at most limit requests per key
// within the rolling window.
func NewLimiter(window time.Duration, limit int) *Limiter {
	return &Limiter{
		window:  window,
		limit:   limit,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow checks and records a request for key. Timestamps older than
// the window are pruned; if the remaining count has reached the limit
// the request is rejected without being recorded. The read-prune-
// append-write runs as one step under the lock so concurrent bursts
// on the same key never undercount.
func (l *Limiter) Allow(key string) bool {
	if key == "" {
		key = FallbackKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.entries[key] = recent
		return false
	}

	l.entries[key] = append(recent, now)
	return true
}

// Remaining reports how many requests the key has left in the current
// window, without recording anything.
func (l *Limiter) Remaining(key string) int {
	if key == "" {
		key = FallbackKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	count := 0
	for _, t := range l.entries[key] {
		if t.After(cutoff) {
			count++
		}
	}

	if count >= l.limit {
		return 0
	}
	return l.limit - count
}

// Package loginattempt counts failed logins per email inside a sliding
// window. The in-memory tracker is bounded by a capacity so it cannot
// grow without limit; the Redis tracker leaves expiry to key TTLs and
// suits multi-instance deployments.
package loginattempt

import (
	"context"
	"sync"
	"time"
)

type Tracker interface {
	// Hit records a failed attempt and returns the current count.
	Hit(ctx context.Context, email string) (int, error)
	// Count returns the number of attempts still inside the window.
	Count(ctx context.Context, email string) (int, error)
	// Reset clears the counter, typically after a successful login.
	Reset(ctx context.Context, email string) error
}

type entry struct {
	count       int
	lastAttempt time.Time
}

type MemoryTracker struct {
	mu       sync.Mutex
	window   time.Duration
	capacity int
	entries  map[string]entry
}

func NewMemoryTracker(window time.Duration, capacity int) *MemoryTracker {
	return &MemoryTracker{
		window:   window,
		capacity: capacity,
		entries:  make(map[string]entry),
	}
}

func (t *MemoryTracker) Hit(_ context.Context, email string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()

	e, ok := t.entries[email]
	if !ok || now.Sub(e.lastAttempt) > t.window {
		if !ok && len(t.entries) >= t.capacity {
			t.evict(now)
		}
		e = entry{}
	}

	e.count++
	e.lastAttempt = now
	t.entries[email] = e

	return e.count, nil
}

func (t *MemoryTracker) Count(_ context.Context, email string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[email]
	if !ok || time.Since(e.lastAttempt) > t.window {
		return 0, nil
	}

	return e.count, nil
}

func (t *MemoryTracker) Reset(_ context.Context, email string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, email)

	return nil
}

// evict drops expired entries first and falls back to the stalest one,
// so a full tracker always admits the newcomer.
func (t *MemoryTracker) evict(now time.Time) {
	var (
		oldestKey  string
		oldestSeen time.Time
	)

	for key, e := range t.entries {
		if now.Sub(e.lastAttempt) > t.window {
			delete(t.entries, key)
			continue
		}
		if oldestKey == "" || e.lastAttempt.Before(oldestSeen) {
			oldestKey = key
			oldestSeen = e.lastAttempt
		}
	}

	if len(t.entries) >= t.capacity && oldestKey != "" {
		delete(t.entries, oldestKey)
	}
}

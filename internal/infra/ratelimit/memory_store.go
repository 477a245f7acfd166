// Package ratelimit implements per-client request throttling backed by memory or Redis.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"voll/internal/domain/service"

	"golang.org/x/time/rate"
)

const (
	defaultIdleTTL      = 15 * time.Minute
	defaultCleanupEvery = 2 * time.Minute
)

// MemoryStore is a token bucket limiter per key, held in process memory.
type MemoryStore struct {
	mu           sync.Mutex
	entries      map[string]*memoryEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type memoryEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithIdleTTL sets how long an unused key is kept.
func WithIdleTTL(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		if d > 0 {
			s.idleTTL = d
		}
	}
}

// WithCleanupEvery sets the janitor period.
func WithCleanupEvery(d time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.cleanupEvery = d }
}

// NewMemoryStore creates a store allowing rps sustained requests per key with the given burst.
func NewMemoryStore(rps float64, burst int, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries:      make(map[string]*memoryEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      defaultIdleTTL,
		cleanupEvery: defaultCleanupEvery,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Allow implements service.RateLimiter.
func (s *MemoryStore) Allow(_ context.Context, key string) (service.RateDecision, error) {
	now := s.now()
	lim := s.limiter(key, now)

	reservation := lim.ReserveN(now, 1)
	if !reservation.OK() {
		return service.RateDecision{Allowed: false, RetryAfter: time.Second}, nil
	}

	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)

		return service.RateDecision{Allowed: false, RetryAfter: delay}, nil
	}

	return service.RateDecision{Allowed: true}, nil
}

func (s *MemoryStore) limiter(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now

		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &memoryEntry{lim: lim, lastSeen: now}

	return lim
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Cleanup evicts keys idle for longer than the idle TTL.
func (s *MemoryStore) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup periodically until ctx is cancelled.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}

	ticker := time.NewTicker(s.cleanupEvery)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

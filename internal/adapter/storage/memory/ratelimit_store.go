package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"estate-transfer/internal/core/ports"
)

// RateLimitStore implements ports.RateLimitStore with fixed-window
// counters in process memory. Expired windows are dropped lazily.
type RateLimitStore struct {
	mu       sync.Mutex
	counters map[string]int64
	expiry   map[string]time.Time
	now      func() time.Time
}

// NewRateLimitStore creates an empty limiter.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		counters: make(map[string]int64),
		expiry:   make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow counts one request against key in the current window.
func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	now := s.now()
	secs := int64(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	windowID := now.Unix() / secs
	k := fmt.Sprintf("%s:%d", key, windowID)

	s.mu.Lock()
	for ek, exp := range s.expiry {
		if !now.Before(exp) {
			delete(s.expiry, ek)
			delete(s.counters, ek)
		}
	}
	s.counters[k]++
	count := s.counters[k]
	if count == 1 {
		s.expiry[k] = time.Unix((windowID+1)*secs, 0)
	}
	s.mu.Unlock()

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   (windowID + 1) * secs,
	}, nil
}

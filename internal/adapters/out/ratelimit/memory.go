// Package ratelimit provides rate limiter implementations.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/bnema/domaingate/internal/boundaries/out"
)

// DefaultIdleTTL is how long an unused key keeps its limiter.
const DefaultIdleTTL = 10 * time.Minute

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore is an in-memory rate limiter implementation using golang.org/x/time/rate.
// Each unique key gets its own token bucket; idle buckets are evicted by Sweep.
type MemoryStore struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a new in-memory rate limiter store.
func NewMemoryStore(rps float64, burst int) *MemoryStore {
	if burst < 1 {
		burst = 1
	}
	return &MemoryStore{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: DefaultIdleTTL,
		now:     time.Now,
	}
}

// Allow reports whether one more request identified by key fits in its budget.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	now := s.now()

	s.mu.Lock()
	c, ok := s.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now
	s.mu.Unlock()

	allowed := c.limiter.AllowN(now, 1)
	if !allowed {
		zerowrap.FromCtx(ctx).Debug().
			Str(zerowrap.FieldAdapter, "ratelimit").
			Str("key", key).
			Msg("rate limit exceeded")
	}
	return allowed
}

// Sweep drops limiters idle for longer than the idle TTL and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, c := range s.clients {
		if c.lastSeen.Before(cutoff) {
			delete(s.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run sweeps idle limiters every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	log := zerowrap.FromCtx(ctx)
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Str(zerowrap.FieldAdapter, "ratelimit").Int(zerowrap.FieldCount, n).Msg("evicted idle rate limiters")
			}
		}
	}
}

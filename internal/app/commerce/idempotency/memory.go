// Package idempotency implements placement idempotency-key stores.
package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/murkotick/storefront-graph/internal/pkg/clock"
)

const DefaultTTL = 24 * time.Hour

type entry struct {
	orderID   string
	expiresAt time.Time
}

// MemoryStore keeps keys in process memory. Expired keys are dropped lazily.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &MemoryStore{entries: make(map[string]entry), ttl: ttl, clock: clk}
}

func (s *MemoryStore) Reserve(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[key]; ok && now.Before(e.expiresAt) {
		return e.orderID, false, nil
	}
	s.entries[key] = entry{expiresAt: now.Add(s.ttl)}
	return "", true, nil
}

func (s *MemoryStore) Complete(_ context.Context, key, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{orderID: orderID, expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

// Release forgets an in-flight key. Completed keys are kept.
func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok && e.orderID == "" {
		delete(s.entries, key)
	}
	return nil
}

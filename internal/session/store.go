// Package session provides an in-memory TTL store for per-client state.
// Nothing here survives a process restart; bill sessions are deliberately
// ephemeral and never shared across clients.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps values keyed by generated session ids, each with a sliding
// expiry. The zero TTL falls back to a sensible default so a partially
// configured store still behaves.
type Store[T any] struct {
	TTL time.Duration
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// NewStore constructs a store with the given TTL.
func NewStore[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{TTL: ttl, entries: make(map[string]*entry[T])}
}

func (s *Store[T]) ttl() time.Duration {
	if s.TTL <= 0 {
		return 2 * time.Hour
	}
	return s.TTL
}

func (s *Store[T]) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores the value under a fresh id and returns the id.
func (s *Store[T]) Create(value T) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]*entry[T])
	}
	s.entries[id] = &entry[T]{value: value, expiresAt: s.now().Add(s.ttl())}
	return id
}

// Get returns the value for the id, refreshing its expiry. Expired entries
// behave as absent.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	e, ok := s.entries[id]
	if !ok {
		return zero, false
	}
	now := s.now()
	if !e.expiresAt.After(now) {
		delete(s.entries, id)
		return zero, false
	}
	e.expiresAt = now.Add(s.ttl())
	return e.value, true
}

// Update applies fn to the stored value under the lock and refreshes the
// expiry. It reports whether the session existed.
func (s *Store[T]) Update(id string, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	e, ok := s.entries[id]
	if !ok {
		return zero, false
	}
	now := s.now()
	if !e.expiresAt.After(now) {
		delete(s.entries, id)
		return zero, false
	}
	e.value = fn(e.value)
	e.expiresAt = now.Add(s.ttl())
	return e.value, true
}

// Delete removes the session if present.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len reports the number of live (possibly expired, not yet swept) sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops expired entries and returns how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired sessions on the given interval until ctx ends.
func (s *Store[T]) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

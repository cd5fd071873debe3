package repository

import (
	"context"
	"sync"
)

// MemoryStore implements Store with a map guarded by a mutex. The engine
// serializes all mutation anyway; the lock only covers concurrent reads
// from monitoring goroutines.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Get returns the record for player, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, player string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[player]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Put stores the record for player.
func (s *MemoryStore) Put(ctx context.Context, player string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[player] = rec
	return nil
}

// Count returns the number of active and busted players tracked.
func (s *MemoryStore) Count(ctx context.Context) (active, busted int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Busted {
			busted++
		} else {
			active++
		}
	}
	return active, busted
}

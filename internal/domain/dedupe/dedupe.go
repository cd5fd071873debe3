// Package dedupe defines the interface for request replay tracking.
package dedupe

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Guard records seen request IDs so the HTTP boundary can drop replays.
// The core itself stays exactly-once through host ordering; the guard only
// protects against clients re-sending the same draw request.
type Guard interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Size returns the current number of tracked ids.
	Size() int
}

// lruGuard implements Guard on a bounded LRU cache; old request ids age
// out once the cache fills.
type lruGuard struct {
	cache *lru.Cache[string, struct{}]
}

// NewLRUGuard creates a guard remembering up to size request ids.
func NewLRUGuard(size int) (Guard, error) {
	cache, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("create replay cache: %w", err)
	}
	return &lruGuard{cache: cache}, nil
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (g *lruGuard) SeenAndRecord(ctx context.Context, id string) bool {
	if _, ok := g.cache.Get(id); ok {
		return true
	}
	g.cache.Add(id, struct{}{})
	return false
}

// Size returns the current number of tracked ids.
func (g *lruGuard) Size() int {
	return g.cache.Len()
}

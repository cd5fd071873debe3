// Package repository defines the score store interface and errors.
//
// Persistence is an external collaborator of the core: the engine only
// assumes an abstract key-value store of per-player records. The in-memory
// implementation below is the default substrate.
package repository

import "context"

// Record is the persisted state of one player.
type Record struct {
	Score  int
	Busted bool
}

// Store provides read/write access to per-player records.
type Store interface {
	// Get returns the record for player.
	// Returns ErrNotFound if the player has never drawn.
	Get(ctx context.Context, player string) (Record, error)

	// Put stores the record for player, replacing any previous one.
	Put(ctx context.Context, player string, rec Record) error

	// Count returns the number of active and busted players tracked.
	Count(ctx context.Context) (active, busted int)
}

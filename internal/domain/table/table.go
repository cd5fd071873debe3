// Package table owns per-player cumulative scores and bust classification.
package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/pontoon/internal/adapters/repository"
	"github.com/okian/pontoon/internal/domain/model"
)

// BustThreshold is the highest score a player can hold and stay active.
// A score of exactly BustThreshold is still active and eligible for ranking;
// only crossing it busts.
const BustThreshold = 21

// State classifies a player's lifecycle: Unseen -> Active -> Busted.
// Busted is terminal; there is no recovery path.
type State int

const (
	StateUnseen State = iota
	StateActive
	StateBusted
)

// Result reports the effect of accumulating one card.
type Result struct {
	Score   int
	Busted  bool // true when this card pushed the score past the threshold
	Outcome model.Outcome
}

// Table accumulates scores behind an abstract key-value store.
type Table struct {
	store repository.Store
}

// New creates a table over store.
func New(store repository.Store) *Table {
	return &Table{store: store}
}

// Add accumulates card into player's score. If the player is already
// busted the call is a guarded no-op: the score is untouched and the
// outcome reports the skip. Scores are monotonically non-decreasing while
// active, which is what the leaderboard's positional update relies on.
func (t *Table) Add(ctx context.Context, player string, card int) (Result, error) {
	rec, err := t.store.Get(ctx, player)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Result{}, fmt.Errorf("load record for %s: %w", player, err)
	}

	if rec.Busted {
		return Result{Score: rec.Score, Busted: true, Outcome: model.OutcomeSkippedWrongState}, nil
	}

	rec.Score += card
	if rec.Score > BustThreshold {
		rec.Busted = true
	}
	if err := t.store.Put(ctx, player, rec); err != nil {
		return Result{}, fmt.Errorf("store record for %s: %w", player, err)
	}

	return Result{Score: rec.Score, Busted: rec.Busted, Outcome: model.OutcomeApplied}, nil
}

// Score returns the player's cumulative score, zero for unseen players.
func (t *Table) Score(ctx context.Context, player string) (int, error) {
	rec, err := t.store.Get(ctx, player)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load record for %s: %w", player, err)
	}
	return rec.Score, nil
}

// State returns the player's lifecycle state.
func (t *Table) State(ctx context.Context, player string) (State, error) {
	rec, err := t.store.Get(ctx, player)
	if errors.Is(err, repository.ErrNotFound) {
		return StateUnseen, nil
	}
	if err != nil {
		return StateUnseen, fmt.Errorf("load record for %s: %w", player, err)
	}
	if rec.Busted {
		return StateBusted, nil
	}
	return StateActive, nil
}

// Package model contains domain models passed between layers.
package model

// Outcome classifies the effect of a draw operation. Operations invoked
// against a player in the wrong state are silent no-ops, not errors.
type Outcome int

const (
	// OutcomeApplied means the draw was dealt and accumulated.
	OutcomeApplied Outcome = iota
	// OutcomeSkippedWrongState means the player was already busted, so
	// nothing was drawn, accumulated, or published.
	OutcomeSkippedWrongState
)

// String returns the wire representation of the outcome.
func (o Outcome) String() string {
	if o == OutcomeSkippedWrongState {
		return "skipped_wrong_state"
	}
	return "applied"
}

// DrawResult reports the observable effect of one draw operation.
type DrawResult struct {
	Player  string
	Card    int // zero when the draw was skipped
	Score   int
	Busted  bool // true once the player has crossed the threshold
	Outcome Outcome
}

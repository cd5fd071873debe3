// Package podium maintains the fixed-capacity top-3 ranking.
//
// The board is updated one player at a time and is never re-sorted from
// scratch. Correctness of the positional update rests on scores being
// monotonically non-decreasing while a player is active: an active player
// can only be promoted or stay in place, never need to move down, so the
// only duplicate check required is "do I already hold a slot at or above
// the target band".
package podium

// Size is the fixed number of leaderboard slots.
const Size = 3

// Slot is one leaderboard position. An empty slot has a zero Player and
// ranks below any score.
type Slot struct {
	Player string `json:"player,omitempty"`
	Score  int    `json:"score"`
}

// Empty reports whether the slot holds no entry.
func (s Slot) Empty() bool { return s.Player == "" }

// Podium is the ordered fixed-size ranking. Non-empty slots are sorted by
// score, descending by position; no player holds more than one slot.
type Podium struct {
	slots [Size]Slot
}

// New creates an empty podium.
func New() *Podium {
	return &Podium{}
}

// Snapshot returns a copy of all slots, best first.
func (p *Podium) Snapshot() [Size]Slot {
	return p.slots
}

// beats reports whether score ranks at or above slot i. Ties favor the
// candidate, i.e. the most recently acting player; empty slots lose to
// any score.
func (p *Podium) beats(i, score int) bool {
	return p.slots[i].Empty() || score >= p.slots[i].Score
}

// Promote places an active player's score into its slot, shifting lower
// entries down as needed. Returns true when a slot was written. A score
// that does not beat the bottom slot is rejected without modification,
// and a re-promotion with an unchanged score is a no-op so that
// read-with-refresh queries stay idempotent.
func (p *Podium) Promote(player string, score int) bool {
	if player == "" {
		return false
	}
	// Not worth ranking unless it beats the current bottom slot.
	if !p.slots[2].Empty() && score <= p.slots[2].Score {
		return false
	}

	cand := Slot{Player: player, Score: score}
	switch {
	case p.beats(0, score):
		if p.slots[0] == cand {
			return false
		}
		if p.slots[0].Player != player {
			// The player's own stale entry at slot 1, if any, must not
			// be duplicated into slot 2.
			if p.slots[1].Player != player {
				p.slots[2] = p.slots[1]
			}
			p.slots[1] = p.slots[0]
		}
		p.slots[0] = cand
	case p.beats(1, score):
		if p.slots[1] == cand {
			return false
		}
		if p.slots[1].Player != player {
			p.slots[2] = p.slots[1]
		}
		p.slots[1] = cand
	default:
		p.slots[2] = cand
	}
	return true
}

// Evict removes a busted player's entry, shifting lower entries up and
// clearing the vacated trailing slot. The resulting trailing hole persists
// until a future qualifying score refills it. Returns true when the player
// held a slot. Calling Evict for an unranked player is a no-op.
func (p *Podium) Evict(player string) bool {
	if player == "" {
		return false
	}
	for i := range p.slots {
		if p.slots[i].Player == player {
			copy(p.slots[i:], p.slots[i+1:])
			p.slots[Size-1] = Slot{}
			return true
		}
	}
	return false
}

// Package deal derives bounded card values from host entropy.
package deal

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/okian/pontoon/internal/domain/entropy"
)

// Card value bounds.
const (
	MinCard = 1
	MaxCard = 12
)

// Value maps an entropy tuple onto a card value in [MinCard, MaxCard].
//
// The tuple is hashed rather than summed so that every component perturbs
// the full output range. Determinism is part of the contract: the same
// tuple always yields the same card, which is what lets tests replay
// sequences through a fake clock.
func Value(t entropy.Tuple) int {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(t.Now.UnixNano()))
	h.Write(buf[:])
	h.Write([]byte(t.Caller))
	binary.BigEndian.PutUint64(buf[:], t.Nonce)
	h.Write(buf[:])
	sum := h.Sum(nil)

	u := binary.BigEndian.Uint64(sum[:8])
	return MinCard + int(u%uint64(MaxCard-MinCard+1))
}

// Dealer produces one card per call for the acting player.
type Dealer interface {
	// Deal returns the next card value in [MinCard, MaxCard].
	Deal(ctx context.Context, player string) (int, error)
}

// EntropyDealer implements Dealer over a host entropy source.
type EntropyDealer struct {
	source entropy.Source
}

// NewEntropyDealer creates a dealer drawing from source.
func NewEntropyDealer(source entropy.Source) *EntropyDealer {
	return &EntropyDealer{source: source}
}

// Deal consumes one entropy tuple and derives a card from it.
func (d *EntropyDealer) Deal(ctx context.Context, player string) (int, error) {
	t, err := d.source.Tuple(ctx, player)
	if err != nil {
		return 0, fmt.Errorf("entropy tuple for %s: %w", player, err)
	}
	return Value(t), nil
}

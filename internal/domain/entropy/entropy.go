// Package entropy defines the host-supplied entropy consumed by the dealer.
//
// The host environment exposes three observable inputs per operation: the
// current time, the identity of the acting caller, and a monotonic call
// counter. The tuple is deliberately predictable by privileged observers;
// it is not suitable where stake or fairness guarantees matter.
package entropy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Tuple is one entropy sample, consumed whole by the dealer.
type Tuple struct {
	Now    time.Time
	Caller string
	Nonce  uint64
}

// Source supplies one fresh tuple per call for the acting caller.
type Source interface {
	// Tuple returns the next entropy sample. A source that cannot supply
	// one returns ErrUnavailable; the whole operation aborts on it.
	Tuple(ctx context.Context, caller string) (Tuple, error)
}

// HostSource implements Source from a wall clock and an in-process
// monotonic counter.
type HostSource struct {
	clock clockwork.Clock
	nonce atomic.Uint64
}

// NewHostSource creates a host-backed entropy source with configuration options.
func NewHostSource(opts ...Option) *HostSource {
	s := &HostSource{
		clock: clockwork.NewRealClock(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Tuple returns the next entropy sample for caller.
func (s *HostSource) Tuple(ctx context.Context, caller string) (Tuple, error) {
	if err := ctx.Err(); err != nil {
		return Tuple{}, ErrUnavailable
	}
	if s.clock == nil {
		return Tuple{}, ErrUnavailable
	}
	return Tuple{
		Now:    s.clock.Now(),
		Caller: caller,
		Nonce:  s.nonce.Add(1),
	}, nil
}

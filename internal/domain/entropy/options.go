package entropy

import "github.com/jonboulle/clockwork"

// Option applies a configuration option to the HostSource.
type Option func(*HostSource)

// WithClock sets the clock backing the tuple's time component.
// Tests pass a clockwork fake clock for deterministic tuples.
func WithClock(clock clockwork.Clock) Option {
	return func(s *HostSource) {
		if clock != nil {
			s.clock = clock
		}
	}
}

package app

import (
	"github.com/okian/pontoon/internal/adapters/events"
	"github.com/okian/pontoon/internal/adapters/repository"
	"github.com/okian/pontoon/internal/domain/deal"
	"github.com/okian/pontoon/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDealer sets the card dealer. Tests inject scripted dealers here.
func WithDealer(d deal.Dealer) Option {
	return func(e *Engine) {
		if d != nil {
			e.dealer = d
		}
	}
}

// WithStore sets the persistence substrate for player records.
func WithStore(s repository.Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// WithBus sets the notification bus.
func WithBus(b *events.Bus) Option {
	return func(e *Engine) {
		if b != nil {
			e.bus = b
		}
	}
}

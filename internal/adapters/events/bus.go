// Package events broadcasts state-change notifications to host subscribers.
//
// The bus is the interface the core exposes to whatever transport or event
// log the host wires up; delivery beyond registered handlers is out of
// scope. Handlers run synchronously on the publishing goroutine, so
// subscribers observe notifications in exact operation order.
package events

import (
	"sync"

	"github.com/okian/pontoon/internal/domain/podium"
)

// Topic names for the two notifications the core emits.
type Topic string

const (
	// TopicCardDealt fires exactly once per completed draw.
	TopicCardDealt Topic = "pontoon.card_dealt"
	// TopicLeaderboardChanged fires exactly once per promotion or
	// eviction that actually wrote a slot.
	TopicLeaderboardChanged Topic = "pontoon.leaderboard_changed"
)

// CardDealt carries the acting player and the value dealt to them.
type CardDealt struct {
	Player string `json:"player"`
	Value  int    `json:"value"`
}

// LeaderboardChanged carries the full post-update board snapshot.
type LeaderboardChanged struct {
	Slots [podium.Size]podium.Slot `json:"slots"`
}

// Handler consumes one published payload.
type Handler func(payload interface{})

// Bus is a minimal topic-based publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]Handler),
	}
}

// Subscribe registers handler for topic. Handlers are invoked in
// registration order.
func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish delivers payload to every handler registered for topic.
func (b *Bus) Publish(topic Topic, payload interface{}) {
	b.mu.RLock()
	hs := b.handlers[topic]
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

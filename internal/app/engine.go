// Package app provides the engine that hosts the game core: it owns all
// mutable state and executes operations strictly one at a time, which is
// the scheduling guarantee the domain packages are written against.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/pontoon/internal/adapters/events"
	"github.com/okian/pontoon/internal/adapters/repository"
	"github.com/okian/pontoon/internal/domain/deal"
	"github.com/okian/pontoon/internal/domain/entropy"
	"github.com/okian/pontoon/internal/domain/model"
	"github.com/okian/pontoon/internal/domain/podium"
	"github.com/okian/pontoon/internal/domain/table"
	"github.com/okian/pontoon/pkg/logger"
	"github.com/okian/pontoon/pkg/metrics"
)

// Engine implements the game operations for the HTTP API.
type Engine struct {
	// mu serializes entry points: one logical operation at a time, run to
	// completion. The domain packages below carry no locking of their own.
	mu sync.Mutex

	// Core components
	store  repository.Store
	dealer deal.Dealer
	table  *table.Table
	board  *podium.Podium
	bus    *events.Bus

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Start initializes the engine components not supplied through options.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}

	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}
	if e.store == nil {
		e.store = repository.NewMemoryStore()
	}
	if e.dealer == nil {
		e.dealer = deal.NewEntropyDealer(entropy.NewHostSource())
	}
	if e.bus == nil {
		e.bus = events.NewBus()
	}
	e.table = table.New(e.store)
	e.board = podium.New()

	e.started = true
	e.logger.Info(ctx, "engine started",
		logger.Int("bust_threshold", table.BustThreshold),
		logger.Int("leaderboard_slots", podium.Size),
	)
	return nil
}

// Stop shuts the engine down. There are no background goroutines; this
// only blocks further operations.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	e.started = false
	e.logger.Info(context.Background(), "engine stopped")
}

// Bus returns the notification bus so the host can attach subscribers.
func (e *Engine) Bus() *events.Bus {
	return e.bus
}

// Draw executes one draw operation for player: deal a card, accumulate it,
// and update the ranking. Drawing while busted is a guarded no-op carrying
// OutcomeSkippedWrongState; an unavailable entropy source aborts the whole
// operation with no state change.
func (e *Engine) Draw(ctx context.Context, player string) (model.DrawResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return model.DrawResult{}, ErrNotStarted
	}

	state, err := e.table.State(ctx, player)
	if err != nil {
		return model.DrawResult{}, err
	}
	if state == table.StateBusted {
		// Guarded skip: no draw, no score change, no notification.
		score, err := e.table.Score(ctx, player)
		if err != nil {
			return model.DrawResult{}, err
		}
		metrics.RecordGuardSkip()
		e.logger.Debug(ctx, "draw skipped for busted player", logger.String("player", player))
		return model.DrawResult{
			Player:  player,
			Score:   score,
			Busted:  true,
			Outcome: model.OutcomeSkippedWrongState,
		}, nil
	}

	card, err := e.dealer.Deal(ctx, player)
	if err != nil {
		metrics.RecordEntropyFailure()
		return model.DrawResult{}, fmt.Errorf("deal for %s: %w", player, err)
	}

	res, err := e.table.Add(ctx, player, card)
	if err != nil {
		return model.DrawResult{}, err
	}

	e.bus.Publish(events.TopicCardDealt, events.CardDealt{Player: player, Value: card})
	metrics.RecordCardDealt(card)
	e.logger.Debug(ctx, "card dealt",
		logger.String("player", player),
		logger.Int("card", card),
		logger.Int("score", res.Score),
		logger.Bool("busted", res.Busted),
	)

	if res.Busted {
		metrics.RecordBust()
		if e.board.Evict(player) {
			metrics.RecordEviction()
			e.publishBoard()
		}
	} else if e.board.Promote(player, res.Score) {
		metrics.RecordPromotion()
		e.publishBoard()
	}

	return model.DrawResult{
		Player:  player,
		Card:    card,
		Score:   res.Score,
		Busted:  res.Busted,
		Outcome: res.Outcome,
	}, nil
}

// Score returns player's cumulative score after refreshing their
// leaderboard slot. This is read-with-refresh, not a pure read: querying
// can itself publish a LeaderboardChanged notification.
func (e *Engine) Score(ctx context.Context, player string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return 0, ErrNotStarted
	}
	if err := e.refresh(ctx, player); err != nil {
		return 0, err
	}
	return e.table.Score(ctx, player)
}

// Leaderboard returns the board snapshot after refreshing the querying
// player's slot. Same read-with-refresh caveat as Score.
func (e *Engine) Leaderboard(ctx context.Context, player string) ([podium.Size]podium.Slot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return [podium.Size]podium.Slot{}, ErrNotStarted
	}
	if err := e.refresh(ctx, player); err != nil {
		return [podium.Size]podium.Slot{}, err
	}
	return e.board.Snapshot(), nil
}

// refresh re-promotes the caller so their slot reflects their latest
// score. Non-active callers (unseen or busted) are skipped, matching the
// promote guard.
func (e *Engine) refresh(ctx context.Context, player string) error {
	state, err := e.table.State(ctx, player)
	if err != nil {
		return err
	}
	if state != table.StateActive {
		return nil
	}
	score, err := e.table.Score(ctx, player)
	if err != nil {
		return err
	}
	if e.board.Promote(player, score) {
		metrics.RecordPromotion()
		e.publishBoard()
	}
	return nil
}

// publishBoard emits a LeaderboardChanged notification with the current
// snapshot. Called only after a slot was actually written.
func (e *Engine) publishBoard() {
	e.bus.Publish(events.TopicLeaderboardChanged, events.LeaderboardChanged{Slots: e.board.Snapshot()})
	metrics.RecordLeaderboardEvent()
}

// Stats returns engine statistics for monitoring.
func (e *Engine) Stats(ctx context.Context) map[string]interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := map[string]interface{}{
		"started": e.started,
	}
	if e.started {
		active, busted := e.store.Count(ctx)
		stats["active_players"] = active
		stats["busted_players"] = busted

		metrics.UpdateActivePlayers(active)
		metrics.UpdateBustedPlayers(busted)
	}
	return stats
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/pontoon/internal/domain/dedupe"
	"github.com/okian/pontoon/internal/domain/model"
	"github.com/okian/pontoon/internal/domain/podium"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the engine implementation.
type Dependencies interface {
	// Draw executes one draw operation for player.
	Draw(ctx context.Context, player string) (model.DrawResult, error)

	// Read operations; both refresh the caller's slot before returning.
	Score(ctx context.Context, player string) (int, error)
	Leaderboard(ctx context.Context, player string) ([podium.Size]podium.Slot, error)
}

// Slot mirrors the read shape returned by leaderboard queries.
type Slot = podium.Slot

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	drawHandler        *DrawHandler
	scoreHandler       *ScoreHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, guard dedupe.Guard) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		drawHandler:        NewDrawHandler(deps, guard),
		scoreHandler:       NewScoreHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/draw", MetricsMiddleware(s.drawHandler.HandlePostDraw, "draw"))
	mux.HandleFunc("/score/", MetricsMiddleware(s.scoreHandler.HandleGetScore, "score"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
}

// drawRequest is the body for POST /draw.
type drawRequest struct {
	PlayerID  string `json:"player_id"`
	RequestID string `json:"request_id"`
}

func (d drawRequest) validate() error {
	if strings.TrimSpace(d.PlayerID) == "" {
		return errors.New("missing player_id")
	}
	return nil
}

// drawResponse reports the observable outcome of a draw.
type drawResponse struct {
	PlayerID  string `json:"player_id"`
	RequestID string `json:"request_id"`
	Card      int    `json:"card,omitempty"`
	Score     int    `json:"score"`
	Busted    bool   `json:"busted"`
	Outcome   string `json:"outcome"`
}

type duplicateResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

type scoreResponse struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

type leaderboardResponse struct {
	Slots [podium.Size]Slot `json:"slots"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

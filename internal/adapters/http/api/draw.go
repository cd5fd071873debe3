// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/okian/pontoon/internal/domain/dedupe"
	"github.com/okian/pontoon/internal/domain/entropy"
	"github.com/okian/pontoon/pkg/metrics"
)

// DrawHandler handles draw requests.
type DrawHandler struct {
	deps  Dependencies
	guard dedupe.Guard
}

// NewDrawHandler creates a new draw handler.
func NewDrawHandler(deps Dependencies, guard dedupe.Guard) *DrawHandler {
	return &DrawHandler{deps: deps, guard: guard}
}

// HandlePostDraw handles POST /draw requests.
//
// A request id makes the call replay-safe through the HTTP boundary:
// re-sending the same id returns a duplicate ack without drawing again.
// When the client omits it, one is generated and echoed back. A draw
// against a busted player is not an error; the response carries the
// skipped outcome.
func (h *DrawHandler) HandlePostDraw(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_draw"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req drawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if h.guard.SeenAndRecord(r.Context(), req.RequestID) {
		metrics.RecordReplayHit()
		writeJSON(w, http.StatusOK, duplicateResponse{Status: "duplicate", RequestID: req.RequestID})
		return
	}

	res, err := h.deps.Draw(r.Context(), req.PlayerID)
	if err != nil {
		if errors.Is(err, entropy.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "entropy_unavailable", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, drawResponse{
		PlayerID:  res.Player,
		RequestID: req.RequestID,
		Card:      res.Card,
		Score:     res.Score,
		Busted:    res.Busted,
		Outcome:   res.Outcome.String(),
	})
}

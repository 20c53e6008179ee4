package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ctfgrid/ctfgrid/internal/server/store"
)

// ScoreboardHandler serves the ranked standings.
type ScoreboardHandler struct {
	logger *slog.Logger
	store  *store.Store
}

// NewScoreboardHandler creates the scoreboard handler.
func NewScoreboardHandler(logger *slog.Logger, st *store.Store) *ScoreboardHandler {
	return &ScoreboardHandler{
		logger: logger,
		store:  st,
	}
}

// List handles GET /api/v1/scoreboard. No authentication required.
func (h *ScoreboardHandler) List(w http.ResponseWriter, r *http.Request) {
	sendData(w, h.logger, http.StatusOK, h.store.Scoreboard())
}

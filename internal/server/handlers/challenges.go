package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ctfgrid/ctfgrid/internal/server/store"
	"github.com/ctfgrid/ctfgrid/internal/validation"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// ChallengeHandler serves challenge listings and flag submissions.
type ChallengeHandler struct {
	logger   *slog.Logger
	store    *store.Store
	attempts *attemptLimiter
}

// NewChallengeHandler creates the challenge handler. attemptRate flag
// submissions per user are allowed per attemptWindow; beyond that the
// backend answers with the ratelimited status.
func NewChallengeHandler(logger *slog.Logger, st *store.Store, attemptRate int, attemptWindow time.Duration) *ChallengeHandler {
	return &ChallengeHandler{
		logger:   logger,
		store:    st,
		attempts: newAttemptLimiter(attemptRate, attemptWindow),
	}
}

// List handles GET /api/v1/challenges. Works anonymously; with a session
// the solved_by_me flags reflect the caller's solves.
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFrom(r)
	sendData(w, h.logger, http.StatusOK, h.store.Challenges(userID))
}

// Get handles GET /api/v1/challenges/{id}.
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendErrors(w, h.logger, http.StatusBadRequest, "invalid challenge id")
		return
	}

	userID, _ := userFrom(r)

	challenge, err := h.store.ChallengeByID(id, userID)
	if err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			sendErrors(w, h.logger, http.StatusNotFound, "challenge not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to load challenge", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	sendData(w, h.logger, http.StatusOK, challenge)
}

// Attempt handles POST /api/v1/challenges/attempt. The verdict is always a
// 200 with one of the closed attempt statuses; only malformed requests and
// unknown challenges are HTTP errors.
func (h *ChallengeHandler) Attempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, userName := userFrom(r)

	var req api.AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode attempt request", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateFlag(req.Submission); err != nil {
		sendErrors(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	flag, err := h.store.Flag(req.ChallengeID)
	if err != nil {
		sendErrors(w, h.logger, http.StatusNotFound, "challenge not found")
		return
	}

	if !h.attempts.Allow(userID) {
		h.logger.WarnContext(ctx, "attempt rate limited",
			slog.String("name", userName),
			slog.Int("challenge_id", req.ChallengeID))
		sendData(w, h.logger, http.StatusOK, api.AttemptResponse{
			Status:  api.AttemptRatelimited,
			Message: "You're submitting flags too fast. Slow down.",
		})
		return
	}

	if h.store.HasSolved(userID, req.ChallengeID) {
		sendData(w, h.logger, http.StatusOK, api.AttemptResponse{
			Status:  api.AttemptAlreadySolved,
			Message: "You already solved this",
		})
		return
	}

	if req.Submission != flag {
		sendData(w, h.logger, http.StatusOK, api.AttemptResponse{
			Status:  api.AttemptIncorrect,
			Message: "Incorrect",
		})
		return
	}

	h.store.RecordSolve(userID, req.ChallengeID)
	h.logger.InfoContext(ctx, "challenge solved",
		slog.String("name", userName),
		slog.Int("challenge_id", req.ChallengeID))

	sendData(w, h.logger, http.StatusOK, api.AttemptResponse{
		Status:  api.AttemptCorrect,
		Message: "Correct",
	})
}

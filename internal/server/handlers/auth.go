package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/ctfgrid/ctfgrid/internal/server/store"
	"github.com/ctfgrid/ctfgrid/internal/validation"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

const badCredentialsMessage = "Your username or password is incorrect"

// AuthHandler serves token issuing, registration and the profile endpoint.
type AuthHandler struct {
	logger    *slog.Logger
	store     *store.Store
	jwtConfig JWTConfig
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(logger *slog.Logger, st *store.Store, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		store:     st,
		jwtConfig: jwtConfig,
	}
}

// CreateToken handles POST /api/v1/tokens: credentials in, session token out.
func (h *AuthHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.UserByName(req.Name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			sendErrors(w, h.logger, http.StatusForbidden, badCredentialsMessage)
			return
		}
		h.logger.ErrorContext(ctx, "failed to look up user", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "rejected login", slog.String("name", req.Name))
		sendErrors(w, h.logger, http.StatusForbidden, badCredentialsMessage)
		return
	}

	token, err := GenerateSessionToken(h.jwtConfig, user.ID, user.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate session token", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "session token issued",
		slog.String("name", user.Name),
		slog.Int("user_id", user.ID))

	sendData(w, h.logger, http.StatusOK, api.TokenData{Token: token})
}

// Register handles POST /api/v1/users: creates a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateName(req.Name); err != nil {
		sendErrors(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		sendErrors(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendErrors(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			sendErrors(w, h.logger, http.StatusConflict, "name already taken")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendErrors(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("name", user.Name),
		slog.Int("user_id", user.ID))

	sendData(w, h.logger, http.StatusCreated, api.User{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Created: user.Created.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Me handles GET /api/v1/users/me for the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFrom(r)

	user, err := h.store.UserByID(userID)
	if err != nil {
		sendErrors(w, h.logger, http.StatusNotFound, "user not found")
		return
	}

	sendData(w, h.logger, http.StatusOK, api.User{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Created: user.Created.Format("2006-01-02T15:04:05Z07:00"),
	})
}

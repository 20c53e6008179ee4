package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ctfgrid/ctfgrid/internal/client/storage"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// TokenTTL is the fixed lifetime of a stored session token.
const TokenTTL = 7 * 24 * time.Hour

// Status describes the session state machine.
type Status string

const (
	// StatusUnknown is the initial state before the first refresh.
	StatusUnknown Status = "unknown"
	// StatusAnonymous means no valid session exists.
	StatusAnonymous Status = "anonymous"
	// StatusAuthenticated means a token is stored and the last profile
	// fetch succeeded.
	StatusAuthenticated Status = "authenticated"
)

// Gateway is the slice of the API client the session layer depends on.
type Gateway interface {
	Login(ctx context.Context, req api.LoginRequest) api.Envelope[api.TokenData]
	Register(ctx context.Context, req api.RegisterRequest) api.Envelope[api.User]
	GetCurrentUser(ctx context.Context) api.Envelope[api.User]
}

// AuthError carries the backend's human-readable error strings for a failed
// login or registration.
type AuthError struct {
	Errors []string
}

func (e *AuthError) Error() string {
	if len(e.Errors) == 0 {
		return "authentication failed"
	}
	return strings.Join(e.Errors, "; ")
}

// Service owns the current user and the stored session token. All mutations
// go through its methods; operations are serialized by a mutex so overlapping
// login/refresh calls cannot interleave (no "last response wins" races).
type Service struct {
	gateway Gateway
	tokens  storage.TokenStore
	logger  *slog.Logger
	user    *api.User
	status  Status
	mu      sync.Mutex
}

// NewService creates a session service in the Unknown state. Call
// RefreshUser once at startup to settle into Anonymous or Authenticated.
func NewService(gateway Gateway, tokens storage.TokenStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger,
		status:  StatusUnknown,
	}
}

// Status returns the current session status.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns a copy of the current user, or nil when not authenticated.
func (s *Service) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a user profile is present.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusAuthenticated && s.user != nil
}

// RefreshUser re-fetches the profile for the stored token. Idempotent: with
// no token it settles into Anonymous; with a token it transitions to
// Authenticated or, when the fetch is rejected, purges the token and goes
// Anonymous. The token and user always change together.
func (s *Service) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

// Login exchanges credentials for a token, persists it with the fixed TTL
// and refreshes the profile. On failure the session stays non-authenticated
// and no token is persisted.
func (s *Service) Login(ctx context.Context, name, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginLocked(ctx, name, password)
}

// Register creates an account and then logs in with the same credentials.
// When registration succeeds but the auto-login fails, the account exists
// server-side yet the caller sees a login-shaped failure and the session
// stays non-authenticated.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	env := s.gateway.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if !env.Success {
		s.settle()
		return &AuthError{Errors: env.Errors}
	}

	s.logger.InfoContext(ctx, "account registered", slog.String("name", name))

	return s.loginLocked(ctx, name, password)
}

// Logout clears the stored token and the in-memory user.
// The backend keeps no server-side session to invalidate.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	s.user = nil
	s.status = StatusAnonymous
	s.logger.InfoContext(ctx, "logged out")

	return nil
}

func (s *Service) loginLocked(ctx context.Context, name, password string) error {
	env := s.gateway.Login(ctx, api.LoginRequest{Name: name, Password: password})
	if !env.Success {
		s.settle()
		return &AuthError{Errors: env.Errors}
	}

	token := &storage.TokenData{
		Token:     env.Data.Token,
		ExpiresAt: time.Now().Add(TokenTTL).Unix(),
	}
	if err := s.tokens.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	if err := s.refreshLocked(ctx); err != nil {
		return err
	}

	if s.status != StatusAuthenticated {
		// The token was already purged by the failed refresh
		return &AuthError{Errors: []string{"login succeeded but the session could not be established"}}
	}

	s.logger.InfoContext(ctx, "logged in", slog.String("name", name))

	return nil
}

func (s *Service) refreshLocked(ctx context.Context) error {
	_, err := s.tokens.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			s.user = nil
			s.status = StatusAnonymous
			return nil
		}
		return fmt.Errorf("failed to read session token: %w", err)
	}

	env := s.gateway.GetCurrentUser(ctx)
	if !env.Success {
		// Stale or invalid session: drop the token and the user together
		// so "token present, no user" can never be observed.
		if delErr := s.tokens.DeleteToken(ctx); delErr != nil {
			s.logger.WarnContext(ctx, "failed to purge stale token", slog.Any("error", delErr))
		}
		s.user = nil
		s.status = StatusAnonymous
		s.logger.InfoContext(ctx, "session invalidated",
			slog.String("kind", string(env.Kind)),
			slog.Any("errors", env.Errors))
		return nil
	}

	user := env.Data
	s.user = &user
	s.status = StatusAuthenticated

	return nil
}

// settle moves an Unknown session to Anonymous after a failed operation.
func (s *Service) settle() {
	if s.status == StatusUnknown {
		s.status = StatusAnonymous
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/ctfgrid/ctfgrid/internal/client/storage"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

const (
	networkErrorMessage = "network error, please check your connection"
	genericErrorMessage = "an error occurred"
)

// Client is the single HTTP gateway to a CTFd-compatible backend. Every
// operation returns an Envelope and never a Go error: backend rejections
// and transport failures both travel back as data.
type Client struct {
	httpClient   *http.Client
	tokens       storage.TokenStore
	logger       *slog.Logger
	baseURL      string
	demoFallback bool
}

// Option configures a Client.
type Option func(*Client)

// WithDemoFallback makes GetChallenges and GetScoreboard substitute fixture
// data on failure instead of reporting the error. The substitution is logged
// so a genuine outage is not mistaken for live data.
func WithDemoFallback() Option {
	return func(c *Client) {
		c.demoFallback = true
	}
}

// NewClient creates a new API client
func NewClient(baseURL string, tokens storage.TokenStore, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	// Cookie jar keeps backend session cookies across requests, the
	// counterpart of a browser's credentials-included fetch.
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the bearer header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login exchanges credentials for a session token via POST /api/v1/tokens.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) api.Envelope[api.TokenData] {
	return request[api.TokenData](ctx, c, http.MethodPost, "/api/v1/tokens", req)
}

// Register creates a new account via POST /api/v1/users.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) api.Envelope[api.User] {
	return request[api.User](ctx, c, http.MethodPost, "/api/v1/users", req)
}

// GetCurrentUser fetches the authenticated profile via GET /api/v1/users/me.
// A failed envelope with a stored token means the session is stale; the
// session layer reacts by dropping the token.
func (c *Client) GetCurrentUser(ctx context.Context) api.Envelope[api.User] {
	return request[api.User](ctx, c, http.MethodGet, "/api/v1/users/me", nil)
}

// GetChallenges lists challenges via GET /api/v1/challenges.
// With demo fallback enabled a failure yields the fixture set instead.
func (c *Client) GetChallenges(ctx context.Context) api.Envelope[[]api.Challenge] {
	env := request[[]api.Challenge](ctx, c, http.MethodGet, "/api/v1/challenges", nil)
	if !env.Success && c.demoFallback {
		c.logger.WarnContext(ctx, "challenge fetch failed, serving demo fixtures",
			slog.String("kind", string(env.Kind)),
			slog.Any("errors", env.Errors))
		return api.Ok(FixtureChallenges())
	}
	return env
}

// GetChallenge fetches a single challenge via GET /api/v1/challenges/{id}.
func (c *Client) GetChallenge(ctx context.Context, id int) api.Envelope[api.Challenge] {
	path := fmt.Sprintf("/api/v1/challenges/%d", id)
	return request[api.Challenge](ctx, c, http.MethodGet, path, nil)
}

// SubmitFlag submits a flag via POST /api/v1/challenges/attempt.
// The backend owns correctness and rate limiting.
func (c *Client) SubmitFlag(ctx context.Context, req api.AttemptRequest) api.Envelope[api.AttemptResponse] {
	return request[api.AttemptResponse](ctx, c, http.MethodPost, "/api/v1/challenges/attempt", req)
}

// GetScoreboard lists ranked entries via GET /api/v1/scoreboard.
// Same fixture fallback policy as GetChallenges.
func (c *Client) GetScoreboard(ctx context.Context) api.Envelope[[]api.ScoreboardEntry] {
	env := request[[]api.ScoreboardEntry](ctx, c, http.MethodGet, "/api/v1/scoreboard", nil)
	if !env.Success && c.demoFallback {
		c.logger.WarnContext(ctx, "scoreboard fetch failed, serving demo fixtures",
			slog.String("kind", string(env.Kind)),
			slog.Any("errors", env.Errors))
		return api.Ok(FixtureScoreboard())
	}
	return env
}

// wireEnvelope mirrors the backend's response framing: CTFd wraps payloads
// in {"success": ..., "data": ...}.
type wireEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Success *bool           `json:"success"`
}

// request performs one HTTP round trip and normalizes the outcome into an
// Envelope. It attaches the stored bearer token when present.
func request[T any](ctx context.Context, c *Client, method, path string, body any) api.Envelope[T] {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return api.Fail[T](api.ErrorKindTransport, fmt.Sprintf("failed to encode request: %v", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return api.Fail[T](api.ErrorKindTransport, fmt.Sprintf("failed to create request: %v", err))
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token, tokenErr := c.tokens.GetToken(ctx); tokenErr == nil {
		req.Header.Set("Authorization", "Token "+token.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed", slog.String("path", path), slog.Any("error", err))
		return api.Fail[T](api.ErrorKindTransport, networkErrorMessage)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.Fail[T](api.ErrorKindTransport, networkErrorMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return api.Fail[T](api.ErrorKindBackend, backendErrors(respBody)...)
	}

	var wire wireEnvelope
	payload := respBody
	if err := json.Unmarshal(respBody, &wire); err == nil && wire.Data != nil {
		payload = wire.Data
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		return api.Fail[T](api.ErrorKindBackend, fmt.Sprintf("failed to decode response: %v", err))
	}

	return api.Ok(data)
}

// backendErrors extracts human-readable error strings from a non-2xx body:
// the backend's errors list, else its message field, else a generic string.
func backendErrors(body []byte) []string {
	var wire wireEnvelope
	if err := json.Unmarshal(body, &wire); err == nil {
		if len(wire.Errors) > 0 {
			return wire.Errors
		}
		if wire.Message != "" {
			return []string{wire.Message}
		}
	}
	return []string{genericErrorMessage}
}

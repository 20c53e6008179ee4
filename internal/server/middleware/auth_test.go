package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctfgrid/ctfgrid/internal/server/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
}

// claimsEcho records what the auth middleware put into the request context.
func claimsEcho(gotID *int, gotName *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(handlers.UserIDKey).(int); ok {
			*gotID = id
		}
		if name, ok := r.Context().Value(handlers.UserNameKey).(string); ok {
			*gotName = name
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := handlers.GenerateSessionToken(cfg, 42, "alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		scheme string
	}{
		{name: "token scheme", scheme: "Token"},
		{name: "bearer scheme", scheme: "Bearer"},
		{name: "lowercase scheme", scheme: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int
			var gotName string
			h := Auth(testLogger(), cfg, true)(claimsEcho(&gotID, &gotName))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.scheme+" "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 42, gotID)
			assert.Equal(t, "alice", gotName)
		})
	}
}

func TestAuth_Required_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme", header: "just-a-token"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "invalid token", header: "Token not.a.jwt"},
	}

	cfg := testJWTConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int
			var gotName string
			h := Auth(testLogger(), cfg, true)(claimsEcho(&gotID, &gotName))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "session token")
			assert.Zero(t, gotID)
		})
	}
}

func TestAuth_Optional_PassesThroughAnonymously(t *testing.T) {
	var gotID int
	var gotName string
	h := Auth(testLogger(), testJWTConfig(), false)(claimsEcho(&gotID, &gotName))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, gotID)
	assert.Empty(t, gotName)
}

func TestAuth_Optional_StillSetsClaims(t *testing.T) {
	cfg := testJWTConfig()
	token, err := handlers.GenerateSessionToken(cfg, 7, "bob")
	require.NoError(t, err)

	var gotID int
	var gotName string
	h := Auth(testLogger(), cfg, false)(claimsEcho(&gotID, &gotName))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotID)
	assert.Equal(t, "bob", gotName)
}

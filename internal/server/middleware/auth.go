package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ctfgrid/ctfgrid/internal/server/handlers"
)

// Auth creates middleware validating the session token from the
// Authorization header. Both "Token" (CTFd convention) and "Bearer" schemes
// are accepted. When required is false, requests without a valid token pass
// through anonymously; otherwise they are rejected with 401.
func Auth(logger *slog.Logger, jwtConfig handlers.JWTConfig, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := claimsFrom(logger, jwtConfig, r)
			if !ok {
				if required {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"success":false,"errors":["a valid session token is required"]}`))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UserNameKey, claims.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsFrom(logger *slog.Logger, jwtConfig handlers.JWTConfig, r *http.Request) (*handlers.SessionClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || (!strings.EqualFold(parts[0], "Token") && !strings.EqualFold(parts[0], "Bearer")) {
		logger.Warn("invalid Authorization header format")
		return nil, false
	}

	claims, err := handlers.ValidateSessionToken(jwtConfig, parts[1])
	if err != nil {
		logger.Warn("invalid session token", "error", err)
		return nil, false
	}

	return claims, true
}

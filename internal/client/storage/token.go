package storage

import (
	"context"
	"time"
)

// TokenStore defines the interface for persisting the backend session token
// on the client. Token absence is a normal "logged out" state, not a failure.
type TokenStore interface {
	// SaveToken stores the session token, replacing any previous one
	SaveToken(ctx context.Context, token *TokenData) error

	// GetToken returns the stored session token.
	// Returns ErrTokenNotFound if no token exists or the stored one expired.
	GetToken(ctx context.Context) (*TokenData, error)

	// DeleteToken removes the stored session token (logout).
	// Deleting an absent token is not an error.
	DeleteToken(ctx context.Context) error
}

// TokenData represents the persisted session token. The token value is an
// opaque bearer credential issued by the backend; the client never inspects
// it beyond the expiry bookkeeping kept alongside.
type TokenData struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Expired reports whether the token's expiry has passed.
func (t *TokenData) Expired(now time.Time) bool {
	return now.Unix() >= t.ExpiresAt
}

package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ctfgrid/ctfgrid/internal/client/storage"
)

var tokenKey = []byte("current")

// Compile-time check that Storage implements TokenStore
var _ storage.TokenStore = (*Storage)(nil)

// SaveToken stores the session token, replacing any previous one
func (s *Storage) SaveToken(ctx context.Context, token *storage.TokenData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(token)
		if err != nil {
			return fmt.Errorf("failed to marshal token data: %w", err)
		}

		if err := bucket.Put(tokenKey, data); err != nil {
			return fmt.Errorf("failed to save token data: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored session token.
// An expired token is reported as not found, matching cookie expiry
// semantics: the caller cannot tell "never set" from "expired".
func (s *Storage) GetToken(ctx context.Context) (*storage.TokenData, error) {
	var token *storage.TokenData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = &storage.TokenData{}
		if err := json.Unmarshal(data, token); err != nil {
			return fmt.Errorf("failed to unmarshal token data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if token.Expired(time.Now()) {
		return nil, storage.ErrTokenNotFound
	}

	return token, nil
}

// DeleteToken removes the stored session token (logout).
// Deleting when nothing is stored is a no-op.
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token data: %w", err)
		}

		return nil
	})
}

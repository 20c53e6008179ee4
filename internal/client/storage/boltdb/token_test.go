package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctfgrid/ctfgrid/internal/client/storage"
)

// newTestStorage creates a Storage backed by a temp file
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ctfgrid-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_SaveGetToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	token := &storage.TokenData{
		Token:     "ctfd-session-token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	err := s.SaveToken(ctx, token)
	require.NoError(t, err)

	got, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token.Token, got.Token)
	assert.Equal(t, token.ExpiresAt, got.ExpiresAt)
}

func TestStorage_GetToken_NotFound(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.GetToken(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_GetToken_Expired(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	token := &storage.TokenData{
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}
	require.NoError(t, s.SaveToken(ctx, token))

	got, err := s.GetToken(ctx)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_SaveToken_Replaces(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	expires := time.Now().Add(7 * 24 * time.Hour).Unix()
	require.NoError(t, s.SaveToken(ctx, &storage.TokenData{Token: "first", ExpiresAt: expires}))
	require.NoError(t, s.SaveToken(ctx, &storage.TokenData{Token: "second", ExpiresAt: expires}))

	got, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
}

func TestStorage_DeleteToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	token := &storage.TokenData{
		Token:     "to-be-deleted",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	require.NoError(t, s.SaveToken(ctx, token))

	err := s.DeleteToken(ctx)
	require.NoError(t, err)

	_, err = s.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_DeleteToken_Absent(t *testing.T) {
	s := newTestStorage(t)

	// Logout without a stored session must not fail
	err := s.DeleteToken(context.Background())
	assert.NoError(t, err)
}

package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homevisit/internal/client/storage"
)

func TestSessionSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	session := &storage.Session{
		Username:    "mworker",
		UserID:      "user-123",
		AccessToken: "token-abc",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.AccessToken, got.AccessToken)

	require.NoError(t, store.DeleteSession(ctx))

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestSessionReplaced(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveSession(ctx, &storage.Session{Username: "first"}))
	require.NoError(t, store.SaveSession(ctx, &storage.Session{Username: "second"}))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Username)
}

func TestSessionAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

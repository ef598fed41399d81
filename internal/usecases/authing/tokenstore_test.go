package authing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

func newTestStore(t *testing.T) *FileTokenStore {
	t.Helper()
	return NewFileTokenStore(filepath.Join(t.TempDir(), ".tokens.json"))
}

func TestFileTokenStore_StoreAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(DefaultUserID, "EAAB-token", 3600))

	token, ok := store.Token(DefaultUserID)
	require.True(t, ok)
	assert.Equal(t, "EAAB-token", token)
}

func TestFileTokenStore_MissingToken(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Token(DefaultUserID)
	assert.False(t, ok)
}

func TestFileTokenStore_ExpiredTokenRemoved(t *testing.T) {
	store := newTestStore(t)

	now := time.Now()
	store.now = func() time.Time { return now }
	require.NoError(t, store.Store(DefaultUserID, "short-lived", 60))

	// advance past the expiry
	store.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, ok := store.Token(DefaultUserID)
	assert.False(t, ok)

	// the expired record is gone from disk too
	info := store.Info(DefaultUserID)
	assert.False(t, info.HasToken)
}

func TestFileTokenStore_NoExpiryMeansNever(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(DefaultUserID, "long-lived", 0))

	info := store.Info(DefaultUserID)
	assert.True(t, info.HasToken)
	assert.False(t, info.IsExpired)
	assert.Equal(t, "Never", info.ExpiresAt)

	token, ok := store.Token(DefaultUserID)
	require.True(t, ok)
	assert.Equal(t, "long-lived", token)
}

func TestFileTokenStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(DefaultUserID, "token", 0))
	require.NoError(t, store.Clear(DefaultUserID))

	_, ok := store.Token(DefaultUserID)
	assert.False(t, ok)
}

func TestFileTokenStore_Sweep(t *testing.T) {
	store := newTestStore(t)

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Store("expired-user", "old", 60))
	require.NoError(t, store.Store("fresh-user", "new", 3600))
	require.NoError(t, store.Store("forever-user", "keeper", 0))

	store.now = func() time.Time { return now.Add(10 * time.Minute) }

	removed, err := store.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := store.Token("expired-user")
	assert.False(t, ok)
	_, ok = store.Token("fresh-user")
	assert.True(t, ok)
	_, ok = store.Token("forever-user")
	assert.True(t, ok)
}

func TestFileTokenStore_CorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := NewFileTokenStore(path)

	_, ok := store.Token(DefaultUserID)
	assert.False(t, ok)

	// a fresh login still works after corruption
	require.NoError(t, store.Store(DefaultUserID, "token", 0))
	token, ok := store.Token(DefaultUserID)
	require.True(t, ok)
	assert.Equal(t, "token", token)
}

func TestFileTokenStore_AccessTokenProvider(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AccessToken(context.Background())
	assert.ErrorIs(t, err, tooling.ErrNotAuthenticated)

	require.NoError(t, store.Store(DefaultUserID, "token", 0))

	token, err := store.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

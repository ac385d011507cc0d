package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *TokenStore {
	t.Helper()
	return NewTokenStore(filepath.Join(t.TempDir(), "nested", "token.json"))
}

func TestTokenStore_SaveThenLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("opaque-token"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got)
}

func TestTokenStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoStoredToken)
}

func TestTokenStore_LoadEmptyToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token": "   "}`), 0o600))

	_, err := NewTokenStore(path).Load()
	assert.ErrorIs(t, err, ErrNoStoredToken)
}

func TestTokenStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewTokenStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoStoredToken)
}

func TestTokenStore_SaveEmptyToken(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save("  "))
}

func TestTokenStore_SaveTrimsWhitespace(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("  padded-token \n"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "padded-token", got)
}

func TestTokenStore_FilePermissions(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("opaque-token"))

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTokenStore_ClearRemovesToken(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("opaque-token"))

	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoStoredToken)
}

func TestTokenStore_ClearIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestTokenStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("first"))
	require.NoError(t, s.Save("second"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

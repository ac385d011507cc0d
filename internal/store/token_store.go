// Package store persists the console's local state between runs. The only
// thing persisted is the bearer token; every other piece of data lives on
// the backend and is fetched fresh.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoStoredToken is returned by [TokenStore.Load] when no token has been
// saved yet, or the stored token is empty.
var ErrNoStoredToken = errors.New("no stored token")

// storedToken is the on-disk JSON shape of the token file.
type storedToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// TokenStore reads and writes the session token file. Methods are safe for
// sequential use; the console never writes the token from two goroutines.
type TokenStore struct {
	path string
}

// NewTokenStore constructs a TokenStore over the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load returns the persisted token. Returns [ErrNoStoredToken] when the file
// does not exist or holds an empty token, and a wrapped error for any other
// read or decode failure.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoStoredToken
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	var st storedToken
	if err = json.Unmarshal(data, &st); err != nil {
		return "", fmt.Errorf("decode token file: %w", err)
	}

	token := strings.TrimSpace(st.Token)
	if token == "" {
		return "", ErrNoStoredToken
	}

	return token, nil
}

// Save persists the token, creating parent directories as needed. The file
// is written with 0600 permissions: the token grants full account access.
func (s *TokenStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to save empty token")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}

	data, err := json.Marshal(storedToken{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

// Clear removes the token file. Clearing an already-absent file is not an
// error, which makes Logout idempotent.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}

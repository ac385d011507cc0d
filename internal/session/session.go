// Package session holds the console's view of the authenticated session:
// the bearer token, the cached profile, the first-run bootstrap flag and the
// loading state the route guard keys off.
//
// The Store is the single owner of session state. Screens never talk to the
// token file or mutate the profile directly; they call the operations here
// and read immutable snapshots.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/internal/store"
	"github.com/usina-ipiranga/caldo-console/models"
)

// ErrNotAuthenticated is returned by operations that require a live session
// when none exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// Store owns the session state. All fields behind mu; operations may be
// called from bubbletea command goroutines concurrently.
type Store struct {
	adapter adapter.BackendAdapter
	tokens  *store.TokenStore
	logger  *logger.Logger

	mu         sync.RWMutex
	token      string
	user       *models.User
	loading    bool
	needsSetup bool

	// generation increments whenever the token changes (login/logout).
	// A profile fetch started under an older generation is discarded on
	// completion so it cannot overwrite newer state.
	generation uint64
}

// NewStore constructs a session Store. The store starts in the loading
// state; call Initialize to restore a persisted session.
func NewStore(backendAdapter adapter.BackendAdapter, tokens *store.TokenStore, logger *logger.Logger) *Store {
	return &Store{
		adapter: backendAdapter,
		tokens:  tokens,
		logger:  logger,
		loading: true,
	}
}

// Initialize restores the persisted session, if any. With no stored token it
// simply leaves the loading state; with one it installs the token and
// validates it against the backend via FetchProfile, which logs out on any
// failure. The backend's setup status is checked either way so the login
// screen knows whether to offer the first-run bootstrap.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.CheckSetupStatus(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("setup status check failed")
	}

	token, err := s.tokens.Load()
	if errors.Is(err, store.ErrNoStoredToken) {
		s.setLoading(false)
		return nil
	}
	if err != nil {
		s.setLoading(false)
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.generation++
	s.mu.Unlock()
	s.adapter.SetToken(token)

	return s.FetchProfile(ctx)
}

// CheckSetupStatus refreshes the first-run bootstrap flag from the backend.
func (s *Store) CheckSetupStatus(ctx context.Context) error {
	status, err := s.adapter.SetupStatus(ctx)
	if err != nil {
		return fmt.Errorf("check setup status: %w", err)
	}

	s.mu.Lock()
	s.needsSetup = status.NeedsSetup
	s.mu.Unlock()

	return nil
}

// Login authenticates with the backend and installs the returned session.
// The token is persisted so the next run can restore it; a persist failure
// is logged but does not fail the login, the in-memory session still works.
func (s *Store) Login(ctx context.Context, matricula, password string) (models.User, error) {
	resp, err := s.adapter.Login(ctx, models.LoginRequest{Matricula: matricula, Password: password})
	if err != nil {
		return models.User{}, err
	}

	if err = s.tokens.Save(resp.Token); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist session token")
	}

	user := resp.User
	s.mu.Lock()
	s.token = resp.Token
	s.user = &user
	s.loading = false
	s.needsSetup = false
	s.generation++
	s.mu.Unlock()

	s.logger.Info().Str("matricula", matricula).Str("role", string(user.Role)).Msg("logged in")
	return user, nil
}

// Logout drops the session: the adapter token, the in-memory state and the
// persisted token file. Safe to call repeatedly and when not logged in.
func (s *Store) Logout() {
	s.adapter.SetToken("")
	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted token")
	}

	s.mu.Lock()
	wasAuthenticated := s.token != ""
	s.token = ""
	s.user = nil
	s.loading = false
	s.generation++
	s.mu.Unlock()

	if wasAuthenticated {
		s.logger.Info().Msg("logged out")
	}
}

// FetchProfile refreshes the cached profile from GET /api/auth/me. Any
// failure invalidates the whole session (forced logout), matching the
// backend's contract that a token which cannot resolve a profile is dead.
// A fetch completing after the token changed again is discarded.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	user, err := s.adapter.Me(ctx)

	s.mu.Lock()
	if s.generation != gen {
		// Token changed while the fetch was in flight; the result belongs
		// to a superseded session.
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn().Err(err).Msg("profile fetch failed, dropping session")
		s.Logout()
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.user = &user
	s.loading = false
	s.mu.Unlock()

	return nil
}

// SetupAdmin runs the first-run administrator bootstrap and returns the
// generated credentials for display. On success the bootstrap offer is
// withdrawn.
func (s *Store) SetupAdmin(ctx context.Context) (models.BootstrapCredentials, error) {
	creds, err := s.adapter.SetupAdmin(ctx)
	if err != nil {
		return models.BootstrapCredentials{}, err
	}

	s.mu.Lock()
	s.needsSetup = false
	s.mu.Unlock()

	s.logger.Info().Str("matricula", creds.Matricula).Msg("bootstrap administrator created")
	return creds, nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

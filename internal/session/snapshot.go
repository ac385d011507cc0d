package session

import "github.com/usina-ipiranga/caldo-console/models"

// Snapshot is an immutable copy of the session state taken at one instant.
// The route guard and screens render from snapshots so a concurrent login
// or logout can never tear a frame.
type Snapshot struct {
	Loading       bool
	NeedsSetup    bool
	Authenticated bool
	User          models.User
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Loading:       s.loading,
		NeedsSetup:    s.needsSetup,
		Authenticated: s.token != "" && s.user != nil,
	}
	if s.user != nil {
		snap.User = *s.user
	}
	return snap
}

// IsAuthenticated reports whether a token and profile are both present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsLoading reports whether a session restore or profile fetch is running.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// NeedsSetup reports whether the backend is waiting for the first-run
// administrator bootstrap.
func (s *Store) NeedsSetup() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.needsSetup
}

// User returns a copy of the cached profile and whether one is present.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsOperator reports whether the session belongs to a shop-floor operator.
func (s *Store) IsOperator() bool {
	return s.hasRole(models.RoleOperator)
}

// IsSupervisor reports whether the session holds supervisor capabilities.
// Administrators count as supervisors.
func (s *Store) IsSupervisor() bool {
	return s.hasRole(models.RoleSupervisor) || s.hasRole(models.RoleAdmin)
}

// IsAdmin reports whether the session belongs to the administrator account.
func (s *Store) IsAdmin() bool {
	return s.hasRole(models.RoleAdmin)
}

// CanManageUsers reports whether the session may open the user management
// screen. Currently identical to IsSupervisor.
func (s *Store) CanManageUsers() bool {
	return s.IsSupervisor()
}

func (s *Store) hasRole(role models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}

// IsSupervisor reports supervisor capabilities for the snapshot's user.
// Administrators count as supervisors.
func (snap Snapshot) IsSupervisor() bool {
	return snap.Authenticated &&
		(snap.User.Role == models.RoleSupervisor || snap.User.Role == models.RoleAdmin)
}

// CanManageUsers reports whether the snapshot's user may manage accounts.
func (snap Snapshot) CanManageUsers() bool {
	return snap.IsSupervisor()
}

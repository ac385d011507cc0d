package models

import "fmt"

// Role is the closed set of access levels a user account can hold.
// All role checks in the application go through this type; raw string
// comparison against role names is not allowed outside this file.
type Role string

const (
	// RoleOperator is the shop-floor operator: can read and submit
	// operational data but cannot manage users or open the supervisor
	// analytics screens.
	RoleOperator Role = "operator"

	// RoleSupervisor can do everything an operator can, plus user
	// management and supervisor analytics.
	RoleSupervisor Role = "supervisor"

	// RoleAdmin currently shares the supervisor capability set. Kept as a
	// distinct role because the backend issues it for the bootstrap account.
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw role string from the backend into a Role.
// Returns an error for anything outside the closed set.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleOperator, RoleSupervisor, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Label returns the pt-BR display name for the role.
func (r Role) Label() string {
	switch r {
	case RoleOperator:
		return "Operador"
	case RoleSupervisor:
		return "Supervisor"
	case RoleAdmin:
		return "Administrador"
	default:
		return string(r)
	}
}

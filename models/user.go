package models

import "time"

// User is the profile record the backend returns for an account. The client
// holds a read-only cached copy obtained via GET /api/auth/me; it is
// refreshed whenever the bearer token changes and never mutated locally.
type User struct {
	// ID is the backend identifier of the account.
	ID string `json:"id"`

	// Name is the display name shown in the sidebar and audit views.
	Name string `json:"name"`

	// Matricula is the badge/employee number used as the login username.
	Matricula string `json:"matricula"`

	// Sector is the plant sector the account belongs to
	// (e.g. "Tratamento de Caldo").
	Sector string `json:"sector,omitempty"`

	// Function is the job title of the employee.
	Function string `json:"function,omitempty"`

	// Role determines which screens and actions are available.
	Role Role `json:"role"`

	// Active indicates whether the account may log in. Deactivated accounts
	// are kept for audit history.
	Active bool `json:"active"`

	// CreatedAt is when the account was created on the backend.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Matricula string `json:"matricula"`
	Password  string `json:"password"`
}

// LoginResponse is the payload of a successful login: the opaque bearer
// token plus the authenticated profile.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name      string `json:"name"`
	Matricula string `json:"matricula"`
	Sector    string `json:"sector"`
	Function  string `json:"function"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
}

// UpdateUserRequest is the body of PATCH /api/users/{id}. Only non-nil
// fields are applied by the backend.
type UpdateUserRequest struct {
	Active *bool `json:"active,omitempty"`
}

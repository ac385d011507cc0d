package models

// APIError is the error envelope the backend returns for non-2xx responses.
// Detail carries the human-readable reason shown to the user.
type APIError struct {
	Detail string `json:"detail"`
}

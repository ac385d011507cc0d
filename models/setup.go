package models

// SetupStatus is the payload of GET /api/setup/status. NeedsSetup is true
// only while zero users exist on the backend (first-run bootstrap state).
type SetupStatus struct {
	NeedsSetup bool `json:"needs_setup"`
}

// BootstrapCredentials is returned by POST /api/setup/admin: the matricula
// and one-time password of the freshly created administrator, plus a warning
// asking the operator to change the password on first login.
type BootstrapCredentials struct {
	Matricula    string `json:"matricula"`
	SenhaInicial string `json:"senha_inicial"`
	Aviso        string `json:"aviso"`
}

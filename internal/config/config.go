package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// caldo-console application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Backend holds the address and timeout settings for the juice
	// treatment REST backend.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds local persistence settings, currently the session
	// token file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background polling jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the login screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds network and timeout settings for the outbound REST transport.
type Backend struct {
	// BaseURL is the root URL of the juice treatment backend, including
	// scheme (e.g. "http://localhost:8000"). All /api/ paths are resolved
	// against it.
	// Env: BACKEND_URL
	BaseURL string `env:"URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings for the console.
type Storage struct {
	// TokenFile is the path of the JSON file where the session token is
	// persisted between runs. Empty means the per-user default location.
	// Env: STORAGE_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Workers holds configuration for the console's background polling jobs.
type Workers struct {
	// NotificationInterval defines how often the unread notification
	// counter is refreshed from the backend.
	// Env: WORKERS_NOTIFICATION_INTERVAL
	NotificationInterval time.Duration `env:"NOTIFICATION_INTERVAL"`

	// DashboardInterval defines how often dashboard readings and
	// supervisor KPIs are refreshed while their screens are open.
	// Env: WORKERS_DASHBOARD_INTERVAL
	DashboardInterval time.Duration `env:"DASHBOARD_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

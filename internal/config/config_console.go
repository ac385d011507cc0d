package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetConsoleConfig] when a field was not provided by
// any configuration source.
const (
	DefaultBackendURL           = "http://localhost:8000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultNotificationInterval = 30 * time.Second
	DefaultDashboardInterval    = time.Minute
)

// ConsoleApp holds application-level console settings derived from the
// shared structured config.
type ConsoleApp struct {
	// Version is the application version shown on the login screen.
	Version string
}

// ConsoleBackend holds network settings used by the console transport layer.
type ConsoleBackend struct {
	// BaseURL is the root URL of the juice treatment backend.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ConsoleStorage groups local persistence settings for the console.
type ConsoleStorage struct {
	// TokenFile is the path of the persisted session token file.
	TokenFile string
}

// ConsoleWorkers contains background polling settings for the console.
type ConsoleWorkers struct {
	// NotificationInterval defines how often the unread counter is polled.
	NotificationInterval time.Duration
	// DashboardInterval defines how often open dashboards are refreshed.
	DashboardInterval time.Duration
}

// ConsoleConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	// App contains application-level console settings.
	App ConsoleApp
	// Backend contains transport address and timeout settings.
	Backend ConsoleBackend
	// Storage contains local persistence settings.
	Storage ConsoleStorage
	// Workers contains background polling settings.
	Workers ConsoleWorkers
}

// GetConsoleConfig builds and validates the console-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the console runtime, fills unset fields with defaults, and
// validates the resulting [ConsoleConfig].
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		App: ConsoleApp{
			Version: cfg.App.Version,
		},
		Backend: ConsoleBackend{
			BaseURL:        cfg.Backend.BaseURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ConsoleStorage{
			TokenFile: cfg.Storage.TokenFile,
		},
		Workers: ConsoleWorkers{
			NotificationInterval: cfg.Workers.NotificationInterval,
			DashboardInterval:    cfg.Workers.DashboardInterval,
		},
	}
	consoleCfg.applyDefaults()

	return consoleCfg, consoleCfg.validate()
}

// applyDefaults fills every unset field with its documented default so the
// console can start with zero configuration against a local backend.
func (cfg *ConsoleConfig) applyDefaults() {
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBackendURL
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.TokenFile == "" {
		cfg.Storage.TokenFile = defaultTokenFile()
	}
	if cfg.Workers.NotificationInterval == 0 {
		cfg.Workers.NotificationInterval = DefaultNotificationInterval
	}
	if cfg.Workers.DashboardInterval == 0 {
		cfg.Workers.DashboardInterval = DefaultDashboardInterval
	}
}

// defaultTokenFile returns the per-user token file path, falling back to the
// current directory when the user config dir cannot be resolved.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "caldo-console-token.json"
	}

	return filepath.Join(dir, "caldo-console", "token.json")
}

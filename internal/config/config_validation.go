package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config is permissive: missing fields are resolved by
// [ConsoleConfig.applyDefaults], so only values that can never be defaulted
// are rejected here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ConsoleConfig) validate() error {
	if cfg.Backend.BaseURL == "" || cfg.Backend.RequestTimeout == 0 {
		return ErrInvalidBackendConfigs
	}

	if !strings.HasPrefix(cfg.Backend.BaseURL, "http://") && !strings.HasPrefix(cfg.Backend.BaseURL, "https://") {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.TokenFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.NotificationInterval <= 0 || cfg.Workers.DashboardInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		Backend: ConsoleBackend{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ConsoleStorage{TokenFile: "/tmp/token.json"},
		Workers: ConsoleWorkers{
			NotificationInterval: 30 * time.Second,
			DashboardInterval:    time.Minute,
		},
	}
}

func TestConsoleConfigValidate_Valid(t *testing.T) {
	assert.NoError(t, validConsoleConfig().validate())
}

func TestConsoleConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ConsoleConfig)
		wantErr error
	}{
		{
			name:    "empty base URL",
			mutate:  func(cfg *ConsoleConfig) { cfg.Backend.BaseURL = "" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ConsoleConfig) { cfg.Backend.RequestTimeout = 0 },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "non-http scheme",
			mutate:  func(cfg *ConsoleConfig) { cfg.Backend.BaseURL = "ftp://mill.local" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "empty token file",
			mutate:  func(cfg *ConsoleConfig) { cfg.Storage.TokenFile = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero notification interval",
			mutate:  func(cfg *ConsoleConfig) { cfg.Workers.NotificationInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero dashboard interval",
			mutate:  func(cfg *ConsoleConfig) { cfg.Workers.DashboardInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConsoleConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &ConsoleConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBackendURL, cfg.Backend.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Backend.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.TokenFile)
	assert.Equal(t, DefaultNotificationInterval, cfg.Workers.NotificationInterval)
	assert.Equal(t, DefaultDashboardInterval, cfg.Workers.DashboardInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConsoleConfig()
	cfg.Workers.DashboardInterval = 5 * time.Minute
	cfg.applyDefaults()

	require.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.DashboardInterval)
	assert.Equal(t, "/tmp/token.json", cfg.Storage.TokenFile)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnvVars sets the given environment variables for the duration of the
// test and restores the previous values on cleanup.
func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"BACKEND_URL":             "http://mill.local:8000",
		"BACKEND_REQUEST_TIMEOUT": "30s",

		"STORAGE_TOKEN_FILE": "/var/lib/caldo/token.json",

		"WORKERS_NOTIFICATION_INTERVAL": "45s",
		"WORKERS_DASHBOARD_INTERVAL":    "2m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://mill.local:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "/var/lib/caldo/token.json", cfg.Storage.TokenFile)

	assert.Equal(t, 45*time.Second, cfg.Workers.NotificationInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.DashboardInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BACKEND_URL": "http://mill.local:8000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://mill.local:8000", cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.RequestTimeout)
	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Storage.TokenFile)
	assert.Zero(t, cfg.Workers.NotificationInterval)
	assert.Zero(t, cfg.Workers.DashboardInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BACKEND_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	// Arrange: make sure none of our variables leak in from the host.
	for _, k := range []string{
		"CONFIG",
		"APP_VERSION",
		"BACKEND_URL",
		"BACKEND_REQUEST_TIMEOUT",
		"STORAGE_TOKEN_FILE",
		"WORKERS_NOTIFICATION_INTERVAL",
		"WORKERS_DASHBOARD_INTERVAL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

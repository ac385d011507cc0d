package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.ParseDuration (string, e.g. "30s").
	jsonBody := `{
		"app": {
			"version": "1.2.3"
		},
		"backend": {
			"url": "http://mill.local:8000",
			"request_timeout": "30s"
		},
		"storage": {
			"token_file": "/var/lib/caldo/token.json"
		},
		"workers": {
			"notification_interval": "45s",
			"dashboard_interval": "2m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://mill.local:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "/var/lib/caldo/token.json", cfg.Storage.TokenFile)

	assert.Equal(t, 45*time.Second, cfg.Workers.NotificationInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.DashboardInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange: durations given as raw nanosecond numbers are accepted too.
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{"backend": {"request_timeout": 30000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"backend": {`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"backend": {"request_timeout": "soon"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}

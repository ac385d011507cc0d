package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	sentinel := errors.New("source failed")
	b.err = sentinel

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Nil(t, cfg)
}

// TestBuild_MergePriority verifies that earlier configs win over later ones
// for fields both have set (mergo keeps non-zero destination fields).
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Backend: Backend{BaseURL: "http://first:8000"},
		},
		&StructuredConfig{
			Backend: Backend{
				BaseURL:        "http://second:8000",
				RequestTimeout: 15 * time.Second,
			},
			Storage: Storage{TokenFile: "/tmp/token.json"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://first:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "/tmp/token.json", cfg.Storage.TokenFile)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that withEnv appends a config parsed
// from the environment.
func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"BACKEND_URL": "http://env:8000"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env:8000", b.configs[0].Backend.BaseURL)
}

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// previous source provided a JSON file path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFile verifies that a specified but unreadable JSON
// path records a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

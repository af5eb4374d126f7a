package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("simulation:\n  steps_per_update: 5\n  seed: 99\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Simulation.StepsPerUpdate)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, 60, cfg.Simulation.TicksPerSecond)
	assert.Equal(t, "Brickfall", cfg.Window.Title)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Scale = 0
	cfg.Simulation.StepsPerUpdate = -1
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "window.scale")
	assert.ErrorContains(t, err, "steps_per_update")
	assert.ErrorContains(t, err, "logging.level")
	assert.ErrorContains(t, err, "logging.format")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  ticks_per_second: 0\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

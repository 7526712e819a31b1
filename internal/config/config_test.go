package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://www.wienerlinien.at/ogd_realtime/monitor", cfg.WienerLinien.MonitorURL)
	assert.Equal(t, 7500*time.Millisecond, cfg.WienerLinienTimeout())
	assert.Equal(t, []string{"seestadt", "aspern"}, cfg.StadtKatalog.VagueTerms)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: local
logLevel: debug
wienerlinien:
  timeoutMS: 2500
stadtkatalog:
  blacklist:
    - spam1
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2500*time.Millisecond, cfg.WienerLinienTimeout())
	assert.Equal(t, []string{"spam1"}, cfg.StadtKatalog.Blacklist)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://www.wienerlinien.at/ogd_realtime/monitor", cfg.WienerLinien.MonitorURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("WIENERLINIEN_MONITOR", "https://example.test/monitor")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "https://example.test/monitor", cfg.WienerLinien.MonitorURL)
}

func TestValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
wienerlinien:
  monitorURL: "not a url"
`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidationRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("ENV", "staging")

	_, err := Load("")
	assert.Error(t, err)
}

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
	t.Setenv("PORT_STATUS_CONFIG", "")

	cfg := Load()

	assert.Equal(t, "https://www.navcen.uscg.gov/port-status", cfg.Source.BaseURL)
	assert.Equal(t, time.Second, cfg.Fetch.RateLimit.Std())
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Equal(t, []int{429, 500, 502, 503, 504}, cfg.Fetch.RetryableCodes)
	assert.Equal(t, "port_status.db", cfg.Database.Path)
	assert.NotEmpty(t, cfg.Coordinates.Zones["CHARLESTON"])
	assert.NotEmpty(t, cfg.Coordinates.SubPorts["CHARLESTON|BEAUFORT"])
}

func TestLoadMergesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
source:
  baseUrl: http://localhost:8080/port-status
fetch:
  maxRetries: 5
  rateLimit: 250ms
database:
  path: /tmp/test.db
coordinates:
  zones:
    TESTZONE:
      lat: 1.5
      lon: -2.5
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("PORT_STATUS_CONFIG", path)

	cfg := Load()

	assert.Equal(t, "http://localhost:8080/port-status", cfg.Source.BaseURL)
	assert.Equal(t, 5, cfg.Fetch.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.RateLimit.Std())
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)

	// file entries extend the built-in tables instead of replacing them
	assert.Equal(t, Coordinate{Lat: 1.5, Lon: -2.5}, cfg.Coordinates.Zones["TESTZONE"])
	assert.NotEmpty(t, cfg.Coordinates.Zones["MIAMI"])

	// untouched settings keep their defaults
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout.Std())
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: from-file.db\n"), 0o600))
	t.Setenv("PORT_STATUS_CONFIG", path)
	t.Setenv("PORT_STATUS_DB_PATH", "from-env.db")
	t.Setenv("PORT_STATUS_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

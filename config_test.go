package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 5*time.Second, cfg.AckDuration)
	assert.Equal(t, 5, cfg.ContactRateLimit)
	assert.Equal(t, time.Minute, cfg.ContactRateWindow)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  name: Example
  url: https://example.com/
server:
  addr: ":8080"
contact:
  ack_duration: 2s
  rate_limit: 3
metrics:
  enabled: false
`), 0o644))
	t.Setenv("FOLIO_SERVER_ADDR", ":9090")
	t.Setenv("FOLIO_LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Example", cfg.Name)
	assert.Equal(t, "https://example.com", cfg.URL, "trailing slash is trimmed")
	assert.Equal(t, ":9090", cfg.Addr, "environment overrides the file")
	assert.Equal(t, 2*time.Second, cfg.AckDuration)
	assert.Equal(t, 3, cfg.ContactRateLimit)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("FOLIO_LOG_LEVEL", "chatty")
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "chatty"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug": log.DEBUG,
		"info":  log.INFO,
		"":      log.INFO,
		"WARN":  log.WARN,
		"error": log.ERROR,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := SiteConfig{Name: "Mine", Addr: ":1234", ContactRateLimit: 9}
	cfg.setDefaults()
	assert.Equal(t, "Mine", cfg.Name)
	assert.Equal(t, ":1234", cfg.Addr)
	assert.Equal(t, 9, cfg.ContactRateLimit)
	assert.Equal(t, "en_GB", cfg.Locale)
}

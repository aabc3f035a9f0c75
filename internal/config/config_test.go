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

	assert.Equal(t, DefaultDataPath, cfg.Data.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Metrics.IsEnabled())
	assert.Equal(t, "evdash", cfg.Metrics.Namespace)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `data:
  path: "/srv/sessions.csv"
server:
  addr: ":9000"
  mode: "debug"
  shutdown_timeout_seconds: 10
cors:
  allowed_origins: ["http://localhost:3000"]
metrics:
  enabled: false
logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"data.path", cfg.Data.Path, "/srv/sessions.csv"},
		{"server.addr", cfg.Server.Addr, ":9000"},
		{"server.mode", cfg.Server.Mode, "debug"},
		{"server.shutdown", cfg.Server.ShutdownTimeout(), 10 * time.Second},
		{"cors", cfg.CORS.AllowedOrigins, []string{"http://localhost:3000"}},
		{"metrics.enabled", cfg.Metrics.IsEnabled(), false},
		{"metrics.namespace", cfg.Metrics.Namespace, "evdash"},
		{"logging.level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":{"path":"x.csv"}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x.csv", cfg.Data.Path)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EVDASH_DATA__PATH", "env.csv")
	t.Setenv("EVDASH_SERVER__SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("EVDASH_CORS__ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EVDASH_METRICS__ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.csv", cfg.Data.Path)
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Metrics.IsEnabled())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  mode: turbo\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "server")

	path = filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "logging")
}

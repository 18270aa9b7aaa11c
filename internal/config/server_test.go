package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultServerConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9191")

	cfg := DefaultServerConfig()
	assert.Equal(t, 9191, cfg.Port)
}

func TestDefaultServerConfig_IgnoresBadPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg := DefaultServerConfig()
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadServerConfig(t *testing.T) {
	configYAML := `
host: 0.0.0.0
port: 9090
allowed_origins:
  - "https://app.example.com"
rate_limit:
  requests_per_second: 5
  burst: 10
`
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadServerConfig_MissingFile(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadServerConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not an int"), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestServerConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ServerConfig)
		wantOK bool
	}{
		{"defaults", func(c *ServerConfig) {}, true},
		{"ephemeral_port", func(c *ServerConfig) { c.Port = 0 }, true},
		{"negative_port", func(c *ServerConfig) { c.Port = -1 }, false},
		{"port_too_large", func(c *ServerConfig) { c.Port = 70000 }, false},
		{"zero_request_timeout", func(c *ServerConfig) { c.RequestTimeout = 0 }, false},
		{"zero_rate", func(c *ServerConfig) { c.RateLimit.RequestsPerSecond = 0 }, false},
		{"zero_burst", func(c *ServerConfig) { c.RateLimit.Burst = 0 }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultServerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Host = "0.0.0.0"
	cfg.Port = 9000

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
}

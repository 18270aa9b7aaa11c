// Package config loads the HTTP server configuration from YAML with sane
// defaults for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RateLimit      RateLimit     `yaml:"rate_limit"`
}

// RateLimit holds the per-server request rate limiting settings.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// DefaultServerConfig returns the default configuration. HTTP_PORT in the
// environment overrides the port, matching the container convention.
func DefaultServerConfig() ServerConfig {
	port := 8080
	if portStr := os.Getenv("HTTP_PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	return ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
		RateLimit: RateLimit{
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// LoadServerConfig reads a YAML config file over the defaults. Fields absent
// from the file keep their default values.
func LoadServerConfig(configPath string) (ServerConfig, error) {
	config := DefaultServerConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse server config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate rejects configurations the server cannot bind or serve with.
func (c ServerConfig) Validate() error {
	// Port 0 binds an ephemeral port, used by tests.
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be in 0..65535", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request_timeout %v: must be positive", c.RequestTimeout)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("invalid requests_per_second %v: must be positive", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("invalid burst %d: must be at least 1", c.RateLimit.Burst)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

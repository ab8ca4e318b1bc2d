// Package config holds the service configuration and the layered loader that
// fills it from defaults, a YAML file, a .env file, environment variables and
// command-line overrides.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config contains process configuration.
type Config struct {
	// Host is the interface to bind, e.g. "0.0.0.0".
	Host string `koanf:"host"`

	// Port is the TCP port to bind.
	Port int `koanf:"port"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DocsEnabled toggles the docs UI at /docs. The OpenAPI document is always served.
	DocsEnabled bool `koanf:"docs_enabled"`

	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Host:              "0.0.0.0",
		Port:              3000,
		LogLevel:          "info",
		DocsEnabled:       true,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		MaxBodyBytes:      1 << 20,
	}
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

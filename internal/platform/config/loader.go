package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

const (
	envPrefix = "GREETER_"

	// EnvConfigFile names the YAML file to load, if any.
	EnvConfigFile = envPrefix + "CONFIG"

	// EnvDotenvFile overrides the .env path. Defaults to ".env" in the working directory.
	EnvDotenvFile = envPrefix + "ENV_FILE"

	defaultDotenvFile = ".env"

	// envPlainPort is the unprefixed port variable set by hosting platforms and older .env files.
	envPlainPort = "PORT"
)

// Load builds a Config by layering sources. Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file if GREETER_CONFIG is set
//  3. .env file, which only fills variables not already set in the environment
//  4. PORT
//  5. env (prefix GREETER_)
//  6. overrides, typically command-line flags, keyed by koanf tag
func Load(overrides map[string]any) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrLoadConfig, path, err)
		}
	}

	if port := os.Getenv(envPlainPort); port != "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, envPlainPort, err)
		}
	}

	// GREETER_LOG_LEVEL -> log_level. Underscores are kept to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("%w: override %s: %w", ErrLoadConfig, key, err)
		}
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotenv reads the .env file into the process environment. A missing file is not an error.
func loadDotenv() error {
	path := os.Getenv(EnvDotenvFile)
	if path == "" {
		path = defaultDotenvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: dotenv %s: %w", ErrLoadConfig, path, err)
	}
	return nil
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Host) == "":
		return fmt.Errorf("%w: host must not be empty", ErrInvalidConfig)
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("%w: port %d out of range 1-65535", ErrInvalidConfig, c.Port)
	case c.ReadTimeout <= 0, c.ReadHeaderTimeout <= 0, c.WriteTimeout <= 0, c.IdleTimeout <= 0:
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

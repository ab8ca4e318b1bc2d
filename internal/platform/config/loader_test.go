package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/janisto/huma-greeter/internal/platform/config"
)

var configEnvVars = []string{
	"GREETER_CONFIG",
	"GREETER_ENV_FILE",
	"GREETER_HOST",
	"GREETER_PORT",
	"GREETER_LOG_LEVEL",
	"GREETER_DOCS_ENABLED",
	"GREETER_READ_TIMEOUT",
	"GREETER_SHUTDOWN_TIMEOUT",
	"GREETER_MAX_BODY_BYTES",
	"PORT",
}

func clearConfigEnvVars() {
	for _, key := range configEnvVars {
		_ = os.Unsetenv(key)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(nil)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Host, convey.ShouldEqual, "0.0.0.0")
				convey.So(cfg.Port, convey.ShouldEqual, 3000)
				convey.So(cfg.Addr(), convey.ShouldEqual, "0.0.0.0:3000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.DocsEnabled, convey.ShouldBeTrue)
				convey.So(cfg.ReadTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.ReadHeaderTimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(cfg.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, int64(1<<20))
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GREETER_HOST", "127.0.0.1")
			_ = os.Setenv("GREETER_PORT", "8080")
			_ = os.Setenv("GREETER_LOG_LEVEL", "debug")
			_ = os.Setenv("GREETER_DOCS_ENABLED", "false")
			_ = os.Setenv("GREETER_READ_TIMEOUT", "3s")

			cfg, err := config.Load(nil)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr(), convey.ShouldEqual, "127.0.0.1:8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.DocsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.ReadTimeout, convey.ShouldEqual, 3*time.Second)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := writeTempFile(t, "greeter.yaml", `
host: "localhost"
port: 9090
shutdown_timeout: 30s
`)
			_ = os.Setenv("GREETER_CONFIG", path)

			cfg, err := config.Load(nil)

			convey.Convey("Then file values apply and missing fields keep their defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr(), convey.ShouldEqual, "localhost:9090")
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.WriteTimeout, convey.ShouldEqual, 10*time.Second)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := writeTempFile(t, "greeter.yaml", `
port: 9090
log_level: warn
`)
			_ = os.Setenv("GREETER_CONFIG", path)
			_ = os.Setenv("GREETER_PORT", "7070")

			cfg, err := config.Load(nil)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 7070)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			})
		})

		convey.Convey("When only PORT is set", func() {
			path := writeTempFile(t, "greeter.yaml", "port: 9090\n")
			_ = os.Setenv("GREETER_CONFIG", path)
			_ = os.Setenv("PORT", "4000")

			cfg, err := config.Load(nil)

			convey.Convey("Then it overrides the file and defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 4000)
			})
		})

		convey.Convey("When both PORT and GREETER_PORT are set", func() {
			_ = os.Setenv("PORT", "4000")
			_ = os.Setenv("GREETER_PORT", "4001")

			cfg, err := config.Load(nil)

			convey.Convey("Then GREETER_PORT wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 4001)
			})
		})

		convey.Convey("When PORT comes from a .env file", func() {
			path := writeTempFile(t, ".env", "PORT=4500\n")
			_ = os.Setenv("GREETER_ENV_FILE", path)

			cfg, err := config.Load(nil)

			convey.Convey("Then it is honoured", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 4500)
			})
		})

		convey.Convey("When overrides are supplied", func() {
			_ = os.Setenv("GREETER_PORT", "7070")

			cfg, err := config.Load(map[string]any{"port": 6060, "host": "::1"})

			convey.Convey("Then they win over every other source", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 6060)
				convey.So(cfg.Addr(), convey.ShouldEqual, "[::1]:6060")
			})
		})

		convey.Convey("When a .env file is present", func() {
			path := writeTempFile(t, ".env", "GREETER_PORT=5050\nGREETER_LOG_LEVEL=error\n")
			_ = os.Setenv("GREETER_ENV_FILE", path)
			_ = os.Setenv("GREETER_LOG_LEVEL", "debug")

			cfg, err := config.Load(nil)

			convey.Convey("Then it fills unset variables without overriding the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 5050)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When the .env file does not exist", func() {
			_ = os.Setenv("GREETER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

			cfg, err := config.Load(nil)

			convey.Convey("Then it is ignored", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 3000)
			})
		})

		convey.Convey("When loading config with an invalid YAML file", func() {
			path := writeTempFile(t, "broken.yaml", `invalid: yaml: content: [`)
			_ = os.Setenv("GREETER_CONFIG", path)

			cfg, err := config.Load(nil)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("GREETER_CONFIG", "/non/existent/greeter.yaml")

			cfg, err := config.Load(nil)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the port is out of range", func() {
			_ = os.Setenv("GREETER_PORT", "70000")

			cfg, err := config.Load(nil)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "port 70000")
			})
		})

		convey.Convey("When the log level is unknown", func() {
			_ = os.Setenv("GREETER_LOG_LEVEL", "chatty")

			cfg, err := config.Load(nil)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "chatty")
			})
		})

		convey.Convey("When the host is empty", func() {
			_ = os.Setenv("GREETER_HOST", "")

			cfg, err := config.Load(nil)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "host must not be empty")
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("Then it validates", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When a timeout is zero", func() {
			cfg.WriteTimeout = 0

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the shutdown timeout is negative", func() {
			cfg.ShutdownTimeout = -time.Second

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate().Error(), convey.ShouldContainSubstring, "shutdown_timeout")
			})
		})

		convey.Convey("When the body limit is zero", func() {
			cfg.MaxBodyBytes = 0

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate().Error(), convey.ShouldContainSubstring, "max_body_bytes")
			})
		})
	})
}

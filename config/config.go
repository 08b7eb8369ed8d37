// Package config loads the router configuration and route manifest from a
// YAML file and WAYPOINT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/waypoint/router"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "WAYPOINT_"

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration of a waypoint process.
type Config struct {
	Router router.Config `yaml:"router" env:"ROUTER"`
	Logger LoggerConfig  `yaml:"logger" env:"LOGGER"`
	Server ServerConfig  `yaml:"server" env:"SERVER"`
	Routes []Route       `yaml:"routes"`
}

// LoggerConfig configures the zap logger built by NewLogger.
type LoggerConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Encoding is "json" or "console". Empty picks console in development
	// mode and json otherwise.
	Encoding string `yaml:"encoding" env:"ENCODING"`
}

// ServerConfig configures the HTTP server used by routectl serve.
type ServerConfig struct {
	Address         string        `yaml:"address" env:"ADDRESS"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	// H2C enables HTTP/2 over cleartext.
	H2C bool `yaml:"h2c" env:"H2C"`
	// Hostname is sent in the X-Server-Hostname header. Empty uses the
	// machine hostname.
	Hostname string `yaml:"hostname" env:"HOSTNAME"`
}

// DefaultConfig returns the configuration used for every field not set by
// the file or the environment.
func DefaultConfig() *Config {
	return &Config{
		Router: router.DefaultConfig(),
		Logger: LoggerConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load reads the configuration: defaults, then the YAML file at path when
// path is not empty, then WAYPOINT_* environment variables. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := loadEnv(cfg, EnvPrefix); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
// Environment variables are not consulted.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration and returns every problem found, each
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	switch c.Router.Mode {
	case "development", "production", "testing":
	default:
		invalid("router.mode must be development, production or testing, got %q", c.Router.Mode)
	}

	if p := c.Router.PathPrefix; p != "" && !strings.HasPrefix(p, "/") {
		invalid("router.path.prefix must start with /, got %q", p)
	}

	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		invalid("logger.level: %v", err)
	}

	switch c.Logger.Encoding {
	case "", "json", "console":
	default:
		invalid("logger.encoding must be json or console, got %q", c.Logger.Encoding)
	}

	if c.Server.Address == "" {
		invalid("server.address is required")
	}

	names := make(map[string]int, len(c.Routes))
	for i, rt := range c.Routes {
		if err := rt.validate(); err != nil {
			invalid("routes[%d]: %v", i, err)
		}
		if rt.Name == "" {
			continue
		}
		if j, ok := names[rt.Name]; ok {
			invalid("routes[%d]: name %q already used by routes[%d]", i, rt.Name, j)
			continue
		}
		names[rt.Name] = i
	}

	return errors.Join(errs...)
}

// RouterOptions returns the options that apply the configuration to
// router.New.
func (c *Config) RouterOptions(opts ...router.Option) []router.Option {
	return append([]router.Option{router.WithConfig(c.Router)}, opts...)
}

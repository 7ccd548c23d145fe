package config

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environment type for environment
type Environment string

const (
	// Development is the development environment
	Development Environment = "dev"
	// Production is the production environment
	Production Environment = "prod"
)

// Config is the configuration for the application
type Config struct {
	Env     Environment   `yaml:"env" env:"ENV" env-default:"dev"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

// SessionConfig is the configuration for the interactive session
type SessionConfig struct {
	Prompt           string `yaml:"prompt" env:"KV_PROMPT" env-default:"kv>"`
	Quiet            bool   `yaml:"quiet" env:"KV_QUIET" env-default:"false"`
	MaxLineSize      string `yaml:"max_line_size" env:"KV_MAX_LINE_SIZE" env-default:"64KB"`
	MaxLineSizeBytes uint64 `yaml:"-"` // calculated field
}

// LoggingConfig is the configuration for the logging
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Output string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
}

// NewConfig creates a new instance of Config.
// An empty path skips the yaml file and reads environment variables only.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		// Load configuration from yaml file, environment variables override it
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	size, err := parseSize(cfg.Session.MaxLineSize)
	if err != nil {
		return nil, fmt.Errorf("invalid max_line_size: %w", err)
	}
	if size == 0 {
		return nil, fmt.Errorf("invalid max_line_size: must be greater than zero")
	}
	cfg.Session.MaxLineSizeBytes = size

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case Development, Production:
	default:
		return fmt.Errorf("unknown environment: %s", c.Env)
	}

	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("unknown logging output: %s", c.Logging.Output)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("unknown logging level: %s", c.Logging.Level)
	}

	return nil
}

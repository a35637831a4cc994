// Package config loads the vcover runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid reports a configuration value outside its accepted range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved runtime configuration shared by every vcover command.
type Config struct {
	// Addr is the HTTP listen address for `vcover serve`.
	Addr string `env:"VCOVER_ADDR" envDefault:":8080"`
	// SearchLimit is the largest graph order solved exhaustively.
	SearchLimit int `env:"VCOVER_SEARCH_LIMIT" envDefault:"20"`
	// StrictGraph rejects edges whose endpoints fall outside [0, n).
	StrictGraph bool `env:"VCOVER_STRICT_GRAPH" envDefault:"true"`
	// LogLevel is a logrus level name.
	LogLevel string `env:"VCOVER_LOG_LEVEL" envDefault:"info"`
	// LogFormat is "text" or "json".
	LogFormat string `env:"VCOVER_LOG_FORMAT" envDefault:"text"`
	// HistoryPath is the sqlite file for recorded attempts; empty disables history.
	HistoryPath string `env:"VCOVER_HISTORY_PATH"`
	// BatchWorkers bounds concurrent evaluations in `vcover batch`.
	BatchWorkers int `env:"VCOVER_BATCH_WORKERS" envDefault:"4"`
	// GinMode is passed to gin.SetMode.
	GinMode string `env:"VCOVER_GIN_MODE" envDefault:"release"`
}

// Load parses the process environment into a Config and validates it.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses vars instead of the process environment when vars is non-nil.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	var err error
	if vars != nil {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: vars})
	} else {
		err = env.Parse(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations that env tags cannot express.
func (c Config) Validate() error {
	if c.SearchLimit < 0 {
		return fmt.Errorf("VCOVER_SEARCH_LIMIT=%d must be >= 0: %w", c.SearchLimit, ErrInvalid)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("VCOVER_BATCH_WORKERS=%d must be >= 1: %w", c.BatchWorkers, ErrInvalid)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("VCOVER_LOG_FORMAT=%q must be text or json: %w", c.LogFormat, ErrInvalid)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("VCOVER_GIN_MODE=%q must be debug, release or test: %w", c.GinMode, ErrInvalid)
	}

	return nil
}

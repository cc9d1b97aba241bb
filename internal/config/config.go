// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Neither: values come from the environment and the env-default tags.
//
// Unlike a server, the walk-through can run with no file at all, so a
// missing path is not an error. A path that points nowhere still is.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// Fetch is embedded so its fields are reachable as cfg.Fetch.Delay.
	Fetch `yaml:"fetch"`
}

// Fetch holds the knobs for the simulated network call.
type Fetch struct {
	// Delay is how long a fetch "waits on the network" before settling.
	Delay time.Duration `yaml:"delay" env:"FETCH_DELAY" env-default:"2s" validate:"min=0"`

	// SuccessRate is the probability in [0,1] that a fetch resolves.
	SuccessRate float64 `yaml:"success_rate" env:"FETCH_SUCCESS_RATE" env-default:"0.5" validate:"min=0,max=1"`

	// Seed makes the coin flip reproducible. Zero means "seed from the clock".
	Seed int64 `yaml:"seed" env:"FETCH_SEED" env-default:"0"`
}

// PathEnv is the environment variable consulted before the --config flag.
const PathEnv = "CONFIG_PATH"

// ResolvePath picks the config path: CONFIG_PATH wins over the flag value.
func ResolvePath(flagValue string) string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return flagValue
}

// Load reads and validates the configuration.
//
// With an empty path only the environment (and defaults) are read.
// With a path, the file must exist; cleanenv then reads the YAML and
// lets any env:"..." tagged variables override it.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Verify the file exists before trying to read it, so the message
		// names the path rather than a cryptic "open: no such file".
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}

	return &cfg, nil
}

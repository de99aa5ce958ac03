package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the TOML config file.
// Command-line flags take precedence over file values, which take
// precedence over built-in defaults.
//
// Example ~/.config/skykeep/config.toml:
//
//	[solver]
//	max-steps = 5000000
//
//	[sample]
//	count = 1000
//	workers = 8
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Sample SampleConfig `toml:"sample"`
}

// SolverConfig tunes the search engine.
type SolverConfig struct {
	// MaxSteps caps state expansions per evaluation; 0 means unlimited.
	MaxSteps int `toml:"max-steps"`
}

// SampleConfig sets defaults for the sample command.
type SampleConfig struct {
	Count   int `toml:"count"`
	Workers int `toml:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Sample: SampleConfig{
			Count:   100,
			Workers: runtime.NumCPU(),
		},
	}
}

// LoadConfig reads the TOML config at path, applying file values on top
// of the defaults. A missing or empty path yields the defaults; a
// malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Sample.Count < 1 {
		cfg.Sample.Count = 1
	}
	if cfg.Sample.Workers < 1 {
		cfg.Sample.Workers = 1
	}
	if cfg.Solver.MaxSteps < 0 {
		cfg.Solver.MaxSteps = 0
	}
	return cfg, nil
}

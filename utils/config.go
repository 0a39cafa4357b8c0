package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size           int     `json:"size"`
	IntervalMS     int     `json:"interval_ms"`
	MinIntervalMS  int     `json:"min_interval_ms"`
	MaxIntervalMS  int     `json:"max_interval_ms"`
	IntervalStepMS int     `json:"interval_step_ms"`
	Pattern        string  `json:"pattern"`
	RandomDensity  float64 `json:"random_density"`
	Seed           uint64  `json:"seed"`
	CellPixels     int     `json:"cell_pixels"`
	AutoStart      bool    `json:"auto_start"`
	LogFile        string  `json:"log_file"`
	LogLevel       string  `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           25,
		IntervalMS:     1000,
		MinIntervalMS:  20,
		MaxIntervalMS:  2000,
		IntervalStepMS: 100,
		Pattern:        "empty",
		RandomDensity:  0.15,
		Seed:           42,
		CellPixels:     20, // 500px canvas over 25 cells
		AutoStart:      false,
		LogFile:        "",
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "cells per side of the square grid")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between automatic steps")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(patternChoices(), ", "))
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "share of living cells for the random pattern")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.CellPixels, "cell-pixels", c.CellPixels, "pixels per cell in the windowed build")
	fs.BoolVar(&c.AutoStart, "start", c.AutoStart, "start stepping immediately")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file (discarded when empty)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

func patternChoices() []string {
	return append([]string{model.PatternEmpty, model.PatternRandom}, model.PatternNames()...)
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.MinIntervalMS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] min_interval_ms must be positive, got %d", c.MinIntervalMS)
	case c.MinIntervalMS > c.MaxIntervalMS:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] min_interval_ms %d exceeds max_interval_ms %d",
			c.MinIntervalMS, c.MaxIntervalMS)
	case c.IntervalStepMS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] interval_step_ms must be positive, got %d", c.IntervalStepMS)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.CellPixels <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell_pixels must be positive, got %d", c.CellPixels)
	}
	return nil
}

// Interval returns the configured step interval
func (c Config) Interval() time.Duration { return time.Duration(c.IntervalMS) * time.Millisecond }

// MinInterval returns the fastest allowed step interval
func (c Config) MinInterval() time.Duration { return time.Duration(c.MinIntervalMS) * time.Millisecond }

// MaxInterval returns the slowest allowed step interval
func (c Config) MaxInterval() time.Duration { return time.Duration(c.MaxIntervalMS) * time.Millisecond }

// IntervalStep returns how much a single faster/slower adjustment changes the interval
func (c Config) IntervalStep() time.Duration {
	return time.Duration(c.IntervalStepMS) * time.Millisecond
}

// ParseArgs resolves the configuration for a command: defaults, then the JSON file
// named by -config, then any flags given explicitly. Only the default config file
// may be missing; a file named on the command line must exist.
// The returned bool reports whether the file was loaded.
func ParseArgs(name string, args []string) (Config, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "config.json", "path to a JSON config file")
	flagConfig := DefaultConfig()
	flagConfig.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return flagConfig, false, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	config, err := LoadConfig(*path)
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return flagConfig, false, flagConfig.Validate()
	}
	if err != nil {
		return config, false, err
	}

	overrides := flag.NewFlagSet(name, flag.ContinueOnError)
	config.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if overrides.Lookup(f.Name) != nil {
			_ = overrides.Set(f.Name, f.Value.String())
		}
	})
	return config, true, config.Validate()
}

package utils

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate(): %v", err)
	}
	if cfg.Interval() != time.Second || cfg.MinInterval() != 20*time.Millisecond || cfg.MaxInterval() != 2*time.Second {
		t.Fatalf("unexpected default intervals: %v [%v, %v]", cfg.Interval(), cfg.MinInterval(), cfg.MaxInterval())
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"size": 40, "pattern": "glider", "interval_ms": 250}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Size != 40 || cfg.Pattern != "glider" || cfg.IntervalMS != 250 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.MaxIntervalMS != DefaultConfig().MaxIntervalMS {
		t.Fatalf("missing keys should keep defaults, got max_interval_ms=%d", cfg.MaxIntervalMS)
	}

	if _, err = LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err = os.WriteFile(bad, []byte(`{"size": `), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadConfig(bad); err == nil {
		t.Fatal("LoadConfig(bad json) returned no error")
	}
}

func TestBindOverridesValues(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "10", "-pattern", "random", "-seed", "9", "-start"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 10 || cfg.Pattern != "random" || cfg.Seed != 9 || !cfg.AutoStart {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "zero size", modify: func(c *Config) { c.Size = 0 }},
		{name: "negative size", modify: func(c *Config) { c.Size = -3 }},
		{name: "zero min interval", modify: func(c *Config) { c.MinIntervalMS = 0 }},
		{name: "min above max", modify: func(c *Config) { c.MinIntervalMS = 3000 }},
		{name: "zero interval step", modify: func(c *Config) { c.IntervalStepMS = 0 }},
		{name: "density above one", modify: func(c *Config) { c.RandomDensity = 1.5 }},
		{name: "negative density", modify: func(c *Config) { c.RandomDensity = -0.1 }},
		{name: "zero cell pixels", modify: func(c *Config) { c.CellPixels = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	t.Parallel()
	s := NewStats()
	s.Update(1, 10, 500*time.Millisecond)
	if s.GenerationsPerSecond != 2 || s.AveragePopulation != 10 || s.Population != 10 {
		t.Fatalf("first update: %+v", s)
	}
	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 || s.TotalGenerations != 2 || s.GenerationsPerSecond != 2 {
		t.Fatalf("second update: %+v", s)
	}
	s.Reset()
	if s.TotalGenerations != 0 || s.AveragePopulation != 0 || s.StartTime.IsZero() {
		t.Fatalf("after Reset: %+v", s)
	}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	if err := os.WriteFile(path, []byte(`{"size": 30, "pattern": "toad", "seed": 5}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, loaded, err := ParseArgs("gol", []string{"-config", path, "-pattern", "glider"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !loaded {
		t.Fatal("config file was not loaded")
	}
	if cfg.Size != 30 || cfg.Seed != 5 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Pattern != "glider" {
		t.Fatalf("flag did not override file: pattern = %q", cfg.Pattern)
	}

	// the default config.json is optional; this package directory has none
	cfg, loaded, err = ParseArgs("gol", []string{"-size", "8"})
	if err != nil {
		t.Fatalf("ParseArgs without file: %v", err)
	}
	if loaded || cfg.Size != 8 || cfg.Pattern != DefaultConfig().Pattern {
		t.Fatalf("unexpected config without file: loaded=%v %+v", loaded, cfg)
	}

	// a file named on the command line has to exist
	missing := filepath.Join(dir, "typo.json")
	if _, loaded, err = ParseArgs("gol", []string{"-config", missing}); !errors.Is(err, os.ErrNotExist) || loaded {
		t.Fatalf("ParseArgs(-config %s) = loaded %v, error %v; want os.ErrNotExist", missing, loaded, err)
	}

	if _, _, err = ParseArgs("gol", []string{"-size", "0"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("ParseArgs(-size 0) error = %v, want ErrInvalidConfig", err)
	}
}

func TestPatternFlagListsShapes(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	cfg.Bind(fs)
	usage := fs.Lookup("pattern").Usage
	for _, name := range patternChoices() {
		if !strings.Contains(usage, name) {
			t.Fatalf("-pattern usage %q does not mention %q", usage, name)
		}
	}
	if !strings.Contains(usage, "glider") || !strings.Contains(usage, "random") {
		t.Fatalf("-pattern usage %q is missing built-in choices", usage)
	}
}

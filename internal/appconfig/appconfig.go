// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/tachos/internal/benchmark"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"

	defaultReps       = 20000
	defaultNumber     = 3
	defaultWarmup     = 5
	defaultSeed       = 42
	defaultConfidence = 0.95
)

// defaultPercentiles are the percentiles reported when the config omits them.
var defaultPercentiles = []float64{50, 95, 99}

// Config represents the top-level application configuration. Flags merged
// through viper override file values, which override defaults.
type Config struct {
	Reps        int       `json:"reps"`
	Number      int       `json:"number"`
	Warmup      int       `json:"warmup"`
	Seed        int64     `json:"seed"`
	Confidence  float64   `json:"confidence,omitempty"`
	Percentiles []float64 `json:"percentiles,omitempty"`
	File1       string    `json:"file1,omitempty"`
	File2       string    `json:"file2,omitempty"`
	ExportJSON  string    `json:"exportJson,omitempty"`
	NoColor     bool      `json:"noColor"`
	Debug       bool      `json:"debug"`
	LogFile     string    `json:"logFile,omitempty"`
	ConfigPath  string    `json:"-"`
}

// Default returns the configuration used when no file or flags are given.
// The defaults mirror the recommended settings for sub-millisecond snippets.
func Default() Config {
	return Config{
		Reps:        defaultReps,
		Number:      defaultNumber,
		Warmup:      defaultWarmup,
		Seed:        defaultSeed,
		Confidence:  defaultConfidence,
		Percentiles: append([]float64(nil), defaultPercentiles...),
	}
}

// ConfidenceLevel returns the configured confidence level, applying the
// default when unset.
func (c Config) ConfidenceLevel() float64 {
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return defaultConfidence
	}
	return c.Confidence
}

// PercentileList returns the configured percentiles, applying the default
// when unset.
func (c Config) PercentileList() []float64 {
	if len(c.Percentiles) == 0 {
		return append([]float64(nil), defaultPercentiles...)
	}
	return c.Percentiles
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "tachos.log"
}

// Validate checks the measurement parameters. Every violation is a
// configuration error surfaced before any timing starts.
func (c Config) Validate() error {
	if c.Reps < 1 {
		return &benchmark.ConfigError{Field: "reps", Reason: "must be >= 1"}
	}
	if c.Number < 1 {
		return &benchmark.ConfigError{Field: "number", Reason: "executions per repetition must be >= 1"}
	}
	if c.Warmup < 0 {
		return &benchmark.ConfigError{Field: "warmup", Reason: "must be >= 0"}
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return &benchmark.ConfigError{Field: "confidence", Reason: "must be in (0, 1)"}
	}
	for _, p := range c.Percentiles {
		if p < 0 || p > 100 {
			return &benchmark.ConfigError{Field: "percentiles", Reason: fmt.Sprintf("%g is outside [0, 100]", p)}
		}
	}
	return nil
}

// Load reads the application configuration from the specified path,
// validating it against the embedded schema before unmarshaling over the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := ValidateRaw(raw); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	config := Default()
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

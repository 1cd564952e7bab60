package appconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/tachos/internal/benchmark"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write test config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"reps": 500,
		"number": 2,
		"warmup": 10,
		"seed": 7,
		"confidence": 0.99,
		"percentiles": [50, 90],
		"logFile": "custom.log"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Reps != 500 || cfg.Number != 2 || cfg.Warmup != 10 || cfg.Seed != 7 {
		t.Fatalf("config values not applied: %+v", cfg)
	}
	if cfg.Confidence != 0.99 {
		t.Fatalf("confidence = %g, want 0.99", cfg.Confidence)
	}
	if len(cfg.Percentiles) != 2 || cfg.Percentiles[0] != 50 || cfg.Percentiles[1] != 90 {
		t.Fatalf("percentiles = %v, want [50 90]", cfg.Percentiles)
	}
	if cfg.LogFilePath() != "custom.log" {
		t.Fatalf("log file = %q, want custom.log", cfg.LogFilePath())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("config path not recorded: %q", cfg.ConfigPath)
	}
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, `{"reps": 100}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Reps != 100 {
		t.Fatalf("reps = %d, want 100", cfg.Reps)
	}
	want := Default()
	if cfg.Number != want.Number || cfg.Warmup != want.Warmup || cfg.Seed != want.Seed {
		t.Fatalf("defaults not applied for omitted fields: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
	if !strings.Contains(err.Error(), "no configuration file found") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"unknown key":        `{"repz": 100}`,
		"zero reps":          `{"reps": 0}`,
		"confidence too big": `{"confidence": 1.5}`,
		"confidence of one":  `{"confidence": 1}`,
		"percentile too big": `{"percentiles": [150]}`,
		"wrong type":         `{"reps": "lots"}`,
		"malformed json":     `{"reps": `,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Fatalf("expected %s to be rejected", name)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Config)
		field  string
	}{
		"zero reps":          {mutate: func(c *Config) { c.Reps = 0 }, field: "reps"},
		"zero number":        {mutate: func(c *Config) { c.Number = 0 }, field: "number"},
		"negative warmup":    {mutate: func(c *Config) { c.Warmup = -1 }, field: "warmup"},
		"confidence too big": {mutate: func(c *Config) { c.Confidence = 1 }, field: "confidence"},
		"bad percentile":     {mutate: func(c *Config) { c.Percentiles = []float64{-5} }, field: "percentiles"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			var cfgErr *benchmark.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, cfgErr.Field)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestAccessorDefaults(t *testing.T) {
	var zero Config
	if got := zero.ConfidenceLevel(); got != 0.95 {
		t.Fatalf("default confidence = %g, want 0.95", got)
	}
	if got := zero.PercentileList(); len(got) != 3 || got[0] != 50 || got[1] != 95 || got[2] != 99 {
		t.Fatalf("default percentiles = %v, want [50 95 99]", got)
	}
	if got := zero.LogFilePath(); got != "tachos.log" {
		t.Fatalf("default log file = %q, want tachos.log", got)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.File1 = "fast.sh"

	ShowConfig(&buf, "config/config.json", &cfg)
	out := buf.String()
	for _, want := range []string{"config/config.json", "Repetitions:     20000", "Seed:            42", "fast.sh"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "", nil)
	if !strings.Contains(buf.String(), "No config file loaded") {
		t.Fatalf("expected defaults notice, got:\n%s", buf.String())
	}
}

package tachos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestRootCommandRegistration(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"compare", "show"} {
		if !names[want] {
			t.Fatalf("expected %q to be registered on the root command", want)
		}
	}
}

func TestShowGroupsConfigCommand(t *testing.T) {
	for _, c := range showCmd.Commands() {
		if c.Name() == "config" {
			return
		}
	}
	t.Fatalf("expected the config subcommand under show")
}

func TestPersistentFlagDefaults(t *testing.T) {
	cases := map[string]string{
		"config":  "config/config.json",
		"debug":   "false",
		"noColor": "false",
		"logFile": "",
	}

	for name, want := range cases {
		flag := rootCmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Fatalf("missing persistent flag %q", name)
		}
		if flag.DefValue != want {
			t.Fatalf("flag %q default = %q, want %q", name, flag.DefValue, want)
		}
	}
}

func TestCompareFlagDefaults(t *testing.T) {
	cases := map[string]string{
		"file1":       "",
		"file2":       "",
		"reps":        "20000",
		"number":      "3",
		"warmup":      "5",
		"seed":        "42",
		"confidence":  "0.95",
		"exportJson":  "",
		"percentiles": "[50.000000,95.000000,99.000000]",
	}

	for name, want := range cases {
		flag := compareCmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("missing compare flag %q", name)
		}
		if flag.DefValue != want {
			t.Fatalf("flag %q default = %q, want %q", name, flag.DefValue, want)
		}
	}
}

func TestCompareFlagShorthands(t *testing.T) {
	if got := compareCmd.Flags().ShorthandLookup("r"); got == nil || got.Name != "reps" {
		t.Fatalf("expected -r to map to reps")
	}
	if got := compareCmd.Flags().ShorthandLookup("n"); got == nil || got.Name != "number" {
		t.Fatalf("expected -n to map to number")
	}
}

func TestEnsureConfigLoadedValidatesSchema(t *testing.T) {
	t.Cleanup(viper.Reset)

	cases := map[string]struct {
		content string
		wantErr bool
	}{
		"valid file":         {content: `{"reps": 100, "seed": 7}`, wantErr: false},
		"typo'd key":         {content: `{"repz": 100}`, wantErr: true},
		"out-of-range value": {content: `{"confidence": 1.5}`, wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			viper.Reset()
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("could not write test config: %v", err)
			}
			viper.SetConfigFile(path)

			err := ensureConfigLoaded()
			if tc.wantErr && err == nil {
				t.Fatalf("expected %s to be rejected", name)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantErr && viper.GetInt("reps") != 100 {
				t.Fatalf("config value not loaded, reps = %d", viper.GetInt("reps"))
			}
		})
	}
}

func TestEnsureConfigLoadedToleratesMissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	viper.SetConfigFile(filepath.Join(t.TempDir(), "missing.json"))

	if err := ensureConfigLoaded(); err != nil {
		t.Fatalf("a missing config file must fall back to defaults, got %v", err)
	}
	if got := viper.GetInt("reps"); got != 20000 {
		t.Fatalf("default reps = %d, want 20000", got)
	}
}

func TestRunCompareRejectsMissingConfig(t *testing.T) {
	if err := runCompare(nil); err == nil {
		t.Fatalf("expected an error when configuration is not initialized")
	}
}

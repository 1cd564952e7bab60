// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := Default()
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Repetitions:     %d\n", effective.Reps)
	fmt.Fprintf(out, "  Executions/rep:  %d\n", effective.Number)
	fmt.Fprintf(out, "  Warm-up runs:    %d\n", effective.Warmup)
	fmt.Fprintf(out, "  Seed:            %d\n", effective.Seed)
	fmt.Fprintf(out, "  Confidence:      %g\n", effective.ConfidenceLevel())
	fmt.Fprintf(out, "  Percentiles:     %v\n", effective.PercentileList())
	if effective.File1 != "" {
		fmt.Fprintf(out, "  Snippet 1 file:  %s\n", effective.File1)
	}
	if effective.File2 != "" {
		fmt.Fprintf(out, "  Snippet 2 file:  %s\n", effective.File2)
	}
	if effective.ExportJSON != "" {
		fmt.Fprintf(out, "  Export JSON:     %s\n", effective.ExportJSON)
	}
	fmt.Fprintf(out, "  No Color:        %v\n", effective.NoColor)
	fmt.Fprintf(out, "  Debug:           %v\n", effective.Debug)
	fmt.Fprintf(out, "  Log file:        %s\n", effective.LogFilePath())
}

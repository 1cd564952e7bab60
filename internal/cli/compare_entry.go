// internal/cli/compare_entry.go
package tachos

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/k0kubun/pp"
	"github.com/schollz/progressbar/v3"

	"github.com/mwiater/tachos/internal/appconfig"
	"github.com/mwiater/tachos/internal/export"
	"github.com/mwiater/tachos/internal/logging"
	"github.com/mwiater/tachos/internal/render"
	"github.com/mwiater/tachos/internal/runner"
	"github.com/mwiater/tachos/internal/snippet"
)

// runCompare wires the loaded snippets through the measurement runner and
// hands the finished record to the renderer and exporter. An interrupt is
// honored at repetition boundaries and still yields a partial record.
func runCompare(cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Debug {
		pp.Println(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := runner.New(*cfg)
	first := snippet.Load(r.Ctrl.Rand(), 1, cfg.File1)
	second := snippet.Load(r.Ctrl.Rand(), 2, cfg.File2)

	render.Intro(first.Source, second.Source, cfg.Reps, cfg.Number, cfg.Warmup, cfg.Seed, cfg.NoColor)
	logging.LogEvent("comparison started: reps=%d number=%d warmup=%d seed=%d", cfg.Reps, cfg.Number, cfg.Warmup, cfg.Seed)

	bars := make(map[string]*progressbar.ProgressBar, 2)
	r.OnRep = func(label string, rep int, elapsed time.Duration) {
		bar, ok := bars[label]
		if !ok {
			bar = render.NewBar(label, cfg.Reps)
			bars[label] = bar
		}
		_ = bar.Add(1)
	}

	rec, err := r.Run(ctx, first, second)
	for _, bar := range bars {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	render.Results(rec, cfg.NoColor)

	path, err := export.Write(rec)
	if err != nil {
		return err
	}
	fmt.Printf("\nVerbose log written to %s\n", path)

	if cfg.ExportJSON != "" {
		if err := export.WriteTo(rec, cfg.ExportJSON); err != nil {
			return err
		}
	}
	logging.LogEvent("comparison finished: partial=%v", rec.Partial)
	return nil
}

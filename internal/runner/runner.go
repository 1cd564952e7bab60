// internal/runner/runner.go
// Package runner drives one full comparison: determinism setup, warm-up,
// sampling, statistical reduction, verdict, and record assembly.
package runner

import (
	"context"
	"log"
	"time"

	"github.com/mwiater/tachos/internal/appconfig"
	"github.com/mwiater/tachos/internal/benchmark"
	"github.com/mwiater/tachos/internal/compare"
	"github.com/mwiater/tachos/internal/record"
	"github.com/mwiater/tachos/internal/snippet"
	"github.com/mwiater/tachos/internal/stats"
)

// Runner executes the measurement pipeline strictly sequentially on one
// goroutine; concurrent repetitions would corrupt the thing being measured.
type Runner struct {
	Config appconfig.Config
	Ctrl   *benchmark.Controller
	Prober record.Prober

	// OnRep is invoked once per completed repetition, outside the timed
	// window. Fire-and-forget.
	OnRep func(label string, rep int, elapsed time.Duration)
}

// New builds a runner with a fresh determinism controller and the default
// system prober.
func New(cfg appconfig.Config) *Runner {
	return &Runner{
		Config: cfg,
		Ctrl:   benchmark.NewController(cfg.Seed),
		Prober: record.GopsutilProber{},
	}
}

// Run compares the two loaded snippets and returns the assembled run
// record. Configuration and environment problems surface before any timed
// execution; a cancellation at a repetition boundary yields a record
// flagged partial rather than an error.
func (r *Runner) Run(ctx context.Context, first, second snippet.Loaded) (record.Record, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return record.Record{}, err
	}
	if err := benchmark.ProbeEnvironment(); err != nil {
		return record.Record{}, err
	}
	if r.Ctrl == nil {
		r.Ctrl = benchmark.NewController(cfg.Seed)
	}
	prober := r.Prober
	if prober == nil {
		prober = record.NoopProber{}
	}

	totalStart := time.Now()

	firstSet, err := r.measure(ctx, first)
	if err != nil {
		return record.Record{}, err
	}
	secondSet, err := r.measure(ctx, second)
	if err != nil {
		return record.Record{}, err
	}

	firstSummary, err := summarize(firstSet, cfg)
	if err != nil {
		return record.Record{}, err
	}
	secondSummary, err := summarize(secondSet, cfg)
	if err != nil {
		return record.Record{}, err
	}

	var verdict *compare.Verdict
	if firstSummary != nil && secondSummary != nil {
		v, err := compare.Compare(*firstSummary, *secondSummary)
		if err != nil {
			return record.Record{}, err
		}
		verdict = &v
	}

	rec := record.Build(
		record.Parameters{
			Reps:        cfg.Reps,
			Number:      cfg.Number,
			Warmup:      cfg.Warmup,
			Seed:        cfg.Seed,
			Confidence:  cfg.ConfidenceLevel(),
			Percentiles: cfg.PercentileList(),
		},
		record.FromSampleSet(firstSet, first.Source, firstSummary),
		record.FromSampleSet(secondSet, second.Source, secondSummary),
		verdict,
		record.CollectEnv(),
		prober.Probe(),
		time.Since(totalStart),
	)
	return rec, nil
}

// measure runs warm-up and sampling for one snippet. A context already
// canceled at this boundary skips the snippet entirely, warm-up included.
func (r *Runner) measure(ctx context.Context, loaded snippet.Loaded) (benchmark.SampleSet, error) {
	cfg := r.Config
	if ctx != nil && ctx.Err() != nil {
		log.Printf("%s skipped: run was interrupted", loaded.Label)
		return benchmark.SampleSet{Label: loaded.Label, Partial: true}, nil
	}

	log.Printf("Timing %s (%d repetitions of %d executions, %d warm-up runs)...",
		loaded.Label, cfg.Reps, cfg.Number, cfg.Warmup)

	if err := benchmark.Warmup(loaded.Label, loaded.Unit, cfg.Warmup); err != nil {
		return benchmark.SampleSet{}, err
	}

	sampler := &benchmark.Sampler{Ctrl: r.Ctrl, Seed: cfg.Seed}
	if r.OnRep != nil {
		label := loaded.Label
		sampler.OnRep = func(rep int, elapsed time.Duration) {
			r.OnRep(label, rep, elapsed)
		}
	}

	set, err := sampler.Sample(ctx, loaded.Label, loaded.Unit, cfg.Reps, cfg.Number)
	if err != nil {
		return benchmark.SampleSet{}, err
	}
	if set.Partial {
		log.Printf("%s interrupted after %d of %d repetitions", loaded.Label, set.Count(), cfg.Reps)
	} else {
		log.Printf("%s complete: %d samples collected", loaded.Label, set.Count())
	}
	return set, nil
}

// summarize reduces a sample set, tolerating empty partial sets from a
// cancellation before the first repetition.
func summarize(set benchmark.SampleSet, cfg appconfig.Config) (*stats.Summary, error) {
	if set.Count() == 0 {
		return nil, nil
	}
	summary, err := stats.Summarize(set, cfg.ConfidenceLevel(), cfg.PercentileList())
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

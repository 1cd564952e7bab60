// internal/benchmark/sampler.go
package benchmark

import (
	"context"
	"time"
)

// Unit is one loaded, zero-argument unit of work. It must be callable
// repeatedly without cleanup between calls; non-idempotent units produce
// unreliable timings (documented limitation, not enforced).
type Unit func() error

// Sample is one timed repetition: the wall-clock time elapsed while the
// unit ran Execs times back-to-back.
type Sample struct {
	Elapsed time.Duration `json:"elapsed"`
	Execs   int           `json:"execs"`
}

// PerExecSeconds returns the per-execution duration this sample represents.
func (s Sample) PerExecSeconds() float64 {
	return s.Elapsed.Seconds() / float64(s.Execs)
}

// SampleSet is the ordered sequence of samples collected for one snippet.
// Immutable once collection finishes. Partial marks a set cut short by a
// cancellation request at a repetition boundary.
type SampleSet struct {
	Label   string   `json:"label"`
	Samples []Sample `json:"samples"`
	Partial bool     `json:"partial"`
}

// Count returns the number of collected samples.
func (s SampleSet) Count() int { return len(s.Samples) }

// Progress is invoked once per completed repetition, strictly outside the
// timed window. Fire-and-forget from the sampler's point of view.
type Progress func(rep int, elapsed time.Duration)

// Sampler runs a unit of work for a configured number of timed repetitions,
// reseeding the determinism controller before each one.
type Sampler struct {
	Ctrl  *Controller
	Seed  int64
	OnRep Progress
}

// Sample collects reps samples of execs back-to-back calls each. Around
// every timed block the garbage collector is suspended and process output
// silenced; both are restored on all exit paths. A unit failure aborts
// immediately with its repetition and call indices. Cancellation is honored
// only at repetition boundaries: the completed prefix is returned flagged
// partial, never as a complete set.
func (s *Sampler) Sample(ctx context.Context, label string, unit Unit, reps, execs int) (SampleSet, error) {
	if reps < 1 {
		return SampleSet{}, &ConfigError{Field: "reps", Reason: "must be >= 1"}
	}
	if execs < 1 {
		return SampleSet{}, &ConfigError{Field: "number", Reason: "executions per repetition must be >= 1"}
	}

	set := SampleSet{Label: label, Samples: make([]Sample, 0, reps)}
	for rep := 1; rep <= reps; rep++ {
		if ctx != nil && ctx.Err() != nil {
			set.Partial = true
			return set, nil
		}

		elapsed, err := s.runRepetition(label, unit, rep, execs)
		if err != nil {
			return SampleSet{}, err
		}
		set.Samples = append(set.Samples, Sample{Elapsed: elapsed, Execs: execs})

		if s.OnRep != nil {
			s.OnRep(rep, elapsed)
		}
	}
	return set, nil
}

// runRepetition times one block of execs consecutive calls. The guard
// restores run in deferred order so GC and stdio come back even when the
// unit fails mid-block.
func (s *Sampler) runRepetition(label string, unit Unit, rep, execs int) (time.Duration, error) {
	s.Ctrl.Reset(s.Seed)

	restoreGC := gcOff()
	defer restoreGC()
	restoreOut, err := silence()
	if err != nil {
		return 0, &EnvError{Facility: "output suppression", Err: err}
	}
	defer restoreOut()

	start := time.Now()
	for call := 1; call <= execs; call++ {
		if err := unit(); err != nil {
			return 0, &SnippetError{Snippet: label, Stage: StageTimed, Repetition: rep, Call: call, Err: err}
		}
	}
	return time.Since(start), nil
}

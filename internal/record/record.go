// internal/record/record.go
// Package record assembles the complete, immutable output of one
// comparison run for downstream rendering and export.
package record

import (
	"os"
	"runtime"
	"time"

	"github.com/mwiater/tachos/internal/benchmark"
	"github.com/mwiater/tachos/internal/compare"
	"github.com/mwiater/tachos/internal/stats"
)

// Parameters captures the measurement configuration a record was produced
// under, so exported results are reproducible.
type Parameters struct {
	Reps        int       `json:"reps"`
	Number      int       `json:"number"`
	Warmup      int       `json:"warmup"`
	Seed        int64     `json:"seed"`
	Confidence  float64   `json:"confidence"`
	Percentiles []float64 `json:"percentiles"`
}

// EnvInfo describes the runtime environment a record was produced in.
type EnvInfo struct {
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Hostname  string `json:"hostname"`
	NumCPU    int    `json:"numCpu"`
}

// SnippetResult bundles one snippet's identity, raw samples, and summary.
// Partial marks a sample set cut short by cancellation.
type SnippetResult struct {
	Label   string             `json:"label"`
	Source  string             `json:"source"`
	Partial bool               `json:"partial"`
	Samples []benchmark.Sample `json:"samples"`
	Summary *stats.Summary     `json:"summary,omitempty"`
}

// FromSampleSet builds a SnippetResult from a finalized sample set.
func FromSampleSet(set benchmark.SampleSet, source string, summary *stats.Summary) SnippetResult {
	return SnippetResult{
		Label:   set.Label,
		Source:  source,
		Partial: set.Partial,
		Samples: set.Samples,
		Summary: summary,
	}
}

// Record is the complete output of one comparison invocation. Handed by
// value to collaborators; the core retains no reference after handoff.
type Record struct {
	Timestamp     time.Time        `json:"timestamp"`
	Partial       bool             `json:"partial"`
	Parameters    Parameters       `json:"parameters"`
	First         SnippetResult    `json:"snippet1"`
	Second        SnippetResult    `json:"snippet2"`
	Verdict       *compare.Verdict `json:"verdict,omitempty"`
	Env           EnvInfo          `json:"env"`
	SystemLoad    SystemLoad       `json:"systemLoad"`
	TotalDuration time.Duration    `json:"totalDurationNs"`
}

// CollectEnv gathers basic environment metadata.
func CollectEnv() EnvInfo {
	hostname, _ := os.Hostname()
	return EnvInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Hostname:  hostname,
		NumCPU:    runtime.NumCPU(),
	}
}

// Build assembles a run record. Pure assembly, no I/O.
func Build(params Parameters, first, second SnippetResult, verdict *compare.Verdict, env EnvInfo, load SystemLoad, total time.Duration) Record {
	partial := first.Partial || second.Partial || verdict == nil
	for _, r := range []SnippetResult{first, second} {
		if r.Summary == nil {
			partial = true
		}
	}
	return Record{
		Timestamp:     time.Now(),
		Partial:       partial,
		Parameters:    params,
		First:         first,
		Second:        second,
		Verdict:       verdict,
		Env:           env,
		SystemLoad:    load,
		TotalDuration: total,
	}
}

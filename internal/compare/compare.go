// internal/compare/compare.go
// Package compare derives a relative-performance verdict from two summaries.
package compare

import (
	"math"

	"github.com/mwiater/tachos/internal/benchmark"
	"github.com/mwiater/tachos/internal/stats"
)

// Verdict is the relative-performance conclusion for one comparison run.
// Meaningful is the policy signal: the apparent difference is only treated
// as real when the two confidence intervals do not intersect.
type Verdict struct {
	Faster        string  `json:"faster"`
	Slower        string  `json:"slower"`
	SpeedRatio    float64 `json:"speedRatio"`
	PercentFaster float64 `json:"percentFaster"`
	Overlap       bool    `json:"ciOverlap"`
	Meaningful    bool    `json:"meaningfulDifference"`
}

// Compare derives the verdict from two finalized summaries. Pure
// computation; the only failure mode is a malformed summary with zero
// samples, which is a contract violation by the caller.
func Compare(a, b stats.Summary) (Verdict, error) {
	if a.Count == 0 || b.Count == 0 {
		return Verdict{}, &benchmark.ConfigError{Field: "summary", Reason: "cannot compare a summary with zero samples"}
	}

	faster, slower := a, b
	if b.Mean < a.Mean {
		faster, slower = b, a
	}

	ratio := 1.0
	percent := 0.0
	if faster.Mean > 0 {
		ratio = slower.Mean / faster.Mean
	} else if slower.Mean > 0 {
		ratio = math.Inf(1)
	}
	if slower.Mean > 0 {
		percent = (1 - faster.Mean/slower.Mean) * 100
	}

	overlap := a.CILower <= b.CIUpper && b.CILower <= a.CIUpper
	return Verdict{
		Faster:        faster.Label,
		Slower:        slower.Label,
		SpeedRatio:    ratio,
		PercentFaster: percent,
		Overlap:       overlap,
		Meaningful:    !overlap,
	}, nil
}

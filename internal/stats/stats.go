// internal/stats/stats.go
// Package stats reduces raw duration samples into summary statistics.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/mwiater/tachos/internal/benchmark"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalApproxThreshold is the sample count at and above which the normal
// approximation replaces the Student-t quantile for confidence intervals.
const normalApproxThreshold = 30

// Percentile pairs a requested percentile with its interpolated value in
// seconds per execution.
type Percentile struct {
	P     float64 `json:"p"`
	Value float64 `json:"value"`
}

// Summary is the read-only statistical view over one snippet's sample set.
// All values are per-execution durations in seconds, normalizing sets with
// different executions-per-repetition counts.
type Summary struct {
	Label       string       `json:"label"`
	Count       int          `json:"count"`
	Mean        float64      `json:"mean"`
	Stdev       float64      `json:"stdev"`
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Percentiles []Percentile `json:"percentiles"`
	Confidence  float64      `json:"confidence"`
	CILower     float64      `json:"ciLower"`
	CIUpper     float64      `json:"ciUpper"`
}

// PercentileValue looks up a computed percentile. The second return is
// false when p was not part of the configuration.
func (s Summary) PercentileValue(p float64) (float64, bool) {
	for _, pct := range s.Percentiles {
		if pct.P == p {
			return pct.Value, true
		}
	}
	return 0, false
}

// Summarize reduces a finalized sample set into a Summary. It is pure:
// identical input and configuration produce bit-identical results.
func Summarize(set benchmark.SampleSet, confidence float64, percentiles []float64) (Summary, error) {
	if set.Count() == 0 {
		return Summary{}, &benchmark.ConfigError{Field: "samples", Reason: "sample set is empty"}
	}
	if confidence <= 0 || confidence >= 1 {
		return Summary{}, &benchmark.ConfigError{Field: "confidence", Reason: "must be in (0, 1)"}
	}
	for _, p := range percentiles {
		if p < 0 || p > 100 {
			return Summary{}, &benchmark.ConfigError{Field: "percentiles", Reason: fmt.Sprintf("%g is outside [0, 100]", p)}
		}
	}

	series := make([]float64, set.Count())
	for i, sample := range set.Samples {
		series[i] = sample.PerExecSeconds()
	}
	sort.Float64s(series)

	n := len(series)
	summary := Summary{
		Label:      set.Label,
		Count:      n,
		Mean:       stat.Mean(series, nil),
		Min:        series[0],
		Max:        series[n-1],
		Confidence: confidence,
	}
	if n > 1 {
		summary.Stdev = stat.StdDev(series, nil)
	}

	summary.Percentiles = make([]Percentile, 0, len(percentiles))
	for _, p := range percentiles {
		summary.Percentiles = append(summary.Percentiles, Percentile{
			P:     p,
			Value: percentile(series, p),
		})
	}

	summary.CILower, summary.CIUpper = confidenceInterval(summary.Mean, summary.Stdev, n, confidence)
	return summary, nil
}

// percentile interpolates linearly between the closest ranks of the sorted
// series, so p50 of an odd-length series is its middle element.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// confidenceInterval computes the interval around the mean using the
// Student-t distribution, switching to the normal approximation for large
// counts. A single sample collapses the interval to the mean.
func confidenceInterval(mean, stdev float64, n int, confidence float64) (float64, float64) {
	if n < 2 {
		return mean, mean
	}
	q := 0.5 + confidence/2
	var crit float64
	if n >= normalApproxThreshold {
		crit = distuv.UnitNormal.Quantile(q)
	} else {
		crit = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(q)
	}
	margin := crit * stdev / math.Sqrt(float64(n))
	return mean - margin, mean + margin
}

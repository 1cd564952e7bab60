package render

import (
	"testing"

	"github.com/mwiater/tachos/internal/record"
	"github.com/mwiater/tachos/internal/stats"
)

func TestStatsHeaderTracksPercentiles(t *testing.T) {
	rec := record.Record{
		Parameters: record.Parameters{Confidence: 0.95, Percentiles: []float64{50, 95, 99}},
	}

	header := statsHeader(rec)
	want := []any{"Snippet", "Mean", "Stdev", "Min", "Max", "P50", "P95", "P99", "95% CI"}
	if len(header) != len(want) {
		t.Fatalf("header has %d columns, want %d: %v", len(header), len(want), header)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("header[%d] = %v, want %v", i, header[i], want[i])
		}
	}
}

func TestStatsRowMatchesHeaderWidth(t *testing.T) {
	rec := record.Record{
		Parameters: record.Parameters{Confidence: 0.99, Percentiles: []float64{50, 90}},
	}
	summary := stats.Summary{
		Label: "Snippet 1",
		Count: 100,
		Mean:  0.0012,
		Stdev: 0.0001,
		Min:   0.001,
		Max:   0.002,
		Percentiles: []stats.Percentile{
			{P: 50, Value: 0.0011},
			{P: 90, Value: 0.0018},
		},
		CILower: 0.00118,
		CIUpper: 0.00122,
	}

	header := statsHeader(rec)
	row := statsRow("Snippet 1", summary)
	if len(row) != len(header) {
		t.Fatalf("row has %d cells for a %d-column header", len(row), len(header))
	}
	if row[0] != "Snippet 1" {
		t.Fatalf("first cell = %v, want the snippet label", row[0])
	}
}

func TestNewBar(t *testing.T) {
	bar := NewBar("Snippet 1", 100)
	if bar == nil {
		t.Fatalf("expected a progress bar")
	}
	if err := bar.Add(1); err != nil {
		t.Fatalf("could not advance the bar: %v", err)
	}
	_ = bar.Finish()
}

// internal/render/render.go
// Package render presents finished run records on the terminal.
package render

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mwiater/tachos/internal/record"
	"github.com/mwiater/tachos/internal/stats"
	"github.com/mwiater/tachos/internal/util"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)

	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

// Results renders the comparison record: per-snippet statistics, the
// relative-speed conclusion, and the winner banner when the difference is
// statistically meaningful.
func Results(rec record.Record, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	fmt.Println()
	printHeader("Results", noColor)

	header := statsHeader(rec)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)
	for _, res := range []record.SnippetResult{rec.First, rec.Second} {
		if res.Summary == nil {
			empty := []any{res.Label}
			for range header[1:] {
				empty = append(empty, "-")
			}
			_ = table.Append(empty...)
			continue
		}
		_ = table.Append(statsRow(res.Label, *res.Summary)...)
	}
	_ = table.Render()

	if rec.Partial {
		_, _ = yellow.Println("\nRun was interrupted: results cover completed repetitions only.")
	}

	printVerdict(rec, noColor)

	_, _ = bold.Printf("\nTotal test time: %s\n", util.FormatDuration(rec.TotalDuration))
}

// statsHeader builds the table header for the configured percentiles.
func statsHeader(rec record.Record) []any {
	header := []any{"Snippet", "Mean", "Stdev", "Min", "Max"}
	for _, p := range rec.Parameters.Percentiles {
		header = append(header, fmt.Sprintf("P%g", p))
	}
	header = append(header, fmt.Sprintf("%.0f%% CI", rec.Parameters.Confidence*100))
	return header
}

func statsRow(label string, s stats.Summary) []any {
	row := []any{
		label,
		util.FormatSeconds(s.Mean),
		util.FormatSeconds(s.Stdev),
		util.FormatSeconds(s.Min),
		util.FormatSeconds(s.Max),
	}
	for _, pct := range s.Percentiles {
		row = append(row, util.FormatSeconds(pct.Value))
	}
	row = append(row, fmt.Sprintf("%s – %s", util.FormatSeconds(s.CILower), util.FormatSeconds(s.CIUpper)))
	return row
}

func printVerdict(rec record.Record, noColor bool) {
	v := rec.Verdict
	if v == nil {
		_, _ = yellow.Println("\nNot enough completed repetitions for a verdict.")
		return
	}

	fmt.Println()
	if !v.Meaningful {
		_, _ = yellow.Printf("No statistically significant difference: confidence intervals overlap (ratio %.2fx).\n", v.SpeedRatio)
		return
	}

	_, _ = green.Printf("%s is %.2fx faster than %s (%.2f%% faster).\n", v.Faster, v.SpeedRatio, v.Slower, v.PercentFaster)
	fmt.Println()
	banner := fmt.Sprintf("Winner: %s", v.Faster)
	if noColor {
		fmt.Println(banner)
		return
	}
	fmt.Println(winnerStyle.Render(banner))
}

// Intro prints the run header and loaded-snippet sources before
// measurement begins.
func Intro(first, second string, reps, number, warmup int, seed int64, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	printHeader("Starting Code Comparison", noColor)
	fmt.Printf("Repetitions: %s, Executions per repetition: %d, Warm-up runs: %d\n",
		util.FormatCount(reps), number, warmup)
	fmt.Printf("Random seed fixed for determinism: %d\n", seed)
	fmt.Printf("Source for Snippet 1: %s\n", util.TruncateRunes(first, 100))
	fmt.Printf("Source for Snippet 2: %s\n", util.TruncateRunes(second, 100))
	fmt.Println()
}

func printHeader(title string, noColor bool) {
	if noColor {
		fmt.Printf("--- %s ---\n", title)
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("--- %s ---", title)))
}

// internal/render/progress.go
package render

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// NewBar builds the per-snippet repetition progress bar. The sampler
// advances it only at repetition boundaries, never inside a timed window.
func NewBar(label string, reps int) *progressbar.ProgressBar {
	return progressbar.NewOptions(reps,
		progressbar.OptionSetDescription(fmt.Sprintf("Timing %s", label)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

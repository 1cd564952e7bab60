// internal/cli/compare.go
package tachos

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/tachos/internal/appconfig"
)

// compareCmd measures and compares the two configured snippets.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Measure and compare the execution speed of two snippets",
	Long: `Times both snippets under controlled conditions (fixed seed, warm-up,
GC suspended and output silenced inside timed windows) and reports which
one is faster and whether the difference is statistically meaningful.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(currentConfig)
	},
}

func init() {
	d := appconfig.Default()

	compareCmd.Flags().String("file1", "", "path to the first snippet file (builtin default when omitted)")
	compareCmd.Flags().String("file2", "", "path to the second snippet file (builtin default when omitted)")
	compareCmd.Flags().IntP("reps", "r", d.Reps, "repetitions for timing each snippet")
	compareCmd.Flags().IntP("number", "n", d.Number, "executions of the snippet within each repetition")
	compareCmd.Flags().Int("warmup", d.Warmup, "warm-up runs before timing")
	compareCmd.Flags().Int64("seed", d.Seed, "random seed re-applied before every repetition")
	compareCmd.Flags().Float64("confidence", d.Confidence, "confidence level for intervals, in (0, 1)")
	compareCmd.Flags().Float64Slice("percentiles", d.Percentiles, "percentiles to report, each in [0, 100]")
	compareCmd.Flags().String("exportJson", "", "export detailed results to this JSON file")

	_ = viper.BindPFlag("file1", compareCmd.Flags().Lookup("file1"))
	_ = viper.BindPFlag("file2", compareCmd.Flags().Lookup("file2"))
	_ = viper.BindPFlag("reps", compareCmd.Flags().Lookup("reps"))
	_ = viper.BindPFlag("number", compareCmd.Flags().Lookup("number"))
	_ = viper.BindPFlag("warmup", compareCmd.Flags().Lookup("warmup"))
	_ = viper.BindPFlag("seed", compareCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("confidence", compareCmd.Flags().Lookup("confidence"))
	_ = viper.BindPFlag("percentiles", compareCmd.Flags().Lookup("percentiles"))
	_ = viper.BindPFlag("exportJson", compareCmd.Flags().Lookup("exportJson"))

	rootCmd.AddCommand(compareCmd)
}

// internal/benchmark/warmup.go
package benchmark

// Warmup executes the unit exactly count times, discarding results and
// recording nothing, to amortize one-time costs before measurement. Output
// is silenced the same way as during timed execution. A failure aborts the
// snippet's benchmark; partial warm-up is never treated as success.
func Warmup(label string, unit Unit, count int) error {
	if count < 0 {
		return &ConfigError{Field: "warmup", Reason: "must be >= 0"}
	}
	if count == 0 {
		return nil
	}
	restore, err := silence()
	if err != nil {
		return &EnvError{Facility: "output suppression", Err: err}
	}
	defer restore()

	for call := 1; call <= count; call++ {
		if err := unit(); err != nil {
			return &SnippetError{Snippet: label, Stage: StageWarmup, Call: call, Err: err}
		}
	}
	return nil
}

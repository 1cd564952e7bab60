// internal/benchmark/guards.go
package benchmark

import (
	"runtime/debug"
)

// gcOff suspends the garbage collector and returns a restore function.
// The restore must run on every exit path of a timed block.
func gcOff() func() {
	prev := debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(prev)
	}
}

// ProbeEnvironment verifies the output-suppression facility before any
// measurement starts, so the failure mode is a setup error rather than a
// mid-run surprise.
func ProbeEnvironment() error {
	restore, err := silence()
	if err != nil {
		return &EnvError{Facility: "output suppression", Err: err}
	}
	restore()
	return nil
}

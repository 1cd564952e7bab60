// internal/benchmark/errors.go
package benchmark

import "fmt"

// Stage identifies the phase a snippet was executing in when it failed.
type Stage string

const (
	StageWarmup Stage = "warmup"
	StageTimed  Stage = "timed"
)

// ConfigError reports an invalid measurement parameter. It is always
// surfaced before any timed execution starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SnippetError reports a unit-of-work failure during warm-up or timed
// execution, tagged with the repetition and call indices for diagnostics.
// Repetition is 0 for warm-up failures.
type SnippetError struct {
	Snippet    string
	Stage      Stage
	Repetition int
	Call       int
	Err        error
}

func (e *SnippetError) Error() string {
	if e.Stage == StageWarmup {
		return fmt.Sprintf("%s failed during warm-up call %d: %v", e.Snippet, e.Call, e.Err)
	}
	return fmt.Sprintf("%s failed during repetition %d, call %d: %v", e.Snippet, e.Repetition, e.Call, e.Err)
}

func (e *SnippetError) Unwrap() error { return e.Err }

// EnvError reports that a measurement facility (output suppression, the
// deterministic seed source) is unusable. Fatal at startup.
type EnvError struct {
	Facility string
	Err      error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment facility %s unavailable: %v", e.Facility, e.Err)
}

func (e *EnvError) Unwrap() error { return e.Err }

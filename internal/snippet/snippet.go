// internal/snippet/snippet.go
// Package snippet resolves snippet sources into loaded, callable units of
// work for the measurement core.
package snippet

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/mwiater/tachos/internal/benchmark"
)

// Loaded describes one resolved snippet: its display label, a source
// description for the run record, and the callable unit itself.
type Loaded struct {
	Label  string
	Source string
	Unit   benchmark.Unit
}

// DefaultSleep is the first builtin snippet: a short sleep whose duration
// draws from the controlled random stream.
func DefaultSleep(rng *rand.Rand) benchmark.Unit {
	return func() error {
		time.Sleep(time.Duration(rng.Float64() * 5 * float64(time.Millisecond)))
		return nil
	}
}

// DefaultBusy is the second builtin snippet: an accumulation loop whose
// iteration count draws from the controlled random stream.
func DefaultBusy(rng *rand.Rand) benchmark.Unit {
	return func() error {
		iterations := 50 + rng.Intn(101)
		result := 0.0
		for i := 0; i < iterations; i++ {
			result += float64(i) * rng.Float64()
		}
		_ = result
		return nil
	}
}

// FromFile wraps the contents of path as a unit that runs the snippet
// through the platform shell on every call, discarding its output. The
// shell exit status becomes the unit's error.
func FromFile(path string) (benchmark.Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	script := string(content)
	shell, flag := platformShell()

	return func() error {
		cmd := exec.Command(shell, flag, script)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		return cmd.Run()
	}, nil
}

func platformShell() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "/bin/sh", "-c"
}

// Load resolves a snippet for the given slot (1 or 2). An empty path
// yields the slot's builtin default; an unreadable path falls back to the
// default with a warning on the returned source description.
func Load(rng *rand.Rand, slot int, path string) Loaded {
	label := fmt.Sprintf("Snippet %d", slot)
	defaults := map[int]struct {
		name string
		unit benchmark.Unit
	}{
		1: {"Default Snippet 1 (randomized sleep)", DefaultSleep(rng)},
		2: {"Default Snippet 2 (randomized accumulation loop)", DefaultBusy(rng)},
	}
	fallback := defaults[slot]

	if path == "" {
		return Loaded{Label: label, Source: fallback.name, Unit: fallback.unit}
	}

	unit, err := FromFile(path)
	if err != nil {
		return Loaded{
			Label:  label,
			Source: fmt.Sprintf("%s (fallback, could not load %q)", fallback.name, path),
			Unit:   fallback.unit,
		}
	}
	return Loaded{Label: label, Source: fmt.Sprintf("File (%q)", path), Unit: unit}
}

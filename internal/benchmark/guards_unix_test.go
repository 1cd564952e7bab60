//go:build !windows

package benchmark

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSilenceCoversWritersHoldingTheOriginalFile(t *testing.T) {
	capture, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatalf("could not create capture file: %v", err)
	}
	prev := os.Stdout
	os.Stdout = capture
	t.Cleanup(func() {
		os.Stdout = prev
		_ = capture.Close()
	})

	// Captures the *os.File before silencing, like the default log logger
	// captures os.Stderr at package init.
	logger := log.New(os.Stdout, "", 0)

	restore, err := silence()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fmt.Println("leaked via fmt")
	logger.Println("leaked via captured writer")
	restore()

	fmt.Fprintln(os.Stdout, "after restore")

	raw, err := os.ReadFile(capture.Name())
	if err != nil {
		t.Fatalf("could not read capture file: %v", err)
	}
	if strings.Contains(string(raw), "leaked") {
		t.Fatalf("timed-window output reached the terminal: %q", raw)
	}
	if !strings.Contains(string(raw), "after restore") {
		t.Fatalf("output not restored after the timed window: %q", raw)
	}
}

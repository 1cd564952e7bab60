//go:build windows

// internal/benchmark/guards_windows.go
package benchmark

import "os"

// silence swaps the process stdout and stderr for the null device so
// snippet output cannot distort timing or pollute the terminal. Windows has
// no dup2 in the syscall surface this package targets, so writers that
// captured the original *os.File earlier are not covered here. It returns a
// restore function that must run on every exit path.
func silence() (func(), error) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	prevOut, prevErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = devnull, devnull
	return func() {
		os.Stdout, os.Stderr = prevOut, prevErr
		_ = devnull.Close()
	}, nil
}

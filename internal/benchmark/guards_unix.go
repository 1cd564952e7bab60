//go:build !windows

// internal/benchmark/guards_unix.go
package benchmark

import (
	"os"

	"golang.org/x/sys/unix"
)

// silence redirects the stdout and stderr file descriptors to the null
// device so snippet output cannot distort timing or pollute the terminal.
// Working at the descriptor level also covers writers that captured the
// original *os.File earlier, like the default log logger. It returns a
// restore function that must run on every exit path.
func silence() (func(), error) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	outFd := int(os.Stdout.Fd())
	errFd := int(os.Stderr.Fd())

	savedOut, err := unix.Dup(outFd)
	if err != nil {
		_ = devnull.Close()
		return nil, err
	}
	savedErr, err := unix.Dup(errFd)
	if err != nil {
		_ = unix.Close(savedOut)
		_ = devnull.Close()
		return nil, err
	}

	if err := unix.Dup2(int(devnull.Fd()), outFd); err != nil {
		_ = unix.Close(savedOut)
		_ = unix.Close(savedErr)
		_ = devnull.Close()
		return nil, err
	}
	if err := unix.Dup2(int(devnull.Fd()), errFd); err != nil {
		_ = unix.Dup2(savedOut, outFd)
		_ = unix.Close(savedOut)
		_ = unix.Close(savedErr)
		_ = devnull.Close()
		return nil, err
	}

	return func() {
		_ = unix.Dup2(savedOut, outFd)
		_ = unix.Dup2(savedErr, errFd)
		_ = unix.Close(savedOut)
		_ = unix.Close(savedErr)
		_ = devnull.Close()
	}, nil
}

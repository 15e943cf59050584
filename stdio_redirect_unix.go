//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// redirectOutput appends everything the process writes to fd 1 and fd 2 to
// the file at path, including runtime panics that bypass os.Stdout. A held
// framebuffer preview covers the console, so this is the only place such
// output survives.
func redirectOutput(path string) error {
	if path == "" {
		return nil
	}
	log, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "open stdio log %s", path)
	}
	defer log.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(log.Fd()), int(std.Fd())); err != nil {
			return errors.Wrap(errors.ErrCodeWrite, err, "point %s at %s", std.Name(), path)
		}
	}
	return nil
}

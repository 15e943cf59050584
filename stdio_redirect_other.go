//go:build !unix

package main

import (
	"os"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// redirectOutput swaps os.Stdout and os.Stderr for path. Unlike the Unix
// version this does not capture runtime output such as panics.
func redirectOutput(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "open stdio log %s", path)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}

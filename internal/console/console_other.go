//go:build !linux

package console

import "github.com/rook-computer/cardmaker/internal/errors"

// Graphics is only available on Linux.
func Graphics() (Restore, error) {
	return nil, errors.New(errors.ErrCodeFramebuffer, "console graphics mode is linux-only")
}

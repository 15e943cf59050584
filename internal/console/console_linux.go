//go:build linux

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Candidate terminals: the controlling tty first, then the active VT.
var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

// Graphics hides the cursor and puts the active console in KD_GRAPHICS mode.
// The returned Restore undoes both.
func Graphics() (Restore, error) {
	if err := setMode(kdGraphics); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFramebuffer, err, "KD_GRAPHICS")
	}
	_ = writeVT(hideCursor)
	return func() error {
		_ = writeVT(showCursor)
		if err := setMode(kdText); err != nil {
			return errors.Wrap(errors.ErrCodeFramebuffer, err, "KD_TEXT")
		}
		return nil
	}, nil
}

func setMode(mode int) error {
	var lastErr error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("ioctl on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range ttyPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

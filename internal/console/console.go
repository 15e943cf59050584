// Package console switches the Linux virtual terminal between text and
// graphics mode so a framebuffer preview is not overwritten by the console
// cursor or kernel messages.
package console

// Restore puts the console back the way Graphics found it.
type Restore func() error

package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/cardmaker/internal/cli"
	"github.com/rook-computer/cardmaker/internal/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if code := exitCode(os.Stderr, cli.Execute(ctx, redirectOutput)); code != 0 {
		os.Exit(code)
	}
}

// exitCode reports err on w and returns the process exit status.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintln(w, "cardmaker:", errors.UserMessage(err))
	return 1
}

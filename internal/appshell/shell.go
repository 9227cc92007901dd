// Package appshell is the process-level entry point for the kclust binary:
// signal handling and exit-code normalization around a run function.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wires SIGINT/SIGTERM into a context, runs the app, and exits with
// its code. Interrupted runs that report success are normalized to 130 so
// callers can tell a cancelled clustering from a completed one.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"kclust/internal/appcore"
	"kclust/internal/cli"
	"kclust/internal/version"
	"kclust/internal/writers"
)

// RunContext parses argv, wires the options into the run core, and maps
// everything to a process exit code: 0 success, 1 runtime failure, 2 usage,
// 3 output-flush failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("kclust")
	fs.SetOutput(io.Discard)

	usage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "kclust version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		SeqFiles:  opts.SeqFiles,
		Labels:    opts.Labels,
		K:         opts.K,
		Canonical: opts.Canonical,
		Normalize: opts.Normalize,
		Metric:    opts.Metric,
		Threads:   opts.Threads,
		ChunkSize: opts.ChunkSize,
		Output:    opts.Output,
		CountsOut: opts.CountsOut,
		Header:    opts.Header,
		Progress:  opts.Progress,
		Quiet:     opts.Quiet,
	})
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

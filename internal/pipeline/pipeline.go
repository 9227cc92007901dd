// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"kclust-core/counter"
	"kclust-core/fasta"
)

// Config controls the counting pipeline.
type Config struct {
	K         int
	Canonical bool
	Threads   int // worker goroutines (0 = all CPUs)
	ChunkSize int // record chunking window; 0 = one chunk per record
	Progress  bool
	ProgressW io.Writer // progress bar sink, usually stderr
}

// Sample names one input file.
type Sample struct {
	Label string
	Path  string
}

// Result is one sample's finished counts, or the error that aborted it.
// A failed sample never aborts its siblings; the caller decides whether
// enough samples survive to continue the batch.
type Result struct {
	Label  string
	Counts counter.Counts
	Err    error
}

// CountSample counts one sample file. Records are chunked with an overlap
// of k-1 so no window is lost or double-counted at chunk boundaries; each
// worker accumulates into its own private map and the partials are summed
// after all workers finish.
func CountSample(ctx context.Context, cfg Config, path string) (counter.Counts, error) {
	cnt, err := counter.New(cfg.K, cfg.Canonical)
	if err != nil {
		return nil, err
	}
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	jobs := make(chan []byte, threads*2)
	partials := make([]counter.Counts, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func(w int) {
			defer wg.Done()
			local := make(counter.Counts)
			for seq := range jobs {
				cnt.CountInto(local, seq)
			}
			partials[w] = local
		}(w)
	}

	streamErr := fasta.StreamChunksCtx(ctx, path, cfg.ChunkSize, cfg.K-1, func(r fasta.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- r.Seq:
			return nil
		}
	})
	close(jobs)
	wg.Wait()

	if streamErr != nil {
		return nil, fmt.Errorf("count %s: %w", path, streamErr)
	}

	total := make(counter.Counts)
	for _, p := range partials {
		counter.Merge(total, p)
	}
	return total, nil
}

// CountSamples runs CountSample over the batch, one sample at a time (the
// worker pool already saturates the CPU within a sample). Results keep the
// input order regardless of failures.
func CountSamples(ctx context.Context, cfg Config, samples []Sample) []Result {
	var (
		pbs *mpb.Progress
		bar *mpb.Bar
	)
	if cfg.Progress && cfg.ProgressW != nil {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(cfg.ProgressW))
		bar = pbs.AddBar(int64(len(samples)),
			mpb.PrependDecorators(
				decor.Name("counting: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	out := make([]Result, len(samples))
	for i, s := range samples {
		counts, err := CountSample(ctx, cfg, s.Path)
		out[i] = Result{Label: s.Label, Counts: counts, Err: err}
		if bar != nil {
			bar.Increment()
		}
	}
	if pbs != nil {
		pbs.Wait()
	}
	return out
}

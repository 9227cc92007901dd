// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kclust-core/cluster"
	"kclust-core/counter"
	"kclust-core/dendro"
	"kclust-core/distance"
	"kclust-core/kmer"
	"kclust-core/profile"

	"kclust/internal/output"
	"kclust/internal/pipeline"
	"kclust/internal/writers"
	"kclust/pkg/api"
)

// Options is the full configuration of one clustering run.
type Options struct {
	SeqFiles []string
	Labels   []string // optional; file stems when nil

	K         int
	Canonical bool
	Normalize bool
	Metric    string

	Threads   int
	ChunkSize int

	Output    string
	CountsOut string
	Header    bool

	Progress bool
	Quiet    bool
}

// SampleLabel derives a sample name from a FASTA path: the base name with
// compression and FASTA extensions stripped, plus any trailing ".split"
// marker from upstream splitting tools.
func SampleLabel(path string) string {
	if path == "-" {
		return "stdin"
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range []string{".fa", ".fasta", ".fna"} {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return strings.TrimSuffix(name, ".split")
}

func note(w io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", a...)
}

// Run executes the pipeline end to end: per-sample counting, profile
// building over the shared universe, pairwise distances, Ward clustering,
// layout, and output. A failure inside one sample's counting drops only
// that sample; batch-level failures (fewer than 2 usable samples, an empty
// key universe) abort the run. Returns a process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	outw := bufio.NewWriter(stdout)

	labels := o.Labels
	if labels == nil {
		labels = make([]string, len(o.SeqFiles))
		for i, f := range o.SeqFiles {
			labels[i] = SampleLabel(f)
		}
	}

	samples := make([]pipeline.Sample, len(o.SeqFiles))
	for i := range o.SeqFiles {
		samples[i] = pipeline.Sample{Label: labels[i], Path: o.SeqFiles[i]}
	}

	note(stderr, o.Quiet, "counting %d-mers across %d samples", o.K, len(samples))
	results := pipeline.CountSamples(parent, pipeline.Config{
		K:         o.K,
		Canonical: o.Canonical,
		Threads:   o.Threads,
		ChunkSize: o.ChunkSize,
		Progress:  o.Progress,
		ProgressW: stderr,
	}, samples)

	var (
		okLabels []string
		okCounts []counter.Counts
	)
	for _, r := range results {
		if r.Err != nil {
			if parent.Err() != nil {
				_, _ = fmt.Fprintln(stderr, r.Err)
				return 130
			}
			_, _ = fmt.Fprintf(stderr, "WARN: sample %s skipped: %v\n", r.Label, r.Err)
			continue
		}
		okLabels = append(okLabels, r.Label)
		okCounts = append(okCounts, r.Counts)
	}
	if len(okLabels) < 2 {
		_, _ = fmt.Fprintf(stderr, "error: %v (usable samples: %d)\n",
			cluster.ErrInsufficientSamples, len(okLabels))
		return 1
	}

	set, err := profile.Build(okLabels, okCounts, o.Normalize)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	note(stderr, o.Quiet, "profiles: %d samples × %d distinct k-mers", set.Len(), len(set.Universe))

	metric, err := distance.ByName(o.Metric)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	dm, err := distance.Pairwise(set.Vectors(), metric, o.Threads)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	tree, err := cluster.Ward(dm)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	note(stderr, o.Quiet, "clustering: %d merges, root height %g",
		len(tree.Merges), tree.Merges[len(tree.Merges)-1].Height)

	layout, err := dendro.Compute(tree, okLabels)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if o.CountsOut != "" {
		if err := writeCounts(o.CountsOut, o.K, o.Canonical, okLabels, okCounts); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		note(stderr, o.Quiet, "counts written to %s", o.CountsOut)
	}

	res := api.ResultV1{
		Tree:   output.ToAPITree(tree, okLabels, o.K, o.Metric, o.Canonical),
		Layout: output.ToAPILayout(layout),
	}
	wopts := writers.Options{
		Header: o.Header,
		Title:  fmt.Sprintf("Ward dendrogram (k=%d, %s)", o.K, o.Metric),
	}
	if err := writers.WriteResult(o.Output, outw, res, wopts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func writeCounts(path string, k int, canonical bool, labels []string, counts []counter.Counts) error {
	coder, err := kmer.NewCoder(k)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("counts-out: %w", err)
	}
	doc := output.ToAPICounts(coder, canonical, labels, counts)
	if werr := output.WriteCountsJSON(fh, doc); werr != nil {
		_ = fh.Close()
		return fmt.Errorf("counts-out: %w", werr)
	}
	return fh.Close()
}

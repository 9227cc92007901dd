// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"kclust-core/kmer"

	"kclust/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input: one FASTA file per sample.
	SeqFiles []string
	Labels   []string // optional override, one per file

	// K-mer parameters
	K         int
	Canonical bool
	Normalize bool
	Metric    string

	// Performance
	Threads   int
	ChunkSize int

	// Output
	Output    string // json | text | svg
	CountsOut string // optional per-sample counts JSON path
	Header    bool   // true unless --no-header

	Progress bool
	Quiet    bool
	Version  bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: k-mer profile clustering

Counts k-mers per sample FASTA, builds frequency profiles over the shared
key universe, computes pairwise distances, and clusters samples with Ward's
method into a dendrogram.

Version: %s

Usage: %s [flags] <sample.fa> [sample2.fa ...]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (after glob expansion) are sample FASTA files; the
// repeatable --sequences flag is accepted too.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "sample FASTA file (repeatable or '-') [*]")
	var labels string
	fs.StringVar(&labels, "labels", "", "comma-separated sample labels (default: file stems)")

	fs.IntVar(&opt.K, "k", 8, "k-mer length (1..32) [8]")
	fs.BoolVar(&opt.Canonical, "canonical", true, "fold each k-mer with its reverse complement [true]")
	fs.BoolVar(&opt.Normalize, "normalize", true, "divide profiles by total valid windows [true]")
	fs.StringVar(&opt.Metric, "metric", "euclidean", "distance metric: euclidean | manhattan | cosine [euclidean]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "split records into N-bp windows, overlapped by k-1 (0 = per record) [0]")

	fs.StringVar(&opt.Output, "output", "json", "output format: json | text | svg [json]")
	fs.StringVar(&opt.CountsOut, "counts-out", "", "also write per-sample k-mer counts JSON to this path")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar on stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress status notes on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	pos, err := expandGlobs(posArgs)
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = append([]string(nil), seq...)
	opt.SeqFiles = append(opt.SeqFiles, pos...)
	opt.Header = !noHeader
	if labels != "" {
		opt.Labels = strings.Split(labels, ",")
	}

	// Validation
	if opt.K < 1 || opt.K > kmer.MaxK {
		return opt, fmt.Errorf("--k must be between 1 and %d", kmer.MaxK)
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one sample FASTA file is required")
	}
	if opt.Labels != nil && len(opt.Labels) != len(opt.SeqFiles) {
		return opt, fmt.Errorf("--labels names %d samples but %d files were given",
			len(opt.Labels), len(opt.SeqFiles))
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.ChunkSize != 0 && opt.ChunkSize < opt.K {
		return opt, errors.New("--chunk-size must be 0 or ≥ k")
	}
	switch opt.Metric {
	case "euclidean", "manhattan", "cosine":
	default:
		return opt, fmt.Errorf("invalid --metric %q", opt.Metric)
	}
	switch opt.Output {
	case "json", "text", "svg":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalSequences(t *testing.T) {
	o := mustParse(t, "--k", "5", "a.fa", "b.fa")
	if len(o.SeqFiles) != 2 || o.K != 5 {
		t.Errorf("bad parse: %+v", o)
	}
}

func TestSequencesFlagRepeatable(t *testing.T) {
	o := mustParse(t, "--sequences", "a.fa", "--sequences", "b.fa")
	if len(o.SeqFiles) != 2 {
		t.Errorf("want 2 files, got %v", o.SeqFiles)
	}
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "a.fa", "b.fa")
	if o.K != 8 || !o.Canonical || !o.Normalize || o.Metric != "euclidean" || o.Output != "json" {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if !o.Header {
		t.Error("header should default on")
	}
}

func TestLabelsMatchFiles(t *testing.T) {
	o := mustParse(t, "--labels", "x,y", "a.fa", "b.fa")
	if len(o.Labels) != 2 || o.Labels[0] != "x" {
		t.Errorf("bad labels: %v", o.Labels)
	}
	if _, err := ParseArgs(newFS(), []string{"--labels", "x", "a.fa", "b.fa"}); err == nil {
		t.Error("label/file count mismatch should fail")
	}
}

func TestKValidation(t *testing.T) {
	for _, k := range []string{"0", "33", "-4"} {
		if _, err := ParseArgs(newFS(), []string{"--k", k, "a.fa"}); err == nil {
			t.Errorf("k=%s should fail", k)
		}
	}
}

func TestNoFiles(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--k", "4"}); err == nil {
		t.Error("missing files should fail")
	}
}

func TestChunkSizeBelowK(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--k", "8", "--chunk-size", "4", "a.fa"}); err == nil {
		t.Error("chunk-size < k should fail")
	}
	if _, err := ParseArgs(newFS(), []string{"--k", "8", "--chunk-size", "0", "a.fa"}); err != nil {
		t.Errorf("chunk-size 0 should pass: %v", err)
	}
}

func TestBadEnumValues(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--metric", "hamming", "a.fa"}); err == nil {
		t.Error("unknown metric should fail")
	}
	if _, err := ParseArgs(newFS(), []string{"--output", "xml", "a.fa"}); err == nil {
		t.Error("unknown output should fail")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Errorf("version parse: %v %+v", err, o)
	}
}

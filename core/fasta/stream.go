// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence, or one window of it when chunking
// is enabled. Chunk windows carry the parent record's ID plus a
// ":start-end" suffix for diagnostics.
type Record struct {
	ID  string
	Seq []byte
}

// StreamChunksCtx opens path, scans FASTA, and emits per-record sequence
// windows. With chunkSize <= 0 each record is emitted whole. Otherwise
// consecutive windows of chunkSize bases are emitted with the given overlap
// between them, so a k-mer scanner using overlap = k-1 sees every window of
// the original record exactly once.
//
// Cancellation via ctx is honored promptly, both between lines and between
// chunks. emit may return a non-nil error to stop early.
func StreamChunksCtx(
	ctx context.Context,
	path string,
	chunkSize, overlap int,
	emit func(Record) error,
) error {
	if overlap < 0 {
		overlap = 0
	}
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" {
			return nil
		}
		step := chunkSize - overlap
		if chunkSize <= 0 || chunkSize >= len(seq) || step <= 0 {
			return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
		}
		for off := 0; off < len(seq); off += step {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			end := off + chunkSize
			if end > len(seq) {
				end = len(seq)
			}
			chID := fmt.Sprintf("%s:%d-%d", id, off, end)
			if err := emit(Record{ID: chID, Seq: append([]byte(nil), seq[off:end]...)}); err != nil {
				return err
			}
			if end == len(seq) {
				break
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if id != "" || len(seq) > 0 {
		return flush()
	}
	return nil
}

// StreamRecordsCtx emits whole records with no chunking.
func StreamRecordsCtx(ctx context.Context, path string, emit func(Record) error) error {
	return StreamChunksCtx(ctx, path, 0, 0, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

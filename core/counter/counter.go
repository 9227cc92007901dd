// core/counter/counter.go
package counter

import (
	"kclust-core/kmer"
)

// Counts maps packed k-mer keys to occurrence counts for one sample.
type Counts map[uint64]uint64

// Total returns the number of valid windows behind the counts.
func (c Counts) Total() uint64 {
	var n uint64
	for _, v := range c {
		n += v
	}
	return n
}

// Merge folds src into dst. Addition is commutative and associative, so the
// result is independent of the order partial maps arrive from workers.
func Merge(dst, src Counts) {
	for k, v := range src {
		dst[k] += v
	}
}

// Counter scans sequence chunks with a length-k sliding window (stride 1)
// and accumulates key counts. A Counter is safe for concurrent use: all
// mutable state lives in the Counts passed by the caller.
type Counter struct {
	coder     *kmer.Coder
	canonical bool
}

// New returns a Counter for the given k. With canonical=true every window
// is recorded under the smaller of its key and reverse-complement key.
func New(k int, canonical bool) (*Counter, error) {
	coder, err := kmer.NewCoder(k)
	if err != nil {
		return nil, err
	}
	return &Counter{coder: coder, canonical: canonical}, nil
}

// Coder exposes the underlying encoder, for decoding keys in output layers.
func (c *Counter) Coder() *kmer.Coder { return c.coder }

// CountChunk counts all valid windows of one chunk into a fresh map.
// Chunks shorter than k yield an empty map, not an error.
func (c *Counter) CountChunk(seq []byte) Counts {
	out := make(Counts)
	c.CountInto(out, seq)
	return out
}

// CountInto counts all valid windows of seq into dst. Windows containing
// any invalid symbol are skipped entirely; the rolling keys are rebuilt
// from scratch once k consecutive valid bases have been seen again.
func (c *Counter) CountInto(dst Counts, seq []byte) {
	k := c.coder.K()
	if len(seq) < k {
		return
	}
	var (
		fwd, rc uint64
		run     int
		mask    = c.coder.Mask()
		shift   = 2 * uint(k-1)
	)
	for _, b := range seq {
		v, ok := kmer.Code(b)
		if !ok {
			run = 0
			continue
		}
		fwd = (fwd<<2 | uint64(v)) & mask
		rc = rc>>2 | uint64(3-v)<<shift
		run++
		if run < k {
			continue
		}
		key := fwd
		if c.canonical && rc < key {
			key = rc
		}
		dst[key]++
	}
}

// core/kmer/coder.go
package kmer

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxK is the largest k that fits a single 64-bit key (2 bits per base).
const MaxK = 32

// ErrInvalidSymbol reports a byte outside the strict A/C/G/T alphabet.
// Callers scanning raw sequence are expected to pre-filter and skip the
// offending window rather than encode it.
var ErrInvalidSymbol = errors.New("kmer: invalid symbol")

// invalid marks a byte with no 2-bit code.
const invalid = 0xFF

// codes maps A→0, C→1, G→2, T→3; everything else (ambiguity codes,
// lowercase, gaps) is invalid.
var codes [256]byte

func init() {
	for i := range codes {
		codes[i] = invalid
	}
	codes['A'] = 0
	codes['C'] = 1
	codes['G'] = 2
	codes['T'] = 3
}

// Code returns the 2-bit code for b and whether b is a valid base.
func Code(b byte) (byte, bool) {
	c := codes[b]
	return c, c != invalid
}

// Coder packs length-k substrings over {A,C,G,T} into uint64 keys.
// The mapping is a bijection between valid substrings and [0, 4^k).
type Coder struct {
	k    int
	mask uint64
}

// NewCoder returns a Coder for the given k. k must be in [1, MaxK];
// the value is fixed for the lifetime of the Coder.
func NewCoder(k int) (*Coder, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("kmer: k must be between 1 and %d, got %d", MaxK, k)
	}
	var mask uint64
	if k == MaxK {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << (2 * uint(k))) - 1
	}
	return &Coder{k: k, mask: mask}, nil
}

// K returns the configured k-mer length.
func (c *Coder) K() int { return c.k }

// Mask returns the bitmask covering the low 2k bits of a key.
func (c *Coder) Mask() uint64 { return c.mask }

// Encode packs sub into a key. The first base lands in the highest-order
// 2-bit group so that numeric key order equals lexicographic substring order.
func (c *Coder) Encode(sub []byte) (uint64, error) {
	if len(sub) != c.k {
		return 0, fmt.Errorf("kmer: expected %d bases, got %d", c.k, len(sub))
	}
	var key uint64
	for _, b := range sub {
		v := codes[b]
		if v == invalid {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
		}
		key = key<<2 | uint64(v)
	}
	return key, nil
}

// Decode is the inverse of Encode, for diagnostics and output labels.
func (c *Coder) Decode(key uint64) string {
	const bases = "ACGT"
	out := make([]byte, c.k)
	for i := c.k - 1; i >= 0; i-- {
		out[i] = bases[key&3]
		key >>= 2
	}
	return string(out)
}

// RevComp returns the key of the reverse complement of the k-mer key.
func (c *Coder) RevComp(key uint64) uint64 {
	// Complement: A<->T and C<->G is 3-v per 2-bit group.
	x := ^key
	// Reverse the 32 2-bit groups, then drop the unused low groups.
	x = (x>>2)&0x3333333333333333 | (x&0x3333333333333333)<<2
	x = (x>>4)&0x0F0F0F0F0F0F0F0F | (x&0x0F0F0F0F0F0F0F0F)<<4
	x = bits.ReverseBytes64(x)
	return x >> (64 - 2*uint(c.k))
}

// Canonical returns the smaller of key and its reverse complement, making
// downstream counts invariant to strand orientation.
func (c *Coder) Canonical(key uint64) uint64 {
	if rc := c.RevComp(key); rc < key {
		return rc
	}
	return key
}

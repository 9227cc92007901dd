// core/profile/profile.go
package profile

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"kclust-core/counter"
)

// ErrEmptyUniverse means the batch holds no valid k-mers at all: either no
// samples were given or every sample produced zero valid windows.
var ErrEmptyUniverse = errors.New("profile: empty key universe, nothing to cluster")

// Set holds the finalized profiles of one batch: the shared key universe
// (sorted ascending by key value) and one row per sample, column i being
// the count of universe key i in that sample.
type Set struct {
	Labels     []string
	Universe   []uint64
	Matrix     *mat.Dense
	Normalized bool
}

// Build computes the shared key universe over all samples and turns each
// sample's counts into a dense vector over it. It must only be called once
// every sample's counting has finished: the universe is the union of keys
// across the whole batch. With normalize=true each row is divided by its L1
// norm (the sample's total valid windows) so sequencing depth does not bias
// distances; all-zero rows are left as zeros.
func Build(labels []string, counts []counter.Counts, normalize bool) (*Set, error) {
	if len(labels) != len(counts) {
		return nil, fmt.Errorf("profile: %d labels for %d samples", len(labels), len(counts))
	}

	seen := make(map[uint64]struct{})
	for _, c := range counts {
		for k := range c {
			seen[k] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, ErrEmptyUniverse
	}
	universe := make([]uint64, 0, len(seen))
	for k := range seen {
		universe = append(universe, k)
	}
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	col := make(map[uint64]int, len(universe))
	for i, k := range universe {
		col[k] = i
	}

	m := mat.NewDense(len(counts), len(universe), nil)
	for row, c := range counts {
		for k, v := range c {
			m.Set(row, col[k], float64(v))
		}
		if normalize {
			if total := c.Total(); total > 0 {
				inv := 1 / float64(total)
				for j := range universe {
					m.Set(row, j, m.At(row, j)*inv)
				}
			}
		}
	}

	return &Set{
		Labels:     append([]string(nil), labels...),
		Universe:   universe,
		Matrix:     m,
		Normalized: normalize,
	}, nil
}

// Len returns the number of samples in the set.
func (s *Set) Len() int { return len(s.Labels) }

// Vectors returns the profile rows without copying. Callers must treat the
// returned slices as read-only.
func (s *Set) Vectors() [][]float64 {
	out := make([][]float64, s.Len())
	for i := range out {
		out[i] = s.Matrix.RawRowView(i)
	}
	return out
}

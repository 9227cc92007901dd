// core/distance/distance.go
package distance

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch reports profiles of unequal length. It indicates
	// an invariant violation upstream in the profile builder.
	ErrDimensionMismatch = errors.New("distance: profile vectors differ in length")
	// ErrDegenerateMetric reports a metric returning a negative or
	// non-finite value. It is surfaced immediately, never clamped.
	ErrDegenerateMetric = errors.New("distance: metric returned a negative or non-finite value")
	// ErrUnknownMetric reports an unrecognized metric name.
	ErrUnknownMetric = errors.New("distance: unknown metric")
)

// Metric computes a non-negative dissimilarity between two equal-length
// vectors. Implementations must accumulate in a fixed sequential order so
// repeated runs produce bit-identical values.
type Metric func(x, y []float64) float64

// Euclidean is the default metric: the L2 norm of x-y.
func Euclidean(x, y []float64) float64 { return floats.Distance(x, y, 2) }

// Manhattan is the L1 norm of x-y.
func Manhattan(x, y []float64) float64 { return floats.Distance(x, y, 1) }

// Cosine is 1 minus the cosine similarity. Pairs involving an all-zero
// vector get the maximum distance 1.
func Cosine(x, y []float64) float64 {
	nx := floats.Norm(x, 2)
	ny := floats.Norm(y, 2)
	if nx*ny <= 1e-9 {
		return 1
	}
	d := 1 - floats.Dot(x, y)/(nx*ny)
	// Near-parallel vectors can land a few ulps below zero; that is this
	// metric's own rounding noise, not a degenerate result.
	if d < 0 {
		return 0
	}
	return d
}

// ByName resolves a metric selector from configuration.
func ByName(name string) (Metric, error) {
	switch name {
	case "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "cosine":
		return Cosine, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Pairwise computes the symmetric all-pairs dissimilarity matrix over vecs.
// Each unordered pair is computed exactly once by exactly one worker, so
// the result does not depend on scheduling; the diagonal is fixed at zero.
func Pairwise(vecs [][]float64, metric Metric, workers int) (*mat.SymDense, error) {
	n := len(vecs)
	if n == 0 {
		return nil, fmt.Errorf("distance: no profiles to compare")
	}
	dim := len(vecs[0])
	for i, v := range vecs {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d coordinates, want %d",
				ErrDimensionMismatch, i, len(v), dim)
		}
	}
	if workers < 1 {
		workers = 1
	}

	m := mat.NewSymDense(n, nil)

	type pair struct{ i, j int }
	jobs := make(chan pair, workers*2)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				d := metric(vecs[p.i], vecs[p.j])
				if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("%w: d(%d,%d) = %v", ErrDegenerateMetric, p.i, p.j, d)
					})
					continue
				}
				// Disjoint cells per pair: no shared mutable state.
				m.SetSym(p.i, p.j, d)
			}
		}()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs <- pair{i, j}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return m, nil
}

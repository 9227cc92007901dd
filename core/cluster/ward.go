// core/cluster/ward.go
package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInsufficientSamples reports a batch of fewer than 2 samples: a merge
// tree is undefined for 0 or 1 leaves.
var ErrInsufficientSamples = errors.New("cluster: at least 2 samples required")

// Merge is one agglomeration step. Node ids follow the linkage convention:
// leaves are 0..n-1 in input order; the merge recorded at step t creates
// internal node n+t.
type Merge struct {
	A, B   int     // child node ids, A < B
	Height float64 // dissimilarity of the two children at merge time
	Size   int     // number of leaves under the new node
}

// Tree is the binary merge tree over n leaves: exactly n-1 merges, heights
// non-decreasing across successive merges under Ward's criterion.
type Tree struct {
	Leaves int
	Merges []Merge
}

// Root returns the node id of the final cluster.
func (t *Tree) Root() int { return t.Leaves + len(t.Merges) - 1 }

// Ward runs minimum-variance agglomerative clustering over a symmetric
// non-negative distance matrix. Inter-cluster distances are maintained with
// the Lance-Williams recurrence for Ward's method:
//
//	d(m,k) = ((n_i+n_k)·d(i,k) + (n_j+n_k)·d(j,k) − n_k·d(i,j)) / (n_i+n_j+n_k)
//
// Tie-break: when several pairs share the minimal distance, the pair (a,b)
// that is lexicographically smallest by node id wins — leaves in input
// order before internal nodes in creation order. Heights are recorded at
// full float64 precision, never clamped or reordered.
func Ward(d *mat.SymDense) (*Tree, error) {
	n := d.SymmetricDim()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSamples, n)
	}

	total := 2*n - 1
	w := make([][]float64, total)
	for i := range w {
		w[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := d.At(i, j)
			w[i][j] = v
			w[j][i] = v
		}
	}

	alive := make([]bool, total)
	size := make([]int, total)
	for i := 0; i < n; i++ {
		alive[i] = true
		size[i] = 1
	}

	merges := make([]Merge, 0, n-1)
	for next := n; next < total; next++ {
		bestA, bestB := -1, -1
		best := math.Inf(1)
		for a := 0; a < next; a++ {
			if !alive[a] {
				continue
			}
			for b := a + 1; b < next; b++ {
				if alive[b] && w[a][b] < best {
					best = w[a][b]
					bestA, bestB = a, b
				}
			}
		}

		na, nb := size[bestA], size[bestB]
		for k := 0; k < next; k++ {
			if !alive[k] || k == bestA || k == bestB {
				continue
			}
			nk := size[k]
			v := (float64(na+nk)*w[bestA][k] + float64(nb+nk)*w[bestB][k] - float64(nk)*best) /
				float64(na+nb+nk)
			w[next][k] = v
			w[k][next] = v
		}

		alive[bestA] = false
		alive[bestB] = false
		alive[next] = true
		size[next] = na + nb
		merges = append(merges, Merge{A: bestA, B: bestB, Height: best, Size: na + nb})
	}

	return &Tree{Leaves: n, Merges: merges}, nil
}

// core/dendro/layout.go
package dendro

import (
	"fmt"
	"strconv"

	"kclust-core/cluster"
)

// Segment is one line primitive for a rendering backend, in plot
// coordinates (x = leaf slot units, y = merge height units).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Label places a leaf's text at its slot on the baseline.
type Label struct {
	Text string
	X, Y float64
}

// Layout holds plot coordinates for every node of a merge tree plus the
// primitives needed to draw it. It is derived purely from the tree and
// never mutates it: identical trees yield identical layouts.
type Layout struct {
	Leaves    int
	LeafOrder []int        // leaf node ids, left to right
	X, Y      []float64    // per node id (leaves then internal nodes)
	Span      [][2]float64 // per node id: [min,max] slot covered by its subtree
	Segments  []Segment
	Labels    []Label
}

// Compute lays out a merge tree. Each leaf gets a unique horizontal slot
// from a structure-only traversal (left subtree before right), so the two
// subtrees of every internal node stay contiguous and edges never cross.
// Leaves sit at height 0; an internal node sits at its merge height, x at
// the midpoint of its children. labels may be nil (node ids are used) or
// must have one entry per leaf.
func Compute(t *cluster.Tree, labels []string) (*Layout, error) {
	n := t.Leaves
	if len(t.Merges) != n-1 {
		return nil, fmt.Errorf("dendro: tree has %d merges for %d leaves", len(t.Merges), n)
	}
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("dendro: %d labels for %d leaves", len(labels), n)
	}

	total := 2*n - 1
	left := make([]int, total)
	right := make([]int, total)
	for i, m := range t.Merges {
		left[n+i] = m.A
		right[n+i] = m.B
	}

	// Slot assignment by depth-first traversal, left child first.
	order := make([]int, 0, n)
	var walk func(id int)
	walk = func(id int) {
		if id < n {
			order = append(order, id)
			return
		}
		walk(left[id])
		walk(right[id])
	}
	walk(t.Root())

	l := &Layout{
		Leaves:    n,
		LeafOrder: order,
		X:         make([]float64, total),
		Y:         make([]float64, total),
		Span:      make([][2]float64, total),
	}
	for slot, leaf := range order {
		l.X[leaf] = float64(slot)
		l.Span[leaf] = [2]float64{float64(slot), float64(slot)}
	}

	// Children are always created before their parent, so one pass over
	// the merges places every internal node bottom-up.
	for i, m := range t.Merges {
		id := n + i
		l.X[id] = (l.X[m.A] + l.X[m.B]) / 2
		l.Y[id] = m.Height
		l.Span[id] = [2]float64{
			minf(l.Span[m.A][0], l.Span[m.B][0]),
			maxf(l.Span[m.A][1], l.Span[m.B][1]),
		}

		// Two risers and one crossbar per merge.
		l.Segments = append(l.Segments,
			Segment{l.X[m.A], l.Y[m.A], l.X[m.A], m.Height},
			Segment{l.X[m.B], l.Y[m.B], l.X[m.B], m.Height},
			Segment{l.X[m.A], m.Height, l.X[m.B], m.Height},
		)
	}

	for _, leaf := range order {
		text := strconv.Itoa(leaf)
		if labels != nil {
			text = labels[leaf]
		}
		l.Labels = append(l.Labels, Label{Text: text, X: l.X[leaf], Y: 0})
	}

	return l, nil
}

// MaxHeight returns the largest merge height, for axis scaling.
func (l *Layout) MaxHeight() float64 {
	var h float64
	for _, s := range l.Segments {
		if s.Y1 > h {
			h = s.Y1
		}
		if s.Y2 > h {
			h = s.Y2
		}
	}
	return h
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

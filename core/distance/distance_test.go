package distance

import (
	"errors"
	"math"
	"testing"
)

func TestEuclideanKnownValues(t *testing.T) {
	if d := Euclidean([]float64{0, 0}, []float64{3, 4}); math.Abs(d-5) > 1e-12 {
		t.Errorf("Euclidean = %v, want 5", d)
	}
	if d := Manhattan([]float64{0, 0}, []float64{3, 4}); math.Abs(d-7) > 1e-12 {
		t.Errorf("Manhattan = %v, want 7", d)
	}
	if d := Cosine([]float64{1, 0}, []float64{0, 1}); math.Abs(d-1) > 1e-12 {
		t.Errorf("Cosine orthogonal = %v, want 1", d)
	}
	if d := Cosine([]float64{1, 1}, []float64{2, 2}); math.Abs(d) > 1e-12 {
		t.Errorf("Cosine parallel = %v, want 0", d)
	}
	if d := Cosine([]float64{0, 0}, []float64{1, 2}); d != 1 {
		t.Errorf("Cosine with zero vector = %v, want 1", d)
	}
}

func TestCosineNonNegative(t *testing.T) {
	// 1 - dot/(nx*ny) underflows below zero for identical vectors; the
	// metric must absorb that instead of reporting a negative distance.
	x := []float64{0.1, 0.2, 0.7}
	if d := Cosine(x, x); d != 0 {
		t.Errorf("Cosine(x, x) = %v, want exactly 0", d)
	}
	y := []float64{0.1 + 1e-15, 0.2, 0.7}
	if d := Cosine(x, y); d < 0 {
		t.Errorf("Cosine near-parallel = %v, want >= 0", d)
	}
}

func TestPairwiseCosineDuplicateProfiles(t *testing.T) {
	vecs := [][]float64{
		{0.5, 0.3, 0.2},
		{0.5, 0.3, 0.2},
		{0.1, 0.1, 0.8},
	}
	m, err := Pairwise(vecs, Cosine, 1)
	if err != nil {
		t.Fatalf("Pairwise: %v", err)
	}
	if d := m.At(0, 1); d != 0 {
		t.Errorf("duplicate profiles: d(0,1) = %v, want 0", d)
	}
	if d := m.At(0, 2); d <= 0 || d >= 1 {
		t.Errorf("distinct profiles: d(0,2) = %v, want in (0,1)", d)
	}
}

func TestPairwiseSymmetryAndDiagonal(t *testing.T) {
	vecs := [][]float64{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	m, err := Pairwise(vecs, Euclidean, 4)
	if err != nil {
		t.Fatalf("Pairwise: %v", err)
	}
	n := m.SymmetricDim()
	if n != 4 {
		t.Fatalf("dim = %d, want 4", n)
	}
	for i := 0; i < n; i++ {
		if m.At(i, i) != 0 {
			t.Errorf("diagonal (%d,%d) = %v, want 0", i, i, m.At(i, i))
		}
		for j := 0; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("asymmetry at (%d,%d)", i, j)
			}
			if m.At(i, j) < 0 {
				t.Errorf("negative distance at (%d,%d)", i, j)
			}
		}
	}
	if m.At(0, 1) != 0 {
		t.Errorf("identical profiles should be at distance 0, got %v", m.At(0, 1))
	}
	if math.Abs(m.At(0, 2)-math.Sqrt2) > 1e-12 {
		t.Errorf("d(0,2) = %v, want sqrt(2)", m.At(0, 2))
	}
}

func TestPairwiseDeterministicAcrossWorkerCounts(t *testing.T) {
	vecs := [][]float64{
		{0.1, 0.2, 0.7, 0.3},
		{0.5, 0.1, 0.1, 0.2},
		{0.9, 0.4, 0.2, 0.8},
		{0.3, 0.3, 0.3, 0.1},
		{0.6, 0.2, 0.5, 0.9},
	}
	one, err := Pairwise(vecs, Euclidean, 1)
	if err != nil {
		t.Fatalf("Pairwise(1): %v", err)
	}
	eight, err := Pairwise(vecs, Euclidean, 8)
	if err != nil {
		t.Fatalf("Pairwise(8): %v", err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if one.At(i, j) != eight.At(i, j) {
				t.Fatalf("worker count changed d(%d,%d): %v vs %v", i, j, one.At(i, j), eight.At(i, j))
			}
		}
	}
}

func TestPairwiseDimensionMismatch(t *testing.T) {
	_, err := Pairwise([][]float64{{1, 2}, {1, 2, 3}}, Euclidean, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestPairwiseDegenerateMetric(t *testing.T) {
	bad := func(x, y []float64) float64 { return -1 }
	if _, err := Pairwise([][]float64{{1}, {2}}, bad, 2); !errors.Is(err, ErrDegenerateMetric) {
		t.Fatalf("negative metric: want ErrDegenerateMetric, got %v", err)
	}
	nan := func(x, y []float64) float64 { return math.NaN() }
	if _, err := Pairwise([][]float64{{1}, {2}}, nan, 1); !errors.Is(err, ErrDegenerateMetric) {
		t.Fatalf("NaN metric: want ErrDegenerateMetric, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"euclidean", "manhattan", "cosine"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%s): %v", name, err)
		}
	}
	if _, err := ByName("hamming"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("want ErrUnknownMetric, got %v", err)
	}
}

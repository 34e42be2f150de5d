package testutil

import (
	"math"
	"sort"
	"testing"
)

// RequireSliceNear fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNear fails t if the two sets of complex values do not match
// within eps. Both slices are sorted before comparison, so the check is
// independent of ordering, which eigenvalue-based root finders do not
// guarantee.
func RequireComplexNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	g := SortedComplex(got)
	w := SortedComplex(want)

	for i := range g {
		re := math.Abs(real(g[i]) - real(w[i]))
		im := math.Abs(imag(g[i]) - imag(w[i]))

		if re > eps || im > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, g[i], w[i], eps)
		}
	}
}

// SortedComplex returns a copy sorted by real part, then imaginary part.
func SortedComplex(in []complex128) []complex128 {
	out := append([]complex128{}, in...)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}

		return imag(out[i]) < imag(out[j])
	})

	return out
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two
// equal-length slices.
func MaxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

package polynomial

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootsQuadratic(t *testing.T) {
	// x^2 - 3x + 2 = (x-1)(x-2)
	roots, err := Roots([]float64{1, -3, 2})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	sort.Slice(roots, func(i, j int) bool { return real(roots[i]) < real(roots[j]) })
	assert.InDelta(t, 1, real(roots[0]), 1e-9)
	assert.InDelta(t, 0, imag(roots[0]), 1e-9)
	assert.InDelta(t, 2, real(roots[1]), 1e-9)
	assert.InDelta(t, 0, imag(roots[1]), 1e-9)
}

func TestRootsValidation(t *testing.T) {
	_, err := Roots(nil)
	require.ErrorIs(t, err, ErrNoCoefficients)

	_, err = Roots([]float64{0, 1, 2})
	require.ErrorIs(t, err, ErrZeroLeadingCoefficient)

	roots, err := Roots([]float64{4})
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestRootsComplexConjugatePair(t *testing.T) {
	// x^2 + 1 = (x-i)(x+i)
	roots, err := Roots([]float64{1, 0, 1})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	sort.Slice(roots, func(i, j int) bool { return imag(roots[i]) < imag(roots[j]) })
	assert.InDelta(t, 0, real(roots[0]), 1e-12)
	assert.InDelta(t, -1, imag(roots[0]), 1e-12)
	assert.InDelta(t, 1, imag(roots[1]), 1e-12)
}

// Expanding the roots of a random polynomial must recover the original
// coefficients up to global scale.
func TestPolyRootsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := range 50 {
		degree := 1 + rng.Intn(20)

		p := make([]float64, degree+1)
		for i := range p {
			p[i] = rng.Float64()*2 - 1
		}

		if math.Abs(p[0]) < 0.1 {
			p[0] = 0.5
		}

		roots, err := Roots(p)
		require.NoError(t, err, "trial %d", trial)

		got := Poly(roots)
		require.Len(t, got, len(p))

		// Poly is monic; rescale by the original leading coefficient.
		for i := range got {
			got[i] *= p[0]
		}

		for i := range p {
			assert.InDelta(t, p[i], got[i], 1e-9*math.Max(1, math.Abs(p[i])),
				"trial %d degree %d coeff %d", trial, degree, i)
		}
	}
}

func TestPolyDegenerateCases(t *testing.T) {
	assert.Equal(t, []float64{1}, Poly(nil))
	assert.Equal(t, []float64{1, -3}, Poly([]complex128{3}))
}

func TestPolyConjugatePairIsReal(t *testing.T) {
	r := []complex128{complex(-0.5, 0.25), complex(-0.5, -0.25)}
	c := Poly(r)
	require.Len(t, c, 3)
	assert.InDelta(t, 1, c[0], 1e-15)
	assert.InDelta(t, 1, c[1], 1e-15)
	assert.InDelta(t, 0.3125, c[2], 1e-15)
}

func TestPolyval(t *testing.T) {
	_, err := Polyval(nil, []float64{1})
	require.ErrorIs(t, err, ErrNoCoefficients)

	y, err := Polyval([]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Empty(t, y)

	// Exercise every unrolled order plus the general path.
	x := []float64{-2, -0.5, 0, 0.5, 2}
	coeffs := [][]float64{
		{3},
		{1, -1},
		{2, 0, 1},
		{1, -2, 0, 4},
		{1, 0, -3, 0, 2, -1},
	}

	for _, p := range coeffs {
		y, err = Polyval(p, x)
		require.NoError(t, err)

		for i, v := range x {
			want := 0.0
			for _, c := range p {
				want = want*v + c
			}

			assert.InDelta(t, want, y[i], 1e-12, "order %d at x=%v", len(p)-1, v)
		}
	}
}

func TestPolyvalComplex(t *testing.T) {
	p := []complex128{1, complex(0, -1), 2}
	x := []complex128{complex(0.3, 0.7), complex(-1, 2)}

	y, err := PolyvalComplex(p, x)
	require.NoError(t, err)

	for i, v := range x {
		want := (v+complex(0, -1))*v + 2
		assert.InDelta(t, 0, cmplx.Abs(want-y[i]), 1e-12)
	}
}

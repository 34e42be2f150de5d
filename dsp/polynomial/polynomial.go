package polynomial

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by polynomial routines.
var (
	// ErrNoCoefficients indicates an empty coefficient slice.
	ErrNoCoefficients = errors.New("polynomial: no coefficients")
	// ErrZeroLeadingCoefficient indicates a zero leading (highest power) coefficient.
	ErrZeroLeadingCoefficient = errors.New("polynomial: leading coefficient is zero")
	// ErrEigenFailure indicates the eigenvalue solver failed to converge.
	ErrEigenFailure = errors.New("polynomial: eigenvalue solver failed to converge")
)

// Roots returns all roots of the real polynomial
//
//	p[0]*x^n + p[1]*x^(n-1) + ... + p[n]
//
// by computing the eigenvalues of its companion matrix. The order of the
// returned roots is whatever the eigenvalue solver yields; it is not sorted.
// A degree-zero polynomial has no roots and yields an empty slice.
func Roots(p []float64) ([]complex128, error) {
	if len(p) == 0 {
		return nil, ErrNoCoefficients
	}

	if p[0] == 0 {
		return nil, ErrZeroLeadingCoefficient
	}

	n := len(p) - 1
	if n == 0 {
		return []complex128{}, nil
	}

	// Companion matrix of the monic polynomial: first row holds the negated
	// normalized coefficients, the subdiagonal is one.
	a := mat.NewDense(n, n, nil)
	for j := range n {
		a.Set(0, j, -p[j+1]/p[0])
	}

	for i := 1; i < n; i++ {
		a.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, ErrEigenFailure
	}

	return eig.Values(nil), nil
}

// Poly expands the product prod_i (x - r[i]) into real polynomial
// coefficients, highest power first. Roots must be real or occur in conjugate
// pairs; residual imaginary parts below machine epsilon are rounding noise
// and are zeroed before the real coefficients are returned.
func Poly(r []complex128) []float64 {
	c := PolyComplex(r)

	maxMag := 0.0
	for _, v := range c {
		if m := math.Abs(real(v)); m > maxMag {
			maxMag = m
		}
	}

	out := make([]float64, len(c))
	for i, v := range c {
		if math.Abs(imag(v)) <= machineEps*math.Max(1, maxMag) {
			v = complex(real(v), 0)
		}

		out[i] = real(v)
	}

	return out
}

// PolyComplex expands the product prod_i (x - r[i]) into complex polynomial
// coefficients, highest power first. The result always has len(r)+1 entries;
// zero roots yield the constant polynomial [1].
func PolyComplex(r []complex128) []complex128 {
	if len(r) == 0 {
		return []complex128{1}
	}

	if len(r) == 1 {
		return []complex128{1, -r[0]}
	}

	// Iterative convolution with (x - r[i]): shift previous coefficients and
	// subtract the scaled copy.
	c := make([]complex128, len(r)+1)
	c[0] = 1

	for i, root := range r {
		for j := i + 1; j > 0; j-- {
			c[j] -= root * c[j-1]
		}
	}

	return c
}

// Polyval evaluates the real polynomial p at each point of x using Horner's
// method, with orders 0 through 3 unrolled. An empty x yields an empty
// result.
func Polyval(p, x []float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, ErrNoCoefficients
	}

	y := make([]float64, len(x))
	if len(x) == 0 {
		return y, nil
	}

	switch order := len(p) - 1; order {
	case 0:
		for i := range y {
			y[i] = p[0]
		}
	case 1:
		for i, v := range x {
			y[i] = p[0]*v + p[1]
		}
	case 2:
		for i, v := range x {
			y[i] = p[2] + v*(p[1]+v*p[0])
		}
	case 3:
		for i, v := range x {
			y[i] = p[3] + v*(p[2]+v*(p[1]+v*p[0]))
		}
	default:
		for i, v := range x {
			acc := p[0]
			for j := 1; j <= order; j++ {
				acc = acc*v + p[j]
			}

			y[i] = acc
		}
	}

	return y, nil
}

// PolyvalComplex evaluates the complex polynomial p at each point of x using
// Horner's method. An empty x yields an empty result.
func PolyvalComplex(p, x []complex128) ([]complex128, error) {
	if len(p) == 0 {
		return nil, ErrNoCoefficients
	}

	y := make([]complex128, len(x))
	for i, v := range x {
		acc := p[0]
		for j := 1; j < len(p); j++ {
			acc = acc*v + p[j]
		}

		y[i] = acc
	}

	return y, nil
}

const machineEps = 2.220446049250313e-16

package rep

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/polynomial"
)

// TF2ZPK converts a transfer function to zero-pole-gain form. The zeros are
// the roots of the numerator, the poles the roots of the denominator, and the
// gain the ratio of the leading coefficients.
func TF2ZPK(ba BA) (ZPK, error) {
	if err := ba.Validate(); err != nil {
		return ZPK{}, err
	}

	if ba.B[0] == 0 {
		return ZPK{}, ErrZeroLeadingCoefficient
	}

	zeros, err := polynomial.Roots(ba.B)
	if err != nil {
		return ZPK{}, fmt.Errorf("rep: numerator roots: %w", err)
	}

	poles, err := polynomial.Roots(ba.A)
	if err != nil {
		return ZPK{}, fmt.Errorf("rep: denominator roots: %w", err)
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  ba.B[0] / ba.A[0],
	}, nil
}

// ZPK2TF converts zero-pole-gain form to a transfer function by expanding
// the zero and pole sets into polynomials. The numerator is scaled by the
// gain.
func ZPK2TF(z ZPK) BA {
	b := polynomial.Poly(z.Zeros)
	for i := range b {
		b[i] *= z.Gain
	}

	return BA{
		B: b,
		A: polynomial.Poly(z.Poles),
	}
}

// SOS2TF collapses a cascade of second-order sections into a single transfer
// function by polynomial multiplication of the section numerators and
// denominators.
func SOS2TF(s SOS) (BA, error) {
	if len(s.Sections) == 0 {
		return BA{}, ErrNoSections
	}

	b := []float64{1}
	a := []float64{1}

	for _, sec := range s.Sections {
		b = convTrimmed(b, []float64{sec.B0, sec.B1, sec.B2})
		a = convTrimmed(a, []float64{sec.A0, sec.A1, sec.A2})
	}

	return BA{B: b, A: a}, nil
}

// convTrimmed convolves p with a three-coefficient section polynomial,
// dropping trailing zero terms introduced by first-order sections.
func convTrimmed(p, q []float64) []float64 {
	for len(q) > 1 && q[len(q)-1] == 0 {
		q = q[:len(q)-1]
	}

	out := make([]float64, len(p)+len(q)-1)
	for i, pi := range p {
		for j, qj := range q {
			out[i+j] += pi * qj
		}
	}

	return out
}

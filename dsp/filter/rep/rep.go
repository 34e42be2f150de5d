package rep

import "errors"

// Errors returned by representation conversions.
var (
	// ErrEmptyCoefficients indicates an empty numerator or denominator.
	ErrEmptyCoefficients = errors.New("rep: empty coefficient slice")
	// ErrZeroLeadingCoefficient indicates a zero leading coefficient.
	ErrZeroLeadingCoefficient = errors.New("rep: leading coefficient is zero")
	// ErrTooManyZeros indicates more zeros than poles, which cannot be paired
	// into causal second-order sections.
	ErrTooManyZeros = errors.New("rep: zero count exceeds pole count")
	// ErrUnpairedRoots indicates zeros or poles that are neither real nor
	// conjugate-paired, so no real-coefficient filter exists.
	ErrUnpairedRoots = errors.New("rep: roots are not real or conjugate-paired")
	// ErrNoSections indicates an SOS with no sections.
	ErrNoSections = errors.New("rep: no sections")
)

// ZPK is the zero-pole-gain representation. Zeros and poles are either real
// or occur in conjugate pairs so that the equivalent transfer function has
// real coefficients.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Order returns the filter order, the larger of the zero and pole counts.
func (z ZPK) Order() int {
	if len(z.Zeros) > len(z.Poles) {
		return len(z.Zeros)
	}

	return len(z.Poles)
}

// Clone returns a deep copy.
func (z ZPK) Clone() ZPK {
	out := ZPK{
		Zeros: make([]complex128, len(z.Zeros)),
		Poles: make([]complex128, len(z.Poles)),
		Gain:  z.Gain,
	}
	copy(out.Zeros, z.Zeros)
	copy(out.Poles, z.Poles)

	return out
}

// BA is the transfer-function representation with real numerator B and
// denominator A coefficients, highest power first.
type BA struct {
	B []float64
	A []float64
}

// Validate checks that both coefficient slices are non-empty and that the
// denominator's leading coefficient is non-zero.
func (ba BA) Validate() error {
	if len(ba.B) == 0 || len(ba.A) == 0 {
		return ErrEmptyCoefficients
	}

	if ba.A[0] == 0 {
		return ErrZeroLeadingCoefficient
	}

	return nil
}

// Clone returns a deep copy.
func (ba BA) Clone() BA {
	out := BA{
		B: make([]float64, len(ba.B)),
		A: make([]float64, len(ba.A)),
	}
	copy(out.B, ba.B)
	copy(out.A, ba.A)

	return out
}

// Section is one second-order section. A0 is always 1 after construction by
// this package; it is stored so a section can be inspected as plain transfer
// function coefficients.
type Section struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// SOS is an ordered cascade of second-order sections. The cascade order
// matters for numerical conditioning but not for the value of the overall
// transfer function.
type SOS struct {
	Sections []Section
}

// Clone returns a deep copy.
func (s SOS) Clone() SOS {
	out := SOS{Sections: make([]Section, len(s.Sections))}
	copy(out.Sections, s.Sections)

	return out
}

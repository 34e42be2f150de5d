package iir

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// section is one biquad with its own two-element delay, transposed direct
// form II:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type section struct {
	b0, b1, b2 float64
	a1, a2     float64
	d0, d1     float64
}

// SOSFilter applies a cascade of second-order sections in sequence, each
// section consuming the previous section's output and owning its own delay.
type SOSFilter struct {
	sections []section

	mode      core.Mode
	zeroPhase bool

	zi [][2]float64 // configured initial conditions, nil means zeros

	initialized bool
}

// SOSOption configures an SOSFilter.
type SOSOption func(*SOSFilter)

// WithSOSZeroPhase enables forward-backward filtering. Only valid in
// post-processing mode.
func WithSOSZeroPhase() SOSOption {
	return func(f *SOSFilter) { f.zeroPhase = true }
}

// NewSOSFilter attaches an SOS representation in the given processing mode.
// Sections are normalized by their A0 coefficient.
func NewSOSFilter(sos rep.SOS, mode core.Mode, opts ...SOSOption) (*SOSFilter, error) {
	if len(sos.Sections) == 0 {
		return nil, ErrNoSections
	}

	f := &SOSFilter{
		sections: make([]section, len(sos.Sections)),
		mode:     mode,
	}

	for i, s := range sos.Sections {
		if s.A0 == 0 {
			return nil, ErrNotFinite
		}

		sec := section{
			b0: s.B0 / s.A0,
			b1: s.B1 / s.A0,
			b2: s.B2 / s.A0,
			a1: s.A1 / s.A0,
			a2: s.A2 / s.A0,
		}

		for _, c := range []float64{sec.b0, sec.b1, sec.b2, sec.a1, sec.a2} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, ErrNotFinite
			}
		}

		f.sections[i] = sec
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if f.zeroPhase && mode == core.RealTime {
		return nil, ErrRealTimeZeroPhase
	}

	f.initialized = true

	return f, nil
}

// Apply filters a block of samples through the cascade and returns the
// output. In real-time mode section delays carry over to the next call; in
// post-processing mode they are rebuilt from the initial conditions on
// every call.
func (f *SOSFilter) Apply(x []float64) ([]float64, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}

	if f.mode == core.PostProcessing {
		f.loadInitialConditions()

		if f.zeroPhase {
			return f.applyZeroPhase(x), nil
		}
	}

	y := make([]float64, len(x))
	f.process(y, x)

	return y, nil
}

func (f *SOSFilter) process(dst, src []float64) {
	copy(dst, src)

	for i := range f.sections {
		s := &f.sections[i]

		for j, x := range dst {
			y := s.b0*x + s.d0
			s.d0 = s.b1*x - s.a1*y + s.d1
			s.d1 = s.b2*x - s.a2*y
			dst[j] = y
		}
	}
}

func (f *SOSFilter) applyZeroPhase(x []float64) []float64 {
	y := make([]float64, len(x))
	f.process(y, x)

	floats.Reverse(y)
	f.loadInitialConditions()
	f.process(y, y)
	floats.Reverse(y)

	return y
}

// SetInitialConditions seeds every section's delay pair. The slice must
// have one [d0, d1] entry per section.
func (f *SOSFilter) SetInitialConditions(zi [][2]float64) error {
	if !f.initialized {
		return ErrNotInitialized
	}

	if len(zi) != len(f.sections) {
		return ErrInitialConditions
	}

	f.zi = append(f.zi[:0], zi...)
	f.loadInitialConditions()

	return nil
}

// ResetInitialConditions restores all section delays to the configured
// initial conditions (zeros if none were set).
func (f *SOSFilter) ResetInitialConditions() {
	f.loadInitialConditions()
}

func (f *SOSFilter) loadInitialConditions() {
	for i := range f.sections {
		if f.zi != nil {
			f.sections[i].d0 = f.zi[i][0]
			f.sections[i].d1 = f.zi[i][1]
		} else {
			f.sections[i].d0 = 0
			f.sections[i].d1 = 0
		}
	}
}

// Clone returns a deep copy; the original and the copy evolve
// independently.
func (f *SOSFilter) Clone() *SOSFilter {
	if !f.initialized {
		return &SOSFilter{}
	}

	out := &SOSFilter{
		sections:    append([]section{}, f.sections...),
		mode:        f.mode,
		zeroPhase:   f.zeroPhase,
		initialized: true,
	}
	if f.zi != nil {
		out.zi = append([][2]float64{}, f.zi...)
	}

	return out
}

// NumSections returns the number of cascaded sections.
func (f *SOSFilter) NumSections() int {
	return len(f.sections)
}

// Mode returns the configured processing mode.
func (f *SOSFilter) Mode() core.Mode {
	return f.mode
}

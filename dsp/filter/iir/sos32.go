package iir

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

type section32 struct {
	b0, b1, b2 float32
	a1, a2     float32
	d0, d1     float32
}

// SOSFilter32 is the float32 counterpart of SOSFilter.
type SOSFilter32 struct {
	sections []section32

	mode core.Mode

	zi [][2]float32

	initialized bool
}

// NewSOSFilter32 attaches an SOS representation in the given processing
// mode, normalizing each section by its A0 and converting to float32.
func NewSOSFilter32(sos rep.SOS, mode core.Mode) (*SOSFilter32, error) {
	if len(sos.Sections) == 0 {
		return nil, ErrNoSections
	}

	f := &SOSFilter32{
		sections: make([]section32, len(sos.Sections)),
		mode:     mode,
	}

	for i, s := range sos.Sections {
		if s.A0 == 0 {
			return nil, ErrNotFinite
		}

		for _, c := range []float64{s.B0, s.B1, s.B2, s.A1, s.A2} {
			if math.IsNaN(c/s.A0) || math.IsInf(c/s.A0, 0) {
				return nil, ErrNotFinite
			}
		}

		f.sections[i] = section32{
			b0: float32(s.B0 / s.A0),
			b1: float32(s.B1 / s.A0),
			b2: float32(s.B2 / s.A0),
			a1: float32(s.A1 / s.A0),
			a2: float32(s.A2 / s.A0),
		}
	}

	f.initialized = true

	return f, nil
}

// Apply filters a block of samples through the cascade. State handling
// follows the configured mode exactly as in SOSFilter.Apply.
func (f *SOSFilter32) Apply(x []float32) ([]float32, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}

	if f.mode == core.PostProcessing {
		f.loadInitialConditions()
	}

	y := make([]float32, len(x))
	copy(y, x)

	for i := range f.sections {
		s := &f.sections[i]

		for j, x := range y {
			v := s.b0*x + s.d0
			s.d0 = s.b1*x - s.a1*v + s.d1
			s.d1 = s.b2*x - s.a2*v
			y[j] = v
		}
	}

	return y, nil
}

// SetInitialConditions seeds every section's delay pair.
func (f *SOSFilter32) SetInitialConditions(zi [][2]float32) error {
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
func (f *SOSFilter32) ResetInitialConditions() {
	f.loadInitialConditions()
}

func (f *SOSFilter32) loadInitialConditions() {
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

// Clone returns a deep copy.
func (f *SOSFilter32) Clone() *SOSFilter32 {
	if !f.initialized {
		return &SOSFilter32{}
	}

	out := &SOSFilter32{
		sections:    append([]section32{}, f.sections...),
		mode:        f.mode,
		initialized: true,
	}
	if f.zi != nil {
		out.zi = append([][2]float32{}, f.zi...)
	}

	return out
}

// NumSections returns the number of cascaded sections.
func (f *SOSFilter32) NumSections() int {
	return len(f.sections)
}

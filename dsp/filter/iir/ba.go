package iir

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Filter applies a transfer-function (BA) filter using the transposed
// direct form II recursion. The delay line has max(len(B), len(A)) - 1
// elements and is owned exclusively by this instance.
type Filter struct {
	// Coefficients normalized by a0 and padded to len(state)+1.
	b []float64
	a []float64

	mode      core.Mode
	zeroPhase bool

	state []float64
	zi    []float64 // configured initial conditions, nil means zeros

	initialized bool
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithZeroPhase enables forward-backward filtering, canceling the filter's
// phase distortion at the cost of a second pass. Only valid in
// post-processing mode.
func WithZeroPhase() FilterOption {
	return func(f *Filter) { f.zeroPhase = true }
}

// NewFilter attaches a BA representation in the given processing mode. The
// coefficients are normalized by the leading denominator coefficient and
// copied; the delay line starts at zero.
func NewFilter(ba rep.BA, mode core.Mode, opts ...FilterOption) (*Filter, error) {
	if err := ba.Validate(); err != nil {
		return nil, err
	}

	n := len(ba.B)
	if len(ba.A) > n {
		n = len(ba.A)
	}

	f := &Filter{
		b:     make([]float64, n),
		a:     make([]float64, n),
		mode:  mode,
		state: make([]float64, n-1),
	}

	a0 := ba.A[0]
	for i, v := range ba.B {
		f.b[i] = v / a0
	}

	for i, v := range ba.A {
		f.a[i] = v / a0
	}

	for i := range n {
		if math.IsNaN(f.b[i]) || math.IsInf(f.b[i], 0) ||
			math.IsNaN(f.a[i]) || math.IsInf(f.a[i], 0) {
			return nil, ErrNotFinite
		}
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

// Apply filters a block of samples and returns the output. In real-time
// mode the delay line carries over to the next call; in post-processing
// mode it is rebuilt from the initial conditions on every call.
func (f *Filter) Apply(x []float64) ([]float64, error) {
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

// process runs the transposed direct form II recursion from src into dst,
// advancing the delay line.
func (f *Filter) process(dst, src []float64) {
	b := f.b
	a := f.a
	d := f.state
	order := len(d)

	if order == 0 {
		for i, x := range src {
			dst[i] = b[0] * x
		}

		return
	}

	for i, x := range src {
		y := b[0]*x + d[0]

		for j := 0; j < order-1; j++ {
			d[j] = b[j+1]*x - a[j+1]*y + d[j+1]
		}

		d[order-1] = b[order]*x - a[order]*y

		dst[i] = y
	}
}

// applyZeroPhase filters forward, reverses, filters again, and reverses
// once more, canceling the phase response of both passes.
func (f *Filter) applyZeroPhase(x []float64) []float64 {
	y := make([]float64, len(x))
	f.process(y, x)

	floats.Reverse(y)
	f.loadInitialConditions()
	f.process(y, y)
	floats.Reverse(y)

	return y
}

// SetInitialConditions seeds the delay line used at the start of every
// post-processing call and from now on in real-time mode. The slice must
// have exactly max(len(B), len(A)) - 1 elements.
func (f *Filter) SetInitialConditions(zi []float64) error {
	if !f.initialized {
		return ErrNotInitialized
	}

	if len(zi) != len(f.state) {
		return ErrInitialConditions
	}

	f.zi = append(f.zi[:0], zi...)
	copy(f.state, zi)

	return nil
}

// ResetInitialConditions restores the delay line to the configured initial
// conditions (zeros if none were set).
func (f *Filter) ResetInitialConditions() {
	f.loadInitialConditions()
}

func (f *Filter) loadInitialConditions() {
	if f.zi != nil {
		copy(f.state, f.zi)
		return
	}

	for i := range f.state {
		f.state[i] = 0
	}
}

// Clone returns a deep copy; the original and the copy evolve
// independently.
func (f *Filter) Clone() *Filter {
	if !f.initialized {
		return &Filter{}
	}

	out := &Filter{
		b:           append([]float64{}, f.b...),
		a:           append([]float64{}, f.a...),
		mode:        f.mode,
		zeroPhase:   f.zeroPhase,
		state:       append([]float64{}, f.state...),
		initialized: true,
	}
	if f.zi != nil {
		out.zi = append([]float64{}, f.zi...)
	}

	return out
}

// Order returns the filter order, max(len(B), len(A)) - 1.
func (f *Filter) Order() int {
	return len(f.state)
}

// Mode returns the configured processing mode.
func (f *Filter) Mode() core.Mode {
	return f.mode
}

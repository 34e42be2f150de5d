package iir

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Filter32 is the float32 counterpart of Filter. Coefficients are designed
// in float64 and converted at attach time; the recursion runs in float32.
type Filter32 struct {
	b []float32
	a []float32

	mode core.Mode

	state []float32
	zi    []float32

	initialized bool
}

// NewFilter32 attaches a BA representation in the given processing mode,
// converting the normalized coefficients to float32.
func NewFilter32(ba rep.BA, mode core.Mode) (*Filter32, error) {
	if err := ba.Validate(); err != nil {
		return nil, err
	}

	n := len(ba.B)
	if len(ba.A) > n {
		n = len(ba.A)
	}

	f := &Filter32{
		b:     make([]float32, n),
		a:     make([]float32, n),
		mode:  mode,
		state: make([]float32, n-1),
	}

	a0 := ba.A[0]
	for i, v := range ba.B {
		f.b[i] = float32(v / a0)
	}

	for i, v := range ba.A {
		f.a[i] = float32(v / a0)
	}

	for i := range n {
		if math.IsNaN(float64(f.b[i])) || math.IsInf(float64(f.b[i]), 0) ||
			math.IsNaN(float64(f.a[i])) || math.IsInf(float64(f.a[i]), 0) {
			return nil, ErrNotFinite
		}
	}

	f.initialized = true

	return f, nil
}

// Apply filters a block of samples. State handling follows the configured
// mode exactly as in Filter.Apply.
func (f *Filter32) Apply(x []float32) ([]float32, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}

	if f.mode == core.PostProcessing {
		f.loadInitialConditions()
	}

	y := make([]float32, len(x))
	f.process(y, x)

	return y, nil
}

func (f *Filter32) process(dst, src []float32) {
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

// SetInitialConditions seeds the delay line; the slice must have exactly
// max(len(B), len(A)) - 1 elements.
func (f *Filter32) SetInitialConditions(zi []float32) error {
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
func (f *Filter32) ResetInitialConditions() {
	f.loadInitialConditions()
}

func (f *Filter32) loadInitialConditions() {
	if f.zi != nil {
		copy(f.state, f.zi)
		return
	}

	for i := range f.state {
		f.state[i] = 0
	}
}

// Clone returns a deep copy.
func (f *Filter32) Clone() *Filter32 {
	if !f.initialized {
		return &Filter32{}
	}

	out := &Filter32{
		b:           append([]float32{}, f.b...),
		a:           append([]float32{}, f.a...),
		mode:        f.mode,
		state:       append([]float32{}, f.state...),
		initialized: true,
	}
	if f.zi != nil {
		out.zi = append([]float32{}, f.zi...)
	}

	return out
}

// Order returns the filter order.
func (f *Filter32) Order() int {
	return len(f.state)
}

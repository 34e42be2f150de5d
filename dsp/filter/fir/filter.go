package fir

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Errors returned by FIR construction and application.
var (
	// ErrNoCoefficients indicates an empty coefficient slice.
	ErrNoCoefficients = errors.New("fir: no coefficients")
	// ErrNotInitialized indicates use of a zero-value filter.
	ErrNotInitialized = errors.New("fir: filter not initialized")
	// ErrEvenTapZeroPhase indicates a zero-phase request for an even tap
	// count, whose group delay is not a whole number of samples.
	ErrEvenTapZeroPhase = errors.New("fir: zero-phase needs an odd tap count")
	// ErrRealTimeZeroPhase indicates a zero-phase request in real-time mode.
	ErrRealTimeZeroPhase = errors.New("fir: zero-phase filtering requires post-processing mode")
)

// Filter implements a direct-form FIR filter using a circular-buffer delay
// line. The delay line is owned exclusively by this instance.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
	mode   core.Mode
}

// New creates a FIR filter from the given coefficient slice in the given
// processing mode. The coefficients are copied. The filter order is
// len(coeffs)-1.
func New(coeffs []float64, mode core.Mode) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &Filter{
		coeffs: c,
		delay:  make([]float64, len(coeffs)),
		mode:   mode,
	}, nil
}

// Apply filters a block of samples and returns the output. In
// post-processing mode the delay line is cleared first; in real-time mode
// it carries over from the previous call.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	if len(f.coeffs) == 0 {
		return nil, ErrNotInitialized
	}

	if f.mode == core.PostProcessing {
		f.Reset()
	}

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = f.processSample(v)
	}

	return y, nil
}

// ApplyZeroPhase filters a block and removes the filter's group delay of
// (taps-1)/2 samples by extending the input and dropping the leading
// delay-length samples of the raw output. It needs the whole signal and an
// odd tap count, and is therefore rejected in real-time mode.
func (f *Filter) ApplyZeroPhase(x []float64) ([]float64, error) {
	if len(f.coeffs) == 0 {
		return nil, ErrNotInitialized
	}

	if f.mode == core.RealTime {
		return nil, ErrRealTimeZeroPhase
	}

	if len(f.coeffs)%2 == 0 {
		return nil, ErrEvenTapZeroPhase
	}

	groupDelay := (len(f.coeffs) - 1) / 2
	f.Reset()

	y := make([]float64, len(x))
	for i, v := range x {
		out := f.processSample(v)
		if i >= groupDelay {
			y[i-groupDelay] = out
		}
	}

	// Flush the tail with zeros so the output covers the full input span.
	for i := len(x) - groupDelay; i < len(x); i++ {
		out := f.processSample(0)
		if i >= 0 {
			y[i] = out
		}
	}

	return y, nil
}

// processSample filters one input sample using direct convolution with the
// circular delay line:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) processSample(x float64) float64 {
	f.delay[f.pos] = x

	var y float64

	n := len(f.coeffs)
	p := f.pos

	for k := range n {
		y += f.coeffs[k] * f.delay[p]

		p--
		if p < 0 {
			p = n - 1
		}
	}

	f.pos++
	if f.pos >= n {
		f.pos = 0
	}

	return y
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}

	f.pos = 0
}

// Clone returns a deep copy; the original and the copy evolve
// independently.
func (f *Filter) Clone() *Filter {
	if len(f.coeffs) == 0 {
		return &Filter{}
	}

	return &Filter{
		coeffs: append([]float64{}, f.coeffs...),
		delay:  append([]float64{}, f.delay...),
		pos:    f.pos,
		mode:   f.mode,
	}
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	return c
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

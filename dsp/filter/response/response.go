package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/dsp/polynomial"
	"github.com/cwbudde/algo-iir/dsp/spectrum"
)

// Errors returned by response evaluation.
var (
	// ErrInvalidPoints indicates a non-positive grid size.
	ErrInvalidPoints = errors.New("response: number of points must be positive")
	// ErrTooManyCoefficients indicates a transfer function longer than the
	// evaluation grid.
	ErrTooManyCoefficients = errors.New("response: transfer function longer than the evaluation grid")
)

// Freqs evaluates the analog transfer function B(s)/A(s) at s = jw for each
// angular frequency in w (rad/s). Coefficients are ordered highest power
// first.
func Freqs(ba rep.BA, w []float64) ([]complex128, error) {
	if err := ba.Validate(); err != nil {
		return nil, err
	}

	s := make([]complex128, len(w))
	for i, v := range w {
		s[i] = complex(0, v)
	}

	num, err := polynomial.PolyvalComplex(toComplex(ba.B), s)
	if err != nil {
		return nil, err
	}

	den, err := polynomial.PolyvalComplex(toComplex(ba.A), s)
	if err != nil {
		return nil, err
	}

	for i := range num {
		num[i] /= den[i]
	}

	return num, nil
}

// Freqz evaluates the digital transfer function B(z)/A(z) at z = e^{jw} for
// each normalized angular frequency in w (rad/sample, pi is Nyquist).
// Coefficients are ordered by increasing delay.
func Freqz(ba rep.BA, w []float64) ([]complex128, error) {
	if err := ba.Validate(); err != nil {
		return nil, err
	}

	h := make([]complex128, len(w))
	for i, v := range w {
		zinv := cmplx.Exp(complex(0, -v))
		h[i] = evalDelayPolynomial(ba.B, zinv) / evalDelayPolynomial(ba.A, zinv)
	}

	return h, nil
}

// FreqzN evaluates the digital transfer function on a uniform grid of n
// frequencies covering [0, pi). It returns the complex response and the
// grid itself, computed with a single FFT of the zero-padded numerator and
// denominator. n should be a power of two for the fastest transform.
func FreqzN(ba rep.BA, n int) ([]complex128, []float64, error) {
	if err := ba.Validate(); err != nil {
		return nil, nil, err
	}

	if n < 1 {
		return nil, nil, ErrInvalidPoints
	}

	size := 2 * n
	if len(ba.B) > size || len(ba.A) > size {
		return nil, nil, fmt.Errorf("%w: %d taps on %d points", ErrTooManyCoefficients, max(len(ba.B), len(ba.A)), n)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("response: fft plan: %w", err)
	}

	num, err := transformPadded(plan, ba.B, size)
	if err != nil {
		return nil, nil, err
	}

	den, err := transformPadded(plan, ba.A, size)
	if err != nil {
		return nil, nil, err
	}

	h := make([]complex128, n)
	w := make([]float64, n)

	for k := range h {
		h[k] = num[k] / den[k]
		w[k] = math.Pi * float64(k) / float64(n)
	}

	return h, w, nil
}

// SOSFreqz evaluates a second-order-section cascade at z = e^{jw} for each
// normalized angular frequency in w (rad/sample). The response is the
// product of the per-section responses.
func SOSFreqz(sos rep.SOS, w []float64) ([]complex128, error) {
	if len(sos.Sections) == 0 {
		return nil, rep.ErrNoSections
	}

	h := make([]complex128, len(w))
	for i, v := range w {
		zinv := cmplx.Exp(complex(0, -v))
		acc := complex(1, 0)

		for _, s := range sos.Sections {
			num := complex(s.B0, 0) + zinv*(complex(s.B1, 0)+zinv*complex(s.B2, 0))
			den := complex(s.A0, 0) + zinv*(complex(s.A1, 0)+zinv*complex(s.A2, 0))
			acc *= num / den
		}

		h[i] = acc
	}

	return h, nil
}

// MagnitudeDB converts a complex response to magnitude in dB. Zero
// magnitude maps to -Inf.
func MagnitudeDB(h []complex128) []float64 {
	mag := spectrum.Magnitude(h)
	for i, v := range mag {
		mag[i] = 20 * math.Log10(v)
	}

	return mag
}

// GroupDelay computes the group delay in samples of a response sampled on a
// uniform grid over [0, pi), such as the output of FreqzN.
func GroupDelay(h []complex128) ([]float64, error) {
	if len(h) < 2 {
		return nil, ErrInvalidPoints
	}

	unwrapped := spectrum.UnwrapPhase(spectrum.Phase(h))

	return spectrum.GroupDelay(unwrapped, math.Pi/float64(len(h)))
}

// evalDelayPolynomial evaluates sum c[k] * z^{-k} given z^{-1}.
func evalDelayPolynomial(c []float64, zinv complex128) complex128 {
	acc := complex(c[len(c)-1], 0)
	for k := len(c) - 2; k >= 0; k-- {
		acc = acc*zinv + complex(c[k], 0)
	}

	return acc
}

func transformPadded(plan *algofft.Plan[complex128], c []float64, size int) ([]complex128, error) {
	in := make([]complex128, size)
	for i, v := range c {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	return out, nil
}

func toComplex(c []float64) []complex128 {
	out := make([]complex128, len(c))
	for i, v := range c {
		out[i] = complex(v, 0)
	}

	return out
}

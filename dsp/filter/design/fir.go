package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/window"
)

// ErrInvalidTaps indicates a FIR length below two coefficients.
var ErrInvalidTaps = errors.New("design: fir needs at least two taps")

type firConfig struct {
	window window.Type
}

// FIROption configures a windowed-sinc FIR design.
type FIROption func(*firConfig)

// WithWindow selects the taper applied to the ideal impulse response.
// Default Hamming.
func WithWindow(t window.Type) FIROption {
	return func(cfg *firConfig) { cfg.window = t }
}

// FIRWindow designs a linear-phase lowpass FIR filter with the given number
// of taps and a cutoff normalized to the Nyquist frequency (0 < cutoff < 1).
// The ideal sinc response is tapered by the window and normalized to unity
// DC gain. The group delay is (taps-1)/2 samples.
func FIRWindow(taps int, cutoff float64, opts ...FIROption) ([]float64, error) {
	if taps < 2 {
		return nil, ErrInvalidTaps
	}

	if cutoff <= 0 || cutoff >= 1 {
		return nil, fmt.Errorf("%w: cutoff %v not in (0, 1)", ErrFrequencyRange, cutoff)
	}

	cfg := firConfig{window: window.TypeHamming}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	w, err := window.Generate(cfg.window, taps)
	if err != nil {
		return nil, err
	}

	h := make([]float64, taps)
	center := float64(taps-1) / 2

	for i := range h {
		k := float64(i) - center
		if k == 0 {
			h[i] = cutoff
		} else {
			h[i] = math.Sin(math.Pi*cutoff*k) / (math.Pi * k)
		}
	}

	if err := window.ApplyInPlace(h, w); err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range h {
		sum += v
	}

	for i := range h {
		h[i] /= sum
	}

	return h, nil
}

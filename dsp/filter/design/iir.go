package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/design/proto"
	"github.com/cwbudde/algo-iir/dsp/filter/design/xform"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Band selects the target frequency band.
type Band int

const (
	Lowpass Band = iota
	Highpass
	Bandpass
	Bandstop
)

// Prototype selects the analog prototype family.
type Prototype int

const (
	Butterworth Prototype = iota
	Chebyshev1
	Chebyshev2
	Bessel
)

// Errors returned by the design facade.
var (
	// ErrInvalidOrder indicates a non-positive filter order.
	ErrInvalidOrder = errors.New("design: order must be positive")
	// ErrFrequencyCount indicates the wrong number of critical frequencies
	// for the requested band.
	ErrFrequencyCount = errors.New("design: wrong number of critical frequencies")
	// ErrFrequencyRange indicates critical frequencies outside the valid
	// range or out of order.
	ErrFrequencyRange = errors.New("design: critical frequency out of range")
	// ErrRippleRequired indicates a Chebyshev design without a positive
	// ripple/attenuation value.
	ErrRippleRequired = errors.New("design: chebyshev designs need a positive ripple")
)

type config struct {
	prototype  Prototype
	rippleDB   float64
	analog     bool
	sampleRate float64
}

// Option configures an IIR design.
type Option func(*config)

// WithPrototype selects the analog prototype family. Default Butterworth.
func WithPrototype(p Prototype) Option {
	return func(cfg *config) { cfg.prototype = p }
}

// WithRipple sets the passband ripple (Chebyshev I) or stopband attenuation
// (Chebyshev II) in dB. Required for, and only meaningful with, the
// Chebyshev prototypes.
func WithRipple(db float64) Option {
	return func(cfg *config) { cfg.rippleDB = db }
}

// WithAnalog designs an analog filter; critical frequencies are then
// angular frequencies in rad/s and no bilinear transform is applied.
func WithAnalog() Option {
	return func(cfg *config) { cfg.analog = true }
}

// WithSampleRate interprets critical frequencies in Hz relative to the
// given sample rate instead of as Nyquist-normalized values.
func WithSampleRate(fs float64) Option {
	return func(cfg *config) {
		if fs > 0 {
			cfg.sampleRate = fs
		}
	}
}

// IIR designs an order-n filter for the given band and critical frequencies
// and returns it in zero-pole-gain form. Lowpass and highpass take one
// critical frequency, bandpass and bandstop two in ascending order.
func IIR(order int, band Band, freqs []float64, opts ...Option) (rep.ZPK, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	warped, fs, err := validateAndWarp(order, band, freqs, cfg)
	if err != nil {
		return rep.ZPK{}, err
	}

	zpk, err := analogPrototype(order, cfg)
	if err != nil {
		return rep.ZPK{}, err
	}

	switch band {
	case Lowpass:
		zpk, err = xform.LP2LP(zpk, warped[0])
	case Highpass:
		zpk, err = xform.LP2HP(zpk, warped[0])
	case Bandpass:
		bw := warped[1] - warped[0]
		w0 := math.Sqrt(warped[0] * warped[1])
		zpk, err = xform.LP2BP(zpk, w0, bw)
	case Bandstop:
		bw := warped[1] - warped[0]
		w0 := math.Sqrt(warped[0] * warped[1])
		zpk, err = xform.LP2BS(zpk, w0, bw)
	}

	if err != nil {
		return rep.ZPK{}, err
	}

	if cfg.analog {
		return zpk, nil
	}

	return xform.Bilinear(zpk, fs)
}

// IIRTF designs a filter like IIR and returns transfer-function
// coefficients.
func IIRTF(order int, band Band, freqs []float64, opts ...Option) (rep.BA, error) {
	zpk, err := IIR(order, band, freqs, opts...)
	if err != nil {
		return rep.BA{}, err
	}

	return rep.ZPK2TF(zpk), nil
}

// IIRSOS designs a filter like IIR and returns cascaded second-order
// sections, paired with rep.PairNearest.
func IIRSOS(order int, band Band, freqs []float64, opts ...Option) (rep.SOS, error) {
	zpk, err := IIR(order, band, freqs, opts...)
	if err != nil {
		return rep.SOS{}, err
	}

	return rep.ZPK2SOS(zpk, rep.PairNearest)
}

// Butter designs a Butterworth filter in zero-pole-gain form.
func Butter(order int, band Band, freqs []float64, opts ...Option) (rep.ZPK, error) {
	return IIR(order, band, freqs, append(opts, WithPrototype(Butterworth))...)
}

// Cheby1 designs a Chebyshev Type I filter with rippleDB passband ripple.
func Cheby1(order int, rippleDB float64, band Band, freqs []float64, opts ...Option) (rep.ZPK, error) {
	return IIR(order, band, freqs,
		append(opts, WithPrototype(Chebyshev1), WithRipple(rippleDB))...)
}

// Cheby2 designs a Chebyshev Type II filter with attenDB stopband
// attenuation.
func Cheby2(order int, attenDB float64, band Band, freqs []float64, opts ...Option) (rep.ZPK, error) {
	return IIR(order, band, freqs,
		append(opts, WithPrototype(Chebyshev2), WithRipple(attenDB))...)
}

// BesselThomson designs a Bessel (Thomson) filter in zero-pole-gain form.
func BesselThomson(order int, band Band, freqs []float64, opts ...Option) (rep.ZPK, error) {
	return IIR(order, band, freqs, append(opts, WithPrototype(Bessel))...)
}

// validateAndWarp checks order, band edge count and range, and returns the
// pre-warped analog frequencies together with the digital sample rate.
func validateAndWarp(order int, band Band, freqs []float64, cfg config) ([]float64, float64, error) {
	if order <= 0 {
		return nil, 0, ErrInvalidOrder
	}

	want := 1
	if band == Bandpass || band == Bandstop {
		want = 2
	}

	if len(freqs) != want {
		return nil, 0, fmt.Errorf("%w: band %d needs %d, got %d",
			ErrFrequencyCount, band, want, len(freqs))
	}

	if want == 2 && freqs[0] >= freqs[1] {
		return nil, 0, fmt.Errorf("%w: edges must be ascending", ErrFrequencyRange)
	}

	if (cfg.prototype == Chebyshev1 || cfg.prototype == Chebyshev2) && cfg.rippleDB <= 0 {
		return nil, 0, ErrRippleRequired
	}

	if cfg.analog {
		for _, f := range freqs {
			if f <= 0 {
				return nil, 0, fmt.Errorf("%w: %v", ErrFrequencyRange, f)
			}
		}

		return append([]float64{}, freqs...), 0, nil
	}

	// Digital: normalize to (0, 1) against Nyquist and pre-warp so the
	// bilinear transform lands the band edges exactly.
	fs := 2.0
	nyquist := 1.0

	if cfg.sampleRate > 0 {
		fs = cfg.sampleRate
		nyquist = fs / 2
	}

	warped := make([]float64, len(freqs))
	for i, f := range freqs {
		if f <= 0 || f >= nyquist {
			return nil, 0, fmt.Errorf("%w: %v not in (0, %v)", ErrFrequencyRange, f, nyquist)
		}

		warped[i] = 2 * fs * math.Tan(math.Pi*f/fs)
	}

	return warped, fs, nil
}

func analogPrototype(order int, cfg config) (rep.ZPK, error) {
	switch cfg.prototype {
	case Chebyshev1:
		return proto.Chebyshev1(order, cfg.rippleDB)
	case Chebyshev2:
		return proto.Chebyshev2(order, cfg.rippleDB)
	case Bessel:
		return proto.Bessel(order)
	default:
		return proto.Butterworth(order)
	}
}

package xform

import (
	"errors"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Errors returned by band transforms.
var (
	// ErrEmptyPrototype indicates a prototype without poles.
	ErrEmptyPrototype = errors.New("xform: prototype has no poles")
	// ErrInvalidFrequency indicates a non-positive critical frequency.
	ErrInvalidFrequency = errors.New("xform: critical frequency must be positive")
	// ErrInvalidBandwidth indicates a non-positive bandwidth.
	ErrInvalidBandwidth = errors.New("xform: bandwidth must be positive")
)

// LP2LP scales a normalized lowpass prototype to cutoff w0 (rad/s).
func LP2LP(z rep.ZPK, w0 float64) (rep.ZPK, error) {
	if err := validate(z, w0); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(z.Poles) - len(z.Zeros)
	out := rep.ZPK{
		Zeros: scaleAll(z.Zeros, w0),
		Poles: scaleAll(z.Poles, w0),
		Gain:  z.Gain,
	}

	for range degree {
		out.Gain *= w0
	}

	return out, nil
}

// LP2HP transforms a normalized lowpass prototype to a highpass filter with
// cutoff w0 via s -> w0/s. Prototype zeros at infinity map to the origin.
func LP2HP(z rep.ZPK, w0 float64) (rep.ZPK, error) {
	if err := validate(z, w0); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(z.Poles) - len(z.Zeros)

	out := rep.ZPK{
		Zeros: invertAll(z.Zeros, w0),
		Poles: invertAll(z.Poles, w0),
	}

	// Cancellation of the s^degree factors leaves prod(-z)/prod(-p).
	num := complex(1, 0)
	for _, zero := range z.Zeros {
		num *= -zero
	}

	den := complex(1, 0)
	for _, pole := range z.Poles {
		den *= -pole
	}

	out.Gain = z.Gain * real(num/den)

	for range degree {
		out.Zeros = append(out.Zeros, 0)
	}

	return out, nil
}

// LP2BP transforms a normalized lowpass prototype to a bandpass filter with
// center frequency w0 and bandwidth bw. Each root r maps to the two
// solutions of s^2 - (r*bw)*s + w0^2 = 0, doubling the order; prototype
// zeros at infinity map to the origin.
func LP2BP(z rep.ZPK, w0, bw float64) (rep.ZPK, error) {
	if err := validateBand(z, w0, bw); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(z.Poles) - len(z.Zeros)

	out := rep.ZPK{
		Zeros: bandpassRoots(z.Zeros, w0, bw),
		Poles: bandpassRoots(z.Poles, w0, bw),
		Gain:  z.Gain,
	}

	for range degree {
		out.Zeros = append(out.Zeros, 0)
		out.Gain *= bw
	}

	return out, nil
}

// LP2BS transforms a normalized lowpass prototype to a bandstop filter with
// center frequency w0 and bandwidth bw. The construction is dual to LP2BP;
// the added zeros sit on the imaginary axis at +/- j*w0.
func LP2BS(z rep.ZPK, w0, bw float64) (rep.ZPK, error) {
	if err := validateBand(z, w0, bw); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(z.Poles) - len(z.Zeros)

	// Invert first (s -> bw/2/s), then split each root into the band pair.
	zinv := invertAll(z.Zeros, bw/2)
	pinv := invertAll(z.Poles, bw/2)

	out := rep.ZPK{
		Zeros: splitRoots(zinv, w0),
		Poles: splitRoots(pinv, w0),
	}

	num := complex(1, 0)
	for _, zero := range z.Zeros {
		num *= -zero
	}

	den := complex(1, 0)
	for _, pole := range z.Poles {
		den *= -pole
	}

	out.Gain = z.Gain * real(num/den)

	for range degree {
		out.Zeros = append(out.Zeros, complex(0, w0), complex(0, -w0))
	}

	return out, nil
}

func validate(z rep.ZPK, w0 float64) error {
	if len(z.Poles) == 0 {
		return ErrEmptyPrototype
	}

	if w0 <= 0 {
		return ErrInvalidFrequency
	}

	return nil
}

func validateBand(z rep.ZPK, w0, bw float64) error {
	if err := validate(z, w0); err != nil {
		return err
	}

	if bw <= 0 {
		return ErrInvalidBandwidth
	}

	return nil
}

func scaleAll(roots []complex128, w0 float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * complex(w0, 0)
	}

	return out
}

func invertAll(roots []complex128, w0 float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = complex(w0, 0) / r
	}

	return out
}

// bandpassRoots scales each root by bw/2 and splits it into the conjugate
// band pair r +/- sqrt(r^2 - w0^2).
func bandpassRoots(roots []complex128, w0, bw float64) []complex128 {
	scaled := scaleAll(roots, bw/2)

	return splitRoots(scaled, w0)
}

// splitRoots maps each root r to the pair r +/- sqrt(r^2 - w0^2), the two
// solutions of s^2 - 2r*s + w0^2 = 0.
func splitRoots(roots []complex128, w0 float64) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	w02 := complex(w0*w0, 0)

	for _, r := range roots {
		d := cmplx.Sqrt(r*r - w02)
		out = append(out, r+d, r-d)
	}

	return out
}

package xform

import (
	"errors"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Errors returned by the bilinear transform.
var (
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("xform: sample rate must be positive")
	// ErrTooManyZeros indicates an analog filter with more zeros than poles,
	// which has no causal digital equivalent.
	ErrTooManyZeros = errors.New("xform: zero count exceeds pole count")
)

// Bilinear maps an analog zero-pole-gain filter to the digital z-plane via
// the Tustin substitution z = (2fs + s) / (2fs - s). Analog zeros at
// infinity map to the Nyquist frequency, so the digital zero set is padded
// at z = -1 until it matches the pole count. The gain is corrected by the
// value of the substitution at s = 0.
//
// Critical frequencies must be pre-warped by the caller for the digital
// response to match the analog one at the design frequency.
func Bilinear(z rep.ZPK, fs float64) (rep.ZPK, error) {
	if len(z.Poles) == 0 {
		return rep.ZPK{}, ErrEmptyPrototype
	}

	if fs <= 0 {
		return rep.ZPK{}, ErrInvalidSampleRate
	}

	if len(z.Zeros) > len(z.Poles) {
		return rep.ZPK{}, ErrTooManyZeros
	}

	fs2 := complex(2*fs, 0)
	degree := len(z.Poles) - len(z.Zeros)

	out := rep.ZPK{
		Zeros: make([]complex128, 0, len(z.Poles)),
		Poles: make([]complex128, len(z.Poles)),
	}

	// Gain correction: H_d(1) alignment via prod(2fs - z) / prod(2fs - p).
	num := complex(1, 0)

	for _, zero := range z.Zeros {
		out.Zeros = append(out.Zeros, (fs2+zero)/(fs2-zero))
		num *= fs2 - zero
	}

	den := complex(1, 0)

	for i, pole := range z.Poles {
		out.Poles[i] = (fs2 + pole) / (fs2 - pole)
		den *= fs2 - pole
	}

	for range degree {
		out.Zeros = append(out.Zeros, -1)
	}

	out.Gain = z.Gain * real(num/den)

	return out, nil
}

package proto

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Chebyshev2 returns the order-n normalized Chebyshev Type II (inverse
// Chebyshev) lowpass prototype with attenDB of stopband attenuation. The
// zeros sit on the imaginary axis; the poles are the reciprocals of a Type I
// pole set built from eps = 1/sqrt(10^(attenDB/10) - 1).
func Chebyshev2(n int, attenDB float64) (rep.ZPK, error) {
	if n <= 0 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	if attenDB <= 0 {
		return rep.ZPK{}, ErrInvalidRipple
	}

	eps := 1 / math.Sqrt(core.DBPowerToLinear(attenDB)-1)
	mu := math.Asinh(1/eps) / float64(n)
	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	// Zeros on the imaginary axis at +/- j/sin(theta); the middle angle of
	// an odd order would put a zero at infinity and is skipped.
	zeros := make([]complex128, 0, n)
	poles := make([]complex128, n)

	for k := range n {
		theta := math.Pi * float64(2*k-n+1) / float64(2*n)

		if s := math.Sin(theta); s != 0 {
			zeros = append(zeros, complex(0, -1/s))
		}

		// Type I pole, then reciprocal.
		p := complex(-sinhMu*math.Cos(theta), -coshMu*math.Sin(theta))
		poles[k] = 1 / p
	}

	num := complex(1, 0)
	for _, z := range zeros {
		num *= -z
	}

	den := complex(1, 0)
	for _, p := range poles {
		den *= -p
	}

	return rep.ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  real(den / num),
	}, nil
}

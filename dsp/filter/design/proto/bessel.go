package proto

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/dsp/polynomial"
)

// maxBesselOrder bounds the reverse Bessel polynomial expansion; beyond this
// the coefficient magnitudes degrade the root conditioning.
const maxBesselOrder = 25

// ErrBesselOrder indicates an order outside the supported 1..25 range.
var ErrBesselOrder = errors.New("proto: bessel order must be between 1 and 25")

// Bessel returns the order-n normalized Bessel (Thomson) lowpass prototype.
// The poles are the roots of the degree-n reverse Bessel polynomial, scaled
// so the -3 dB point falls at 1 rad/s. The filter has no zeros and unity DC
// gain. Supported orders are 1 through 25.
func Bessel(n int) (rep.ZPK, error) {
	if n <= 0 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	if n > maxBesselOrder {
		return rep.ZPK{}, ErrBesselOrder
	}

	poles, err := polynomial.Roots(reverseBessel(n))
	if err != nil {
		return rep.ZPK{}, fmt.Errorf("proto: bessel roots: %w", err)
	}

	// Scale the pole set so |H(j*1)| = 1/sqrt(2).
	w3 := besselHalfPowerFrequency(poles)
	for i := range poles {
		poles[i] /= complex(w3, 0)
	}

	gain := complex(1, 0)
	for _, p := range poles {
		gain *= -p
	}

	return rep.ZPK{Poles: poles, Gain: real(gain)}, nil
}

// reverseBessel returns the coefficients of the degree-n reverse Bessel
// polynomial, highest power first:
//
//	theta_n(s) = sum_k (2n-k)! / (2^(n-k) k! (n-k)!) * s^k
//
// The coefficients are built with the term ratio recurrence to avoid the
// factorial overflow of a direct evaluation.
func reverseBessel(n int) []float64 {
	coeffs := make([]float64, n+1)

	// a_0 = (2n-1)!!, then a_{k+1} = a_k * 2(n-k) / ((2n-k)(k+1)).
	a := 1.0
	for i := 1; i < 2*n; i += 2 {
		a *= float64(i)
	}

	coeffs[n] = a
	for k := 0; k < n; k++ {
		a *= 2 * float64(n-k) / (float64(2*n-k) * float64(k+1))
		coeffs[n-k-1] = a
	}

	return coeffs
}

// besselHalfPowerFrequency finds the frequency where the all-pole transfer
// function built from the given poles drops to 1/sqrt(2) of its DC value,
// by bisection on the monotone magnitude response.
func besselHalfPowerFrequency(poles []complex128) float64 {
	target := 1 / math.Sqrt2

	mag := func(w float64) float64 {
		num := 1.0
		den := 1.0

		for _, p := range poles {
			num *= cmplx.Abs(p)
			den *= cmplx.Abs(complex(0, w) - p)
		}

		return num / den
	}

	lo, hi := 0.0, 1.0
	for mag(hi) > target {
		lo = hi
		hi *= 2
	}

	for range 200 {
		mid := (lo + hi) / 2
		if mag(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

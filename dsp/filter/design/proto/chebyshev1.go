package proto

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Chebyshev1 returns the order-n normalized Chebyshev Type I lowpass
// prototype with rippleDB of passband ripple. The poles lie on an ellipse
// derived from eps = sqrt(10^(rippleDB/10) - 1); there are no zeros. The
// gain is normalized so the DC response is unity for odd orders and
// 1/sqrt(1+eps^2) (unity minus ripple) for even orders.
func Chebyshev1(n int, rippleDB float64) (rep.ZPK, error) {
	if n <= 0 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	if rippleDB <= 0 {
		return rep.ZPK{}, ErrInvalidRipple
	}

	eps := math.Sqrt(core.DBPowerToLinear(rippleDB) - 1)
	mu := math.Asinh(1/eps) / float64(n)
	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	poles := make([]complex128, n)
	gain := complex(1, 0)

	for k := range n {
		theta := math.Pi * float64(2*k-n+1) / float64(2*n)
		p := complex(-sinhMu*math.Cos(theta), -coshMu*math.Sin(theta))
		poles[k] = p
		gain *= -p
	}

	k := real(gain)
	if n%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}

	return rep.ZPK{Poles: poles, Gain: k}, nil
}

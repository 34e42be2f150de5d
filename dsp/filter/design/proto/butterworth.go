package proto

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

// Errors returned by prototype generators.
var (
	// ErrInvalidOrder indicates a non-positive filter order.
	ErrInvalidOrder = errors.New("proto: order must be positive")
	// ErrInvalidRipple indicates a non-positive ripple or attenuation value.
	ErrInvalidRipple = errors.New("proto: ripple must be positive")
)

// Butterworth returns the order-n normalized Butterworth lowpass prototype:
// n poles equally spaced on the left half of the unit circle at angles
// pi*(2k+n+1)/(2n), no zeros, unit gain.
func Butterworth(n int) (rep.ZPK, error) {
	if n <= 0 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	poles := make([]complex128, n)
	for k := range n {
		theta := math.Pi * float64(2*k+n+1) / float64(2*n)
		poles[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return rep.ZPK{Poles: poles, Gain: 1}, nil
}

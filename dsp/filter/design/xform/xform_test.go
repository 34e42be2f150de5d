package xform

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/design/proto"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
)

func analogMagnitude(z rep.ZPK, w float64) float64 {
	h := complex(z.Gain, 0)
	s := complex(0, w)

	for _, zero := range z.Zeros {
		h *= s - zero
	}

	for _, pole := range z.Poles {
		h /= s - pole
	}

	return cmplx.Abs(h)
}

func digitalMagnitude(z rep.ZPK, w float64) float64 {
	h := complex(z.Gain, 0)
	e := cmplx.Exp(complex(0, w))

	for _, zero := range z.Zeros {
		h *= e - zero
	}

	for _, pole := range z.Poles {
		h /= e - pole
	}

	return cmplx.Abs(h)
}

func TestLP2LP(t *testing.T) {
	p, err := proto.Butterworth(3)
	require.NoError(t, err)

	lp, err := LP2LP(p, 10)
	require.NoError(t, err)
	require.Len(t, lp.Poles, 3)

	assert.InDelta(t, 1, analogMagnitude(lp, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, analogMagnitude(lp, 10), 1e-12)
	assert.Less(t, analogMagnitude(lp, 100), 1e-2)
}

func TestLP2HP(t *testing.T) {
	p, err := proto.Butterworth(4)
	require.NoError(t, err)

	hp, err := LP2HP(p, 5)
	require.NoError(t, err)
	require.Len(t, hp.Poles, 4)
	require.Len(t, hp.Zeros, 4)

	// All added zeros sit at the origin.
	for _, z := range hp.Zeros {
		assert.Equal(t, complex128(0), z)
	}

	assert.InDelta(t, 0, analogMagnitude(hp, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, analogMagnitude(hp, 5), 1e-10)
	assert.InDelta(t, 1, analogMagnitude(hp, 5000), 1e-6)
}

func TestLP2BP(t *testing.T) {
	p, err := proto.Butterworth(2)
	require.NoError(t, err)

	bp, err := LP2BP(p, 10, 2)
	require.NoError(t, err)
	require.Len(t, bp.Poles, 4)
	require.Len(t, bp.Zeros, 2)

	// Unity at the center, -3 dB at the band edges, dead at DC.
	assert.InDelta(t, 1, analogMagnitude(bp, 10), 1e-9)
	assert.InDelta(t, 0, analogMagnitude(bp, 0), 1e-12)

	// Geometric symmetry: edges at w0 +/- bw/2 in the narrowband sense use
	// we*wl = w0^2.
	wl := -1.0 + math.Sqrt(1+100) // solves wu - wl = bw with wu*wl = w0^2
	wu := wl + 2
	assert.InDelta(t, 1/math.Sqrt2, analogMagnitude(bp, wl), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, analogMagnitude(bp, wu), 1e-9)
}

func TestLP2BS(t *testing.T) {
	p, err := proto.Butterworth(2)
	require.NoError(t, err)

	bs, err := LP2BS(p, 10, 2)
	require.NoError(t, err)
	require.Len(t, bs.Poles, 4)
	require.Len(t, bs.Zeros, 4)

	// Zeros on the imaginary axis at +/- j*w0.
	for _, z := range bs.Zeros {
		assert.InDelta(t, 0, real(z), 1e-12)
		assert.InDelta(t, 10, math.Abs(imag(z)), 1e-9)
	}

	assert.InDelta(t, 0, analogMagnitude(bs, 10), 1e-12)
	assert.InDelta(t, 1, analogMagnitude(bs, 0), 1e-9)
	assert.InDelta(t, 1, analogMagnitude(bs, 1e6), 1e-6)
}

func TestTransformValidation(t *testing.T) {
	p, err := proto.Butterworth(2)
	require.NoError(t, err)

	_, err = LP2LP(rep.ZPK{}, 1)
	require.ErrorIs(t, err, ErrEmptyPrototype)

	_, err = LP2LP(p, 0)
	require.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = LP2BP(p, 10, 0)
	require.ErrorIs(t, err, ErrInvalidBandwidth)

	_, err = LP2BS(p, -1, 1)
	require.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestBilinearMapsStability(t *testing.T) {
	p, err := proto.Butterworth(4)
	require.NoError(t, err)

	// Pre-warped cutoff for 0.5*Nyquist at fs = 2.
	warped := 2 * 2 * math.Tan(math.Pi*0.5/2)

	lp, err := LP2LP(p, warped)
	require.NoError(t, err)

	dig, err := Bilinear(lp, 2)
	require.NoError(t, err)
	require.Len(t, dig.Poles, 4)
	require.Len(t, dig.Zeros, 4)

	// Stable: all poles strictly inside the unit circle. Zeros padded at -1.
	for _, pole := range dig.Poles {
		assert.Less(t, cmplx.Abs(pole), 1.0)
	}

	for _, zero := range dig.Zeros {
		assert.InDelta(t, -1, real(zero), 1e-12)
		assert.InDelta(t, 0, imag(zero), 1e-12)
	}

	// The design frequency maps exactly under pre-warping.
	assert.InDelta(t, 1, digitalMagnitude(dig, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, digitalMagnitude(dig, math.Pi/2), 1e-10)
}

func TestBilinearValidation(t *testing.T) {
	_, err := Bilinear(rep.ZPK{}, 2)
	require.ErrorIs(t, err, ErrEmptyPrototype)

	_, err = Bilinear(rep.ZPK{Poles: []complex128{-1}}, 0)
	require.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = Bilinear(rep.ZPK{Zeros: []complex128{1, 2}, Poles: []complex128{-1}}, 2)
	require.ErrorIs(t, err, ErrTooManyZeros)
}

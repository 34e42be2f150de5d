package rep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

func TestTF2ZPKKnownRoots(t *testing.T) {
	// (z-1)(z-2) over (z+0.5)^2.
	ba := rep.BA{
		B: []float64{2, -6, 4},
		A: []float64{1, 1, 0.25},
	}

	z, err := rep.TF2ZPK(ba)
	require.NoError(t, err)

	testutil.RequireComplexNear(t, z.Zeros, []complex128{1, 2}, 1e-10)
	testutil.RequireComplexNear(t, z.Poles, []complex128{-0.5, -0.5}, 1e-7)
	assert.InDelta(t, 2, z.Gain, 1e-12)
}

func TestTF2ZPKValidation(t *testing.T) {
	_, err := rep.TF2ZPK(rep.BA{})
	require.ErrorIs(t, err, rep.ErrEmptyCoefficients)

	_, err = rep.TF2ZPK(rep.BA{B: []float64{1}, A: []float64{0, 1}})
	require.ErrorIs(t, err, rep.ErrZeroLeadingCoefficient)

	_, err = rep.TF2ZPK(rep.BA{B: []float64{0, 1}, A: []float64{1}})
	require.ErrorIs(t, err, rep.ErrZeroLeadingCoefficient)
}

func TestZPK2TFRoundTrip(t *testing.T) {
	z := rep.ZPK{
		Zeros: []complex128{complex(0.5, 0.5), complex(0.5, -0.5)},
		Poles: []complex128{complex(-0.25, 0.75), complex(-0.25, -0.75)},
		Gain:  3,
	}

	ba := rep.ZPK2TF(z)
	require.NoError(t, ba.Validate())
	assert.InDelta(t, 3, ba.B[0], 1e-12)
	assert.InDelta(t, 1, ba.A[0], 1e-12)

	back, err := rep.TF2ZPK(ba)
	require.NoError(t, err)

	testutil.RequireComplexNear(t, back.Zeros, z.Zeros, 1e-9)
	testutil.RequireComplexNear(t, back.Poles, z.Poles, 1e-9)
	assert.InDelta(t, z.Gain, back.Gain, 1e-9)
}

func TestSOS2TFSingleSection(t *testing.T) {
	sos := rep.SOS{Sections: []rep.Section{
		{B0: 2, B1: 1, B2: 0.5, A0: 1, A1: -0.3, A2: 0.02},
	}}

	ba, err := rep.SOS2TF(sos)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0.5}, ba.B)
	assert.Equal(t, []float64{1, -0.3, 0.02}, ba.A)
}

func TestSOS2TFCascade(t *testing.T) {
	sos := rep.SOS{Sections: []rep.Section{
		{B0: 1, B1: 1, A0: 1, A1: -0.5},
		{B0: 1, B1: -1, A0: 1, A1: 0.5},
	}}

	ba, err := rep.SOS2TF(sos)
	require.NoError(t, err)

	// First-order sections convolve into (1+z^-1)(1-z^-1) = 1 - z^-2.
	testutil.RequireSliceNear(t, ba.B, []float64{1, 0, -1}, 1e-15)
	testutil.RequireSliceNear(t, ba.A, []float64{1, 0, -0.25}, 1e-15)
}

func TestSOS2TFEmpty(t *testing.T) {
	_, err := rep.SOS2TF(rep.SOS{})
	require.ErrorIs(t, err, rep.ErrNoSections)
}

func TestClonesAreIndependent(t *testing.T) {
	z := rep.ZPK{Zeros: []complex128{1}, Poles: []complex128{0.5}, Gain: 2}
	c := z.Clone()
	c.Zeros[0] = -1
	assert.Equal(t, complex128(1), z.Zeros[0])

	ba := rep.BA{B: []float64{1, 2}, A: []float64{1}}
	cb := ba.Clone()
	cb.B[0] = 7
	assert.Equal(t, 1.0, ba.B[0])
}

package iir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

func TestSOSFilterMatchesBAFilter(t *testing.T) {
	sos, err := design.IIRSOS(6, design.Lowpass, []float64{0.3})
	require.NoError(t, err)

	ba, err := rep.SOS2TF(sos)
	require.NoError(t, err)

	fs, err := NewSOSFilter(sos, core.PostProcessing)
	require.NoError(t, err)
	assert.Equal(t, 3, fs.NumSections())

	fb, err := NewFilter(ba, core.PostProcessing)
	require.NoError(t, err)

	x := testutil.Noise(11, 512)

	ys, err := fs.Apply(x)
	require.NoError(t, err)

	yb, err := fb.Apply(x)
	require.NoError(t, err)

	// Same transfer function, different state arithmetic.
	testutil.RequireSliceNear(t, ys, yb, 1e-9)
}

func TestSOSFilterRealTimeChunks(t *testing.T) {
	sos, err := design.IIRSOS(4, design.Bandpass, []float64{0.2, 0.5})
	require.NoError(t, err)

	x := testutil.Noise(13, 300)

	ref, err := NewSOSFilter(sos, core.PostProcessing)
	require.NoError(t, err)

	want, err := ref.Apply(x)
	require.NoError(t, err)

	for _, chunk := range []int{1, 7, 50, 300} {
		f, err := NewSOSFilter(sos, core.RealTime)
		require.NoError(t, err)

		var got []float64

		for start := 0; start < len(x); start += chunk {
			end := min(start+chunk, len(x))

			y, err := f.Apply(x[start:end])
			require.NoError(t, err)

			got = append(got, y...)
		}

		testutil.RequireSliceNear(t, got, want, 1e-12)
	}
}

func TestSOSFilterZeroPhaseSymmetry(t *testing.T) {
	sos, err := design.IIRSOS(4, design.Lowpass, []float64{0.25})
	require.NoError(t, err)

	f, err := NewSOSFilter(sos, core.PostProcessing, WithSOSZeroPhase())
	require.NoError(t, err)

	const n = 201

	x := make([]float64, n)
	x[n/2] = 1

	y, err := f.Apply(x)
	require.NoError(t, err)

	for i := 1; i < n/4; i++ {
		assert.InDelta(t, y[n/2-i], y[n/2+i], 1e-9, "offset %d", i)
	}
}

func TestSOSFilterInitialConditions(t *testing.T) {
	sos := rep.SOS{Sections: []rep.Section{
		{B0: 1, A0: 1, A1: -0.5},
		{B0: 1, A0: 1, A1: -0.25},
	}}

	f, err := NewSOSFilter(sos, core.PostProcessing)
	require.NoError(t, err)

	require.ErrorIs(t, f.SetInitialConditions([][2]float64{{1, 0}}), ErrInitialConditions)
	require.NoError(t, f.SetInitialConditions([][2]float64{{1, 0}, {0, 0}}))

	y, err := f.Apply([]float64{0})
	require.NoError(t, err)

	// The first section's d0 feeds straight through the second section.
	assert.InDelta(t, 1, y[0], 1e-15)
}

func TestSOSFilterValidation(t *testing.T) {
	_, err := NewSOSFilter(rep.SOS{}, core.PostProcessing)
	require.ErrorIs(t, err, ErrNoSections)

	_, err = NewSOSFilter(rep.SOS{Sections: []rep.Section{{B0: 1}}}, core.PostProcessing)
	require.ErrorIs(t, err, ErrNotFinite)

	_, err = NewSOSFilter(rep.SOS{Sections: []rep.Section{{B0: 1, A0: 1}}}, core.RealTime, WithSOSZeroPhase())
	require.ErrorIs(t, err, ErrRealTimeZeroPhase)

	var zero SOSFilter
	_, err = zero.Apply([]float64{1})
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestSOSFilterClone(t *testing.T) {
	sos, err := design.IIRSOS(4, design.Lowpass, []float64{0.3})
	require.NoError(t, err)

	f, err := NewSOSFilter(sos, core.RealTime)
	require.NoError(t, err)

	x := testutil.Noise(5, 80)

	_, err = f.Apply(x)
	require.NoError(t, err)

	c := f.Clone()

	y1, err := f.Apply(x)
	require.NoError(t, err)

	y2, err := c.Apply(x)
	require.NoError(t, err)

	testutil.RequireSliceNear(t, y2, y1, 0)
}

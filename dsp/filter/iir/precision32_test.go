package iir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

func toFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}

	return out
}

func TestFilter32TracksFilter(t *testing.T) {
	ba, err := design.IIRTF(4, design.Lowpass, []float64{0.3})
	require.NoError(t, err)

	f64, err := NewFilter(ba, core.PostProcessing)
	require.NoError(t, err)

	f32, err := NewFilter32(ba, core.PostProcessing)
	require.NoError(t, err)
	assert.Equal(t, f64.Order(), f32.Order())

	x := testutil.Noise(21, 256)

	y64, err := f64.Apply(x)
	require.NoError(t, err)

	y32, err := f32.Apply(toFloat32(x))
	require.NoError(t, err)
	require.Len(t, y32, len(y64))

	for i := range y64 {
		assert.InDelta(t, y64[i], float64(y32[i]), 1e-3, "sample %d", i)
	}
}

func TestFilter32RealTimeChunks(t *testing.T) {
	ba, err := design.IIRTF(2, design.Highpass, []float64{0.4})
	require.NoError(t, err)

	x := toFloat32(testutil.Noise(9, 200))

	ref, err := NewFilter32(ba, core.RealTime)
	require.NoError(t, err)

	want, err := ref.Apply(x)
	require.NoError(t, err)

	f, err := NewFilter32(ba, core.RealTime)
	require.NoError(t, err)

	var got []float32

	for start := 0; start < len(x); start += 33 {
		end := min(start+33, len(x))

		y, err := f.Apply(x[start:end])
		require.NoError(t, err)

		got = append(got, y...)
	}

	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i], got[i], "sample %d", i)
	}
}

func TestSOSFilter32TracksSOSFilter(t *testing.T) {
	sos, err := design.IIRSOS(6, design.Bandpass, []float64{0.2, 0.6})
	require.NoError(t, err)

	f64, err := NewSOSFilter(sos, core.PostProcessing)
	require.NoError(t, err)

	f32, err := NewSOSFilter32(sos, core.PostProcessing)
	require.NoError(t, err)
	assert.Equal(t, f64.NumSections(), f32.NumSections())

	x := testutil.Noise(33, 256)

	y64, err := f64.Apply(x)
	require.NoError(t, err)

	y32, err := f32.Apply(toFloat32(x))
	require.NoError(t, err)

	for i := range y64 {
		assert.InDelta(t, y64[i], float64(y32[i]), 1e-3, "sample %d", i)
	}
}

func TestFilter32InitialConditions(t *testing.T) {
	// y[n] = x[n] + 0.5*y[n-1].
	ba := rep.BA{B: []float64{1}, A: []float64{1, -0.5}}

	f, err := NewFilter32(ba, core.PostProcessing)
	require.NoError(t, err)

	require.ErrorIs(t, f.SetInitialConditions([]float32{1, 2}), ErrInitialConditions)
	require.NoError(t, f.SetInitialConditions([]float32{2}))

	y, err := f.Apply([]float32{1})
	require.NoError(t, err)
	assert.InDelta(t, 3, float64(y[0]), 1e-6)
}

func TestSOSFilter32Clone(t *testing.T) {
	sos, err := design.IIRSOS(4, design.Lowpass, []float64{0.35})
	require.NoError(t, err)

	f, err := NewSOSFilter32(sos, core.RealTime)
	require.NoError(t, err)

	x := toFloat32(testutil.Noise(17, 64))

	_, err = f.Apply(x)
	require.NoError(t, err)

	c := f.Clone()

	y1, err := f.Apply(x)
	require.NoError(t, err)

	y2, err := c.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, y1, y2)
}

func TestFilter32NotFinite(t *testing.T) {
	ba := rep.BA{B: []float64{math.Inf(1)}, A: []float64{1}}

	_, err := NewFilter32(ba, core.PostProcessing)
	require.ErrorIs(t, err, ErrNotFinite)
}

package resample

import (
	"errors"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Errors returned by the downsampler and decimator.
var (
	// ErrInvalidFactor indicates a downsampling factor below one.
	ErrInvalidFactor = errors.New("resample: factor must be at least 1")
	// ErrInvalidPhase indicates an initial phase outside [0, factor-1].
	ErrInvalidPhase = errors.New("resample: phase must be in [0, factor-1]")
	// ErrNotInitialized indicates use of a zero-value instance.
	ErrNotInitialized = errors.New("resample: not initialized")
)

// Downsampler retains the sample at the current phase cursor and every
// factor-th sample thereafter. The cursor is owned exclusively by this
// instance.
type Downsampler struct {
	factor int
	mode   core.Mode

	phase0 int // configured initial phase
	phase  int // current cursor, meaningful in real-time mode

	initialized bool
}

// NewDownsampler creates a downsampler for the given factor in the given
// processing mode. A factor of 1 is the identity operation.
func NewDownsampler(factor int, mode core.Mode) (*Downsampler, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	return &Downsampler{
		factor:      factor,
		mode:        mode,
		initialized: true,
	}, nil
}

// Apply downsamples a block of samples. The output length is
// floor((len(x) + factor - 1 - phase) / factor).
func (d *Downsampler) Apply(x []float64) ([]float64, error) {
	if !d.initialized {
		return nil, ErrNotInitialized
	}

	if len(x) == 0 {
		return []float64{}, nil
	}

	if d.factor == 1 {
		out := make([]float64, len(x))
		copy(out, x)

		return out, nil
	}

	phase := d.phase0
	if d.mode == core.RealTime {
		phase = d.phase
	}

	out := make([]float64, 0, d.EstimateSpace(len(x)))
	for i := phase; i < len(x); i += d.factor {
		out = append(out, x[i])
	}

	if d.mode == core.RealTime {
		// Cursor position within the next chunk, clamped defensively so a
		// pathological state can never produce an out-of-range index.
		next := ((phase-len(x))%d.factor + d.factor) % d.factor
		d.phase = int(core.Clamp(float64(next), 0, float64(d.factor-1)))
	}

	return out, nil
}

// EstimateSpace returns the number of retained samples an Apply call with n
// input samples would produce given the current phase state.
func (d *Downsampler) EstimateSpace(n int) int {
	if !d.initialized || n <= 0 {
		return 0
	}

	phase := d.phase0
	if d.mode == core.RealTime {
		phase = d.phase
	}

	return (n + d.factor - 1 - phase) / d.factor
}

// SetInitialConditions sets the phase offset of the first retained sample
// and resets the cursor to it. The phase must lie in [0, factor-1].
func (d *Downsampler) SetInitialConditions(phase int) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	if phase < 0 || phase > d.factor-1 {
		return ErrInvalidPhase
	}

	d.phase0 = phase
	d.phase = phase

	return nil
}

// ResetInitialConditions restores the phase cursor to the configured
// initial phase.
func (d *Downsampler) ResetInitialConditions() {
	d.phase = d.phase0
}

// Factor returns the downsampling factor.
func (d *Downsampler) Factor() int {
	return d.factor
}

// Clone returns a deep copy; the original and the copy evolve
// independently.
func (d *Downsampler) Clone() *Downsampler {
	if !d.initialized {
		return &Downsampler{}
	}

	out := *d

	return &out
}

package resample

import (
	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/fir"
)

// Decimator lowpass-filters a signal with a Hamming-windowed FIR anti-alias
// filter and then downsamples it. The cutoff is 1/factor of the Nyquist
// frequency, so the retained band is free of aliased content.
type Decimator struct {
	filter *fir.Filter
	down   *Downsampler
	mode   core.Mode
}

// NewDecimator creates a decimator for the given factor and anti-alias
// filter length in the given processing mode. An even tap count is bumped
// to the next odd value so the group delay is a whole number of samples;
// in post-processing mode that delay is removed from the output. A factor
// of 1 skips the anti-alias filter entirely.
func NewDecimator(factor, taps int, mode core.Mode) (*Decimator, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	down, err := NewDownsampler(factor, mode)
	if err != nil {
		return nil, err
	}

	d := &Decimator{down: down, mode: mode}
	if factor == 1 {
		return d, nil
	}

	if taps%2 == 0 {
		taps++
	}

	coeffs, err := design.FIRWindow(taps, 1/float64(factor))
	if err != nil {
		return nil, err
	}

	d.filter, err = fir.New(coeffs, mode)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Apply filters and downsamples a block of samples. In post-processing mode
// the anti-alias group delay is compensated so output samples line up with
// the input; in real-time mode the delay remains and the filter state and
// downsampling phase persist across calls.
func (d *Decimator) Apply(x []float64) ([]float64, error) {
	if d.down == nil {
		return nil, ErrNotInitialized
	}

	if d.filter == nil {
		return d.down.Apply(x)
	}

	var (
		filtered []float64
		err      error
	)

	if d.mode == core.PostProcessing {
		filtered, err = d.filter.ApplyZeroPhase(x)
	} else {
		filtered, err = d.filter.Apply(x)
	}

	if err != nil {
		return nil, err
	}

	return d.down.Apply(filtered)
}

// EstimateSpace returns the number of output samples an Apply call with n
// input samples would produce given the current downsampling phase.
func (d *Decimator) EstimateSpace(n int) int {
	if d.down == nil {
		return 0
	}

	return d.down.EstimateSpace(n)
}

// SetInitialConditions sets the downsampling phase and clears the
// anti-alias filter state. The phase must lie in [0, factor-1].
func (d *Decimator) SetInitialConditions(phase int) error {
	if d.down == nil {
		return ErrNotInitialized
	}

	if err := d.down.SetInitialConditions(phase); err != nil {
		return err
	}

	if d.filter != nil {
		d.filter.Reset()
	}

	return nil
}

// ResetInitialConditions restores the downsampling phase to its configured
// initial value and clears the anti-alias filter state.
func (d *Decimator) ResetInitialConditions() {
	if d.down == nil {
		return
	}

	d.down.ResetInitialConditions()

	if d.filter != nil {
		d.filter.Reset()
	}
}

// Factor returns the decimation factor.
func (d *Decimator) Factor() int {
	if d.down == nil {
		return 0
	}

	return d.down.Factor()
}

// FIRCoefficients returns a copy of the anti-alias filter coefficients, or
// nil for a factor of 1.
func (d *Decimator) FIRCoefficients() []float64 {
	if d.filter == nil {
		return nil
	}

	return d.filter.Coefficients()
}

// Clone returns a deep copy; the original and the copy evolve
// independently.
func (d *Decimator) Clone() *Decimator {
	if d.down == nil {
		return &Decimator{}
	}

	out := &Decimator{
		down: d.down.Clone(),
		mode: d.mode,
	}
	if d.filter != nil {
		out.filter = d.filter.Clone()
	}

	return out
}

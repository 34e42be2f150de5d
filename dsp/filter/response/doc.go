// Package response evaluates the frequency response of analog and digital
// transfer functions.
//
// Freqs handles analog B(s)/A(s) at arbitrary angular frequencies, Freqz
// and SOSFreqz handle digital filters at arbitrary normalized frequencies,
// and FreqzN evaluates a digital filter on a uniform grid in a single FFT.
// Magnitude, phase, and group-delay views of the complex response live in
// dsp/spectrum; MagnitudeDB and GroupDelay are the common shortcuts.
package response

// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. In real-time mode the delay line
// persists across Apply calls so chunked input matches one-shot filtering;
// in post-processing mode each call starts from a cleared delay line.
//
// Linear-phase filters with an odd tap count can additionally be applied
// with zero phase: the known group delay of (taps-1)/2 samples is trimmed
// from the output instead of running a second backward pass.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc lowpass) lives in dsp/filter/design.
package fir

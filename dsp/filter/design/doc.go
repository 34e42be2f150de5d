// Package design composes analog prototype synthesis, band transformation,
// and the bilinear transform into single-call IIR filter design, and
// provides windowed-sinc FIR lowpass design.
//
// Digital designs take critical frequencies normalized to the Nyquist
// frequency (0 < f < 1); WithSampleRate switches the interpretation to Hz.
// The result can be requested in zero-pole-gain, transfer-function, or
// cascaded second-order-section form.
package design

// Package proto generates normalized analog lowpass prototypes in
// zero-pole-gain form: Butterworth, Chebyshev Type I/II, and Bessel.
//
// Every prototype is normalized to a critical frequency of 1 rad/s
// (the -3 dB point for Butterworth and Bessel, the ripple edge for
// Chebyshev Type I, the stopband edge for Chebyshev Type II). The xform
// package moves the prototype to the target band.
package proto

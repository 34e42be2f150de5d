// Package xform maps normalized analog lowpass prototypes to a target band
// (lowpass, highpass, bandpass, bandstop) and from the analog s-plane to the
// digital z-plane via the bilinear transform.
//
// All operations are pure functions on zero-pole-gain values. Band transforms
// expect a prototype normalized to a cutoff of 1 rad/s; the bilinear
// transform expects critical frequencies to have been pre-warped by the
// caller (the design facade does this).
package xform

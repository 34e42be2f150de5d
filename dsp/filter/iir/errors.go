package iir

import "errors"

// Errors returned by filter construction and application.
var (
	// ErrNotInitialized indicates use of a zero-value filter that was never
	// attached to a representation.
	ErrNotInitialized = errors.New("iir: filter not initialized")
	// ErrRealTimeZeroPhase indicates zero-phase filtering requested in
	// real-time mode; it needs the whole signal and cannot run on a stream.
	ErrRealTimeZeroPhase = errors.New("iir: zero-phase filtering requires post-processing mode")
	// ErrInitialConditions indicates initial conditions whose length does
	// not match the filter's delay line.
	ErrInitialConditions = errors.New("iir: initial condition length mismatch")
	// ErrNoSections indicates an SOS representation with no sections.
	ErrNoSections = errors.New("iir: no sections")
	// ErrNotFinite indicates non-finite coefficients, a numerically
	// degenerate design.
	ErrNotFinite = errors.New("iir: coefficients are not finite")
)

// Package iir applies designed BA and SOS filters to sample blocks.
//
// Filters run in one of two modes. In post-processing mode every Apply call
// is independent: the delay line starts from the configured initial
// conditions and is discarded afterwards. In real-time mode the delay line
// persists across calls, so filtering a signal chunk by chunk produces the
// same output (within floating-point rounding) as filtering it in one call.
//
// Both forms use the transposed direct form II recursion; an SOS cascade
// applies it per section, each section owning its own two-element delay.
// Zero-phase (forward-backward) filtering is available in post-processing
// mode only, since it needs the whole signal.
//
// Filter and SOSFilter process float64 samples; Filter32 and SOSFilter32
// are their float32 counterparts for memory-constrained streams. Designs are
// produced in float64 either way and converted at attach time.
package iir

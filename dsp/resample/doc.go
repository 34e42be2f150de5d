// Package resample reduces the sample rate of a signal.
//
// A [Downsampler] keeps every q-th sample starting at a configurable phase
// offset. In real-time mode the phase cursor persists across calls, so a
// stream split into arbitrary chunks yields exactly the samples a single
// call over the concatenation would; in post-processing mode the cursor is
// reset to its initial phase before every call.
//
// A [Decimator] combines a Hamming-windowed anti-alias FIR lowpass with
// cutoff 1/q and the downsampler. Decimation factors above about 13 are
// better split into cascaded stages (for example 2 then 5 instead of 10 in
// one step is unnecessary, but 40 should become 5 then 8); this is a
// recommendation, not a validated constraint.
package resample

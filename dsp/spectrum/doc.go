// Package spectrum converts complex frequency-response points into
// magnitude, power, phase, and group-delay views.
//
// Magnitude and Power use SIMD-optimized kernels when available (AVX2,
// SSE2, NEON); scratch buffers are pooled internally so steady-state calls
// allocate only the output slice.
package spectrum

// Package testutil provides deterministic test signals and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a unit-amplitude sine wave at freqHz sampled at
// sampleRate.
func Sine(freqHz, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}

	return out
}

// Noise generates uniform white noise in [-1, 1] with a fixed seed for
// reproducibility.
func Noise(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// Impulse generates a unit impulse at position zero.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	if n > 0 {
		out[0] = 1
	}

	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicInt8 generates uniformly distributed 8-bit samples covering
// the full [-128, 127] range with a fixed seed.
func DeterministicInt8[T ~int8](seed int64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(int8(uint8(rng.Intn(256))))
	}
	return out
}

// AllInt8 returns every 8-bit value in ascending order, -128 first.
func AllInt8[T ~int8]() []T {
	out := make([]T, 256)
	for i := range out {
		out[i] = T(int8(i - 128))
	}
	return out
}

// Fill returns a slice of length n with every element set to v.
func Fill[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

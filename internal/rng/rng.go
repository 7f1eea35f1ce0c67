package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a reproducible generator for the given seed
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Last always returns the largest permitted value.
// A Fisher-Yates shuffle driven by Last leaves its input in the original order.
type Last struct{}

// Intn returns n-1
func (Last) Intn(n int) int {
	return n - 1
}

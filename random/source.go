package random

import "math/rand/v2"

// Source is the draw capability consumers should depend on instead of the
// concrete MT19937 type. Any alternative generator satisfying Source can be
// swapped in without the consumer caring which algorithm produces the words.
type Source interface {
	// Uint32 returns the next raw 32-bit word.
	Uint32() uint32
	// Uint32n returns a uniform value in [0, max).
	Uint32n(max uint32) uint32
	// Intn returns a uniform value in [0, max).
	Intn(max int) int
	// Float64 returns a uniform value in [0, 1) with 53-bit precision.
	Float64() float64
	// Uniform returns a uniform value in [min, max].
	Uniform(min, max float64) float64
	// Fill overwrites every byte of p with a uniform value.
	Fill(p []byte)
}

var _ Source = (*MT19937)(nil)

// *MT19937 also plugs into math/rand/v2 and anything that consumes its
// Source, including gonum's distuv distributions.
var _ rand.Source = (*MT19937)(nil)

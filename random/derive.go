package random

import "math"

// The derived-value layer. Every operation here is a pure transform of one
// or two raw tempered words; nothing is mutated beyond the generator state.

const (
	twoPow32 = 4294967296.0

	// 53-bit method scales. Two raw draws contribute 27 and 26 bits of
	// mantissa; the divisor picks the endpoint behavior.
	scaleExclusive = 1.0 / 9007199254740992.0 // 1/2^53, upper bound open
	scaleInclusive = 1.0 / 9007199254740991.0 // 1/(2^53-1), upper bound closed
)

// float53 combines two raw words into a uniform value with full 53-bit
// mantissa precision. The single-word divide would be cheaper but fails
// stricter repetition tests; the two-word method is required for
// bit-compatible output.
func (g *MT19937) float53(translate, scale float64) float64 {
	a := g.Uint32() >> 5 // 27 bits
	b := g.Uint32() >> 6 // 26 bits
	return (float64(a)*67108864.0 + float64(b) + translate) * scale
}

// Float64 returns a uniform value in [0, 1).
func (g *MT19937) Float64() float64 {
	return g.float53(0, scaleExclusive)
}

// Float64Inclusive returns a uniform value in [0, 1]. Exactly 1.0 is a
// possible output.
func (g *MT19937) Float64Inclusive() float64 {
	return g.float53(0, scaleInclusive)
}

// Float64Open returns a uniform value strictly inside (0, 1).
func (g *MT19937) Float64Open() float64 {
	return g.float53(0.5, scaleExclusive)
}

// Uniform returns a uniform value in [min, max], endpoints included.
func (g *MT19937) Uniform(min, max float64) float64 {
	return g.Float64Inclusive()*(max-min) + min
}

// Float32 returns a uniform float32 in [0, 1]. The underlying double is in
// [0, 1), but a double closer to 1 than 2^-25 rounds up to exactly 1.0 in
// the cast.
func (g *MT19937) Float32() float32 {
	return float32(g.Float64())
}

// Float32Inclusive returns a uniform float32 in [0, 1].
func (g *MT19937) Float32Inclusive() float32 {
	return float32(g.Float64Inclusive())
}

// Float32Open returns a uniform float32 in (0, 1]. The cast can round a
// double just under 1 up to exactly 1.0; the lower endpoint stays open
// because the smallest double output is far above float32 resolution.
func (g *MT19937) Float32Open() float32 {
	return float32(g.Float64Open())
}

// UniformFloat32 returns a uniform float32 in [min, max].
func (g *MT19937) UniformFloat32(min, max float32) float32 {
	return float32(g.Uniform(float64(min), float64(max)))
}

// Uint32n returns a uniform value in [0, max). The bound is applied by
// floating-point division of the 32-bit range, which loses exact uniformity
// near the top of the range; downstream consumers depend on this precise
// arithmetic, so it must not be replaced with a rejection sampler. A zero
// max panics with ErrInvalidArgument.
func (g *MT19937) Uint32n(max uint32) uint32 {
	if max == 0 {
		panic(errorf(ErrInvalidArgument, "max must be non-zero"))
	}
	return uint32(float64(g.Uint32()) / (twoPow32 / float64(max)))
}

// Uint32Range returns a uniform value in [min, max), using the same division
// arithmetic as Uint32n. Panics with ErrInvalidRange when min >= max.
func (g *MT19937) Uint32Range(min, max uint32) uint32 {
	if min >= max {
		panic(errorf(ErrInvalidRange, "min %d must be below max %d", min, max))
	}
	return uint32(float64(g.Uint32())/(twoPow32/float64(max-min))) + min
}

// Int returns a uniform value in [0, math.MaxInt32).
func (g *MT19937) Int() int {
	return g.Intn(math.MaxInt32)
}

// Intn returns a uniform value in [0, max). A max of 0 or 1 leaves no room
// to draw and returns 0; this degenerate clamp is intentional and documented
// behavior, not an error. A negative max panics with ErrInvalidRange.
func (g *MT19937) Intn(max int) int {
	if max < 0 {
		panic(errorf(ErrInvalidRange, "max must be non-negative, got %d", max))
	}
	if max <= 1 {
		return 0
	}
	return int(g.Float64() * float64(max))
}

// IntRange returns a uniform value in [min, max). Equal bounds return min
// without consuming a draw. Panics with ErrInvalidRange when min > max.
func (g *MT19937) IntRange(min, max int) int {
	if min > max {
		panic(errorf(ErrInvalidRange, "min %d must not exceed max %d", min, max))
	}
	if min == max {
		return min
	}
	return g.Intn(max-min) + min
}

// Fill overwrites every byte of p with a uniform value in [0, 255]. Each
// byte consumes one bounded-int draw so the byte stream is reproducible
// alongside the other derived values. A nil buffer panics with
// ErrInvalidArgument; an empty non-nil buffer is a no-op.
func (g *MT19937) Fill(p []byte) {
	if p == nil {
		panic(errorf(ErrInvalidArgument, "buffer must not be nil"))
	}
	for i := range p {
		p[i] = byte(g.Intn(256))
	}
}

// Shuffle pseudo-randomizes the order of n elements using Fisher-Yates.
// swap exchanges the elements at indexes i and j.
func (g *MT19937) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of [0, n).
func (g *MT19937) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	g.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Package random implements the MT19937 Mersenne Twister pseudo-random
// number generator: a 32-bit, 624-word-state generator with a period of
// 2^19937-1, following the reference implementation by Matsumoto and
// Nishimura. Output is bit-for-bit reproducible for a given seed, which the
// experiment layers rely on for exact repeatability of runs.
//
// The generator is not cryptographically secure. A single instance must not
// be shared for concurrent use; each worker owns its own instance (see the
// experiment package for per-worker stream derivation).
package random

import "github.com/archer333/ModelSythesisWithES/internal/entropy"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	seedMultiplier = 1812433253
	keySeed        = 19650218
	keyMultiplier1 = 1664525
	keyMultiplier2 = 1566083941
)

// DefaultSeed is the canonical MT19937 reference seed. Seeding with it
// reproduces the widely published reference output vector (first tempered
// word 3499211612).
const DefaultSeed uint32 = 5489

// MT19937 is a Mersenne Twister generator. The zero value is not usable;
// construct instances with New, NewFromKey or NewFromEntropy.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// New creates a generator from a single 32-bit seed.
func New(seed uint32) *MT19937 {
	g := &MT19937{}
	g.seed(seed)
	return g
}

// NewFromKey creates a generator from a key array, spreading every key word
// through the state. Preferred over New when more than 32 bits of seed
// material are available, since scalar seeds with few non-zero bits produce
// correlated early output. An empty or nil key is a caller error and panics
// with ErrInvalidArgument.
func NewFromKey(key []uint32) *MT19937 {
	if len(key) == 0 {
		panic(errorf(ErrInvalidArgument, "seed key must not be empty"))
	}
	g := &MT19937{}
	g.seedKey(key)
	return g
}

// NewFromEntropy creates a generator seeded from the operating system
// entropy source. The resulting stream differs between runs; use New with an
// explicit seed when reproducibility is required.
func NewFromEntropy() *MT19937 {
	return New(entropy.Seed())
}

// seed initializes the state from a scalar seed. Arithmetic wraps at 32
// bits; the truncation is part of the algorithm, not an overflow bug.
func (g *MT19937) seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < mtN; i++ {
		g.mt[i] = seedMultiplier*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	// Force regeneration on the first draw.
	g.mti = mtN
}

// seedKey initializes the state from a key array (init_by_array). Two mixing
// passes fold the key into a scalar-seeded state; the final assignment
// guarantees a non-zero state word.
func (g *MT19937) seedKey(key []uint32) {
	g.seed(keySeed)

	i, j := 1, 0
	k := len(key)
	if k < mtN {
		k = mtN
	}
	for ; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * keyMultiplier1)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * keyMultiplier2)) - uint32(i)
		i++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
	}

	g.mt[0] = 0x80000000
	g.mti = mtN
}

// Uint32 returns the next raw tempered word. Every derived value routes
// through here.
func (g *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if g.mti >= mtN {
		// Regenerate all N words in place. The loop is split in three so the
		// kk+1 and kk+M reads wrap only where they must.
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (g.mt[mtN-1] & upperMask) | (g.mt[0] & lowerMask)
		g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		g.mti = 0
	}

	y = g.mt[g.mti]
	g.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Uint64 returns a 64-bit value built from two consecutive raw draws, high
// word first. It exists so *MT19937 satisfies math/rand/v2's Source and can
// drive gonum's distuv distributions; it advances the stream by two words.
func (g *MT19937) Uint64() uint64 {
	hi := g.Uint32()
	lo := g.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

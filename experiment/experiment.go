// Package experiment wires random generators into experiment runs: it
// resolves the run seed, owns the lazily created default generator, and
// derives independent per-worker streams so concurrent work never shares a
// generator instance.
package experiment

import (
	"sync"

	"github.com/archer333/ModelSythesisWithES/internal/entropy"
	"github.com/archer333/ModelSythesisWithES/internal/parallel"
	"github.com/archer333/ModelSythesisWithES/random"
)

// Option configures an Experiment before its seed is resolved.
type Option func(*Experiment)

// WithSeed pins the run seed, overriding any seed from the config. It takes
// the highest precedence in seed resolution.
func WithSeed(seed uint32) Option {
	return func(e *Experiment) {
		s := seed
		e.override = &s
	}
}

// WithCrossSeed registers a hook that receives the resolved seed exactly
// once, when the default generator is created. Hosts use it to pin other
// numeric libraries to the same seed so a single config value reproduces
// the whole run; the hook is the host's responsibility, not part of the
// generator's correctness contract.
func WithCrossSeed(fn func(seed uint32)) Option {
	return func(e *Experiment) {
		e.crossSeeds = append(e.crossSeeds, fn)
	}
}

// Experiment resolves the seed for one run and hands out generator
// instances. Seed precedence: WithSeed override, then a non-zero config
// seed, then fresh OS entropy.
type Experiment struct {
	cfg        *Config
	override   *uint32
	crossSeeds []func(uint32)

	once sync.Once
	seed uint32
	def  *random.MT19937
}

// New creates an Experiment for cfg. A nil cfg is allowed and behaves like
// a config with no seed set.
func New(cfg *Config, opts ...Option) *Experiment {
	e := &Experiment{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolve picks the seed and builds the default generator, exactly once.
func (e *Experiment) resolve() {
	e.once.Do(func() {
		switch {
		case e.override != nil:
			e.seed = *e.override
		case e.cfg != nil && e.cfg.Seed != 0:
			e.seed = uint32(e.cfg.Seed)
		default:
			e.seed = entropy.Seed()
		}
		e.def = random.New(e.seed)
		for _, fn := range e.crossSeeds {
			fn(e.seed)
		}
	})
}

// Seed returns the resolved run seed, resolving it on first use.
func (e *Experiment) Seed() uint32 {
	e.resolve()
	return e.seed
}

// Rand returns the run's default generator, created lazily on first use.
// The instance is not synchronized; concurrent work must use WorkerRand or
// RunWorkers instead of sharing it.
func (e *Experiment) Rand() *random.MT19937 {
	e.resolve()
	return e.def
}

// WorkerRand returns a fresh generator for worker w, derived from the run
// seed by array seeding over [seed, w]. Streams for distinct workers are
// independent, and repeated calls with the same w restart the same stream.
func (e *Experiment) WorkerRand(w int) *random.MT19937 {
	e.resolve()
	return random.NewFromKey([]uint32{e.seed, uint32(w)})
}

// RunWorkers runs fn for workers [0, n) in parallel, each with its own
// exclusive generator. n <= 0 means the configured worker count.
func (e *Experiment) RunWorkers(n int, fn func(w int, g *random.MT19937)) {
	if n <= 0 {
		if e.cfg != nil {
			n = e.cfg.Workers
		}
		if n <= 0 {
			n = parallel.NumWorkers()
		}
	}
	parallel.For(0, n, n, func(w int) {
		fn(w, e.WorkerRand(w))
	})
}

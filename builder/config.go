// File: config.go
// Role: Builder configuration, functional options, deterministic defaults.
package builder

import "math/rand"

// defaultSeed substitutes a zero seed so WithSeed(0) still yields a
// reproducible stream.
const defaultSeed int64 = 1

// config aggregates the knobs every constructor receives. It is passed
// by value, so constructors cannot leak changes to each other.
type config struct {
	// labelFn names tips by their zero-based creation index.
	labelFn LabelFn
	// lengthFn draws branch lengths; a false second result leaves the
	// branch length undefined.
	lengthFn LengthFn
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// Option mutates the builder configuration.
type Option func(*config)

// newConfig resolves deterministic defaults, then applies the options in
// order with last-wins semantics.
func newConfig(opts ...Option) config {
	cfg := config{
		labelFn:  DefaultLabelFn,
		lengthFn: NoLengthFn,
		rng:      nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabelFn sets the tip labeling scheme. Panics on nil, which is a
// configuration programming error.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("builder: WithLabelFn: nil LabelFn")
	}

	return func(c *config) { c.labelFn = fn }
}

// WithLengthFn sets the branch length generator. Panics on nil.
func WithLengthFn(fn LengthFn) Option {
	if fn == nil {
		panic("builder: WithLengthFn: nil LengthFn")
	}

	return func(c *config) { c.lengthFn = fn }
}

// WithSeed equips the configuration with a deterministic RNG stream for
// stochastic constructors. A zero seed is replaced by a fixed default so
// the stream stays reproducible.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}

	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an external RNG, shared across constructors in the
// same Build call. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("builder: WithRand: nil *rand.Rand")
	}

	return func(c *config) { c.rng = rng }
}

// File: length_fn.go
// Role: Branch length distributions for tree constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// LengthFn draws one branch length. A false second result leaves the
// branch length undefined, mirroring trees without measured branches.
// Implementations must be deterministic for a given RNG stream; panics
// in the constructors indicate a configuration programming error.
type LengthFn func(rng *rand.Rand) (float64, bool)

// NoLengthFn leaves every branch length undefined.
func NoLengthFn(_ *rand.Rand) (float64, bool) {
	return 0, false
}

// ConstantLengthFn yields the same length for every branch. Panics if
// value is negative.
func ConstantLengthFn(value float64) LengthFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantLengthFn: value must be >= 0, got %g", value))
	}

	return func(_ *rand.Rand) (float64, bool) { return value, true }
}

// UniformLengthFn samples uniformly in [min, max). Panics unless
// 0 <= min <= max. A nil RNG falls back to min, keeping unseeded builds
// deterministic.
func UniformLengthFn(min, max float64) LengthFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformLengthFn: require 0 <= min <= max, got min=%g max=%g", min, max))
	}

	return func(rng *rand.Rand) (float64, bool) {
		if rng == nil || max == min {
			return min, true
		}

		return min + rng.Float64()*(max-min), true
	}
}

// ExponentialLengthFn samples from an exponential distribution with the
// given rate (mean 1/rate). Panics if rate <= 0. A nil RNG falls back to
// the mean.
func ExponentialLengthFn(rate float64) LengthFn {
	if rate <= 0 {
		panic(fmt.Sprintf("builder: ExponentialLengthFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) (float64, bool) {
		if rng == nil {
			return 1 / rate, true
		}

		return rng.ExpFloat64() / rate, true
	}
}

// WithConstantLength sets every branch length to value.
func WithConstantLength(value float64) Option {
	return WithLengthFn(ConstantLengthFn(value))
}

// WithUniformLength samples branch lengths uniformly in [min, max).
func WithUniformLength(min, max float64) Option {
	return WithLengthFn(UniformLengthFn(min, max))
}

// WithExponentialLength samples branch lengths exponentially with the
// given rate.
func WithExponentialLength(rate float64) Option {
	return WithLengthFn(ExponentialLengthFn(rate))
}

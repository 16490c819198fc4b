// Package topo defines options and error types for the topology mutators.
package topo

import (
	"errors"
	"math/rand"
)

// Sentinel errors for topology mutation.
var (
	// ErrNodeNil is returned when a nil focal node is passed.
	ErrNodeNil = errors.New("topo: node is nil")

	// ErrTreeNil is returned when a nil tree pointer is passed.
	ErrTreeNil = errors.New("topo: tree is nil")

	// ErrDetached is returned when the focal node has no owning tree.
	ErrDetached = errors.New("topo: node is not attached to a tree")
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0, keeping
// Resolve reproducible by default.
const defaultRNGSeed int64 = 1

// Option configures optional behavior of the mutators.
type Option func(*Options)

// Options holds the configurable parameters shared by the mutators. Each
// mutator reads only the fields that concern it.
type Options struct {
	// Force makes SetRootBelow reroot even when the focal node already is,
	// or is a direct child of, the root.
	Force bool

	// SplitPoint is the distance from the focal node at which its branch is
	// split during rerooting; it is clamped into [0, length(node)]. When
	// unset, the branch is split at its midpoint.
	SplitPoint    float64
	hasSplitPoint bool

	// Anonymous suppresses the r1, r2, … auto-naming of the internal nodes
	// Resolve creates.
	Anonymous bool

	// Reverse flips the ladderize convention: internal children descending
	// by subtree size, tips descending by name and placed after internals.
	Reverse bool

	// Seed drives Resolve's random child pairing; 0 selects a fixed default
	// so runs are reproducible unless a seed is supplied.
	Seed int64
}

// DefaultOptions returns the zero configuration: no force, midpoint split,
// named resolution nodes, forward ladderize, fixed seed.
func DefaultOptions() Options {
	return Options{}
}

// WithForce makes SetRootBelow ignore the already-at-root no-op guard.
func WithForce() Option {
	return func(o *Options) { o.Force = true }
}

// WithSplitPoint sets the distance from the focal node at which its branch
// is split during rerooting.
func WithSplitPoint(d float64) Option {
	return func(o *Options) {
		o.SplitPoint = d
		o.hasSplitPoint = true
	}
}

// WithAnonymous makes Resolve leave its new internal nodes unnamed.
func WithAnonymous() Option {
	return func(o *Options) { o.Anonymous = true }
}

// WithReverse flips the ladderize ordering convention.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}

// WithSeed fixes the RNG seed used by Resolve.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 falls back to the
// stable default.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

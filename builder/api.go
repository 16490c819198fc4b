// File: api.go
// Role: Public entry point composing tree constructors.
//
// Design contract:
//   - One orchestrator: Build(topts, bopts, cons...). Creates the tree,
//     resolves the configuration, runs the constructors in order.
//   - Determinism: same inputs, options, seed, and constructor order
//     always produce an identical tree.
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// Constructor applies one deterministic topology to the tree under
// construction. Implementations must validate their parameters early,
// return only sentinel errors, and emit nodes in a stable order.
type Constructor func(t *core.Tree, cfg config) error

// Build creates a new core.Tree with the given tree options, resolves
// the builder configuration from bopts, and applies all constructors in
// order. The first constructor's topology becomes the tree root; each
// further constructor grafts its topology as a new child of that root,
// so fixtures compose. Any constructor error is wrapped and returned
// immediately; no partial cleanup is attempted.
func Build(topts []core.TreeOption, bopts []Option, cons ...Constructor) (*core.Tree, error) {
	t := core.NewTree(topts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return t, nil
}

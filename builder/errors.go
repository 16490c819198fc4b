// File: errors.go
// Role: Sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Constructors attach context with %w and never panic at runtime;
//     validation panics are confined to option constructors.
package builder

import "errors"

// ErrTooFewTips indicates a size parameter (tip count, depth) below the
// minimum the requested constructor supports.
var ErrTooFewTips = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor was invoked
// without an RNG in the resolved configuration (set WithSeed or
// WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not assemble the
// requested topology: a nil constructor, or a node the target tree
// rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

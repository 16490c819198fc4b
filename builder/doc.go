// Package builder provides deterministic tree factories for tests,
// examples, and simulations: composable constructors that assemble
// rooted core.Tree topologies with configurable tip labels and branch
// lengths.
//
// What:
//
//   - Build: the single orchestrator. It creates a tree, resolves the
//     builder configuration from functional options, and applies the
//     given constructors in order. A constructor grafts its topology
//     under the current root, or becomes the root on an empty tree, so
//     fixtures compose deterministically.
//   - Balanced(depth): the fully balanced binary tree with 2^depth tips.
//   - Caterpillar(n): the fully pectinate (ladder) binary tree with n
//     tips.
//   - Star(n): a root polytomy with n tip children.
//   - Yule(n): a random binary tree with n tips grown by uniformly
//     splitting tips, deterministic for a fixed seed.
//
// Tip labels come from the configured LabelFn (decimal by default) and
// branch lengths from the configured LengthFn (undefined by default);
// the same inputs, options, and constructor order always produce an
// identical tree.
//
// Errors:
//
//   - ErrTooFewTips      size parameter below the constructor's minimum
//   - ErrNeedRandSource  stochastic constructor without a seeded RNG
//   - ErrConstructFailed nil constructor, or a node rejected by the tree
package builder

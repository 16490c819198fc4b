// Package stats implements comparative statistics over rooted trees:
// path and distance metrics, imbalance indices, era statistics, and
// split-based comparison between two trees.
//
// What:
//
//   - PathToRoot / NodesToRoot: branch-length and edge-count distance from a
//     node to its root.
//   - MRCA, PatristicDistance, NodalDistance: pairwise metrics through the
//     most recent common ancestor.
//   - Colless, I2: imbalance indices for strictly binary trees.
//   - Gamma: the Pybus–Harvey gamma statistic over internode intervals.
//   - FialaStemminess, RohlfStemminess: stemminess measures (Fiala & Sokal
//     1985; Rohlf et al. 1990).
//   - BranchScore, BranchDistance, SymmetricDifference: two-tree comparison
//     over canonical splits (Robinson–Foulds and branch-score family).
//
// Splits are canonicalized bottom-up as the sorted, comma-joined xxhash
// digests of the tip names an edge subtends, making the comparison
// independent of child order and of node identity across trees.
//
// Errors:
//
//   - core.ErrBadArgs        nil node/tree arguments (wrapped)
//   - core.ErrObjectMismatch binary-only statistics on a non-binary tree,
//     or node pairs without a common ancestor (wrapped)
//
// Statistics with a minimum tip count (Colless, I2, the stemminess
// measures) return NaN and log an error when invoked below that minimum,
// rather than failing.
package stats

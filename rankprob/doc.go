// Package rankprob implements the rank-probability dynamic program of
// Gernhard et al. (2006) over strictly bifurcating rooted trees: under a
// uniform distribution over all temporally consistent orderings of a
// tree's divergence events, it computes the probability distribution of a
// single node's rank and the probability that one node diverged before
// another.
//
// What:
//
//   - TipCounts: the ordered list of off-path subtree sizes that drives
//     the recurrence, collected on the path from a query node up to its
//     subtree root.
//   - RankProb: the full rank distribution of a node within a subtree,
//     built by iteratively convolving a running probability vector with
//     each off-path size using binomial coefficients. RankProb(r, u)[k]
//     is the probability that u is the k-th divergence event of the
//     subtree rooted at r; the vector sums to 1.
//   - ExpectedRank: the mean and variance of that distribution.
//   - Compare: P(u diverged before v). The minimal connecting subtree is
//     split at the most recent common ancestor (Subtrees); when one query
//     node is the connecting root itself the answer is certain, otherwise
//     the two local rank distributions are convolved over the combined
//     subtree sizes and normalized by C(usize+vsize, vsize).
//
// Complexity:
//
//   - Time:   O(k·m²) for RankProb with k path steps and m final support,
//     O(m³) for the Compare convolution.
//   - Memory: O(m).
//
// Errors:
//
//   - core.ErrBadArgs        nil arguments, a query node outside the
//     subtree, or a non-bifurcating subtree (wrapped)
//   - core.ErrObjectMismatch query nodes without a common ancestor
//     (wrapped, via Compare)
package rankprob

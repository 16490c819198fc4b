// File: rankprob.go
// Role: Rank distribution of a single divergence event within a subtree.
package rankprob

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// TipCounts returns the ordered off-path subtree sizes for the query node
// u within the strictly bifurcating subtree rooted at root: position 0
// holds u's own tip count minus one, followed, for each node on the path
// from u up to root, by the off-path sibling's tip count minus one. Each
// entry is the number of divergence events inside the corresponding
// subtree, which is what the RankProb recurrence consumes.
func TipCounts(root, u *core.Node) ([]int, error) {
	if root == nil || u == nil {
		return nil, fmt.Errorf("rankprob: tip counts: %w", core.ErrBadArgs)
	}
	if u != root && !root.IsAncestorOf(u) {
		return nil, fmt.Errorf("rankprob: tip counts: node %d is outside the subtree of node %d: %w",
			u.ID(), root.ID(), core.ErrBadArgs)
	}
	if err := requireBifurcating(root); err != nil {
		return nil, err
	}

	x := []int{u.TipCount() - 1}
	for n := u; n != root; n = n.Parent() {
		for _, sib := range n.Parent().Children() {
			if sib != n {
				x = append(x, sib.TipCount()-1)
			}
		}
	}

	return x, nil
}

// RankProb returns the rank distribution of u within the subtree rooted
// at root, under a uniform distribution over the temporally consistent
// orderings of the subtree's divergence events. In the result r, r[k] is
// the probability that u is the k-th event; index 0 is unused and the
// entries sum to 1.
func RankProb(root, u *core.Node) ([]float64, error) {
	x, err := TipCounts(root, u)
	if err != nil {
		return nil, err
	}

	// 1. Within its own subtree u is the first event with certainty.
	rp := []float64{0, 1}
	lhs := x[0]

	// 2. Climb the path, merging each off-path subtree into the running
	//    distribution. A step with rhs off-path events shifts the support
	//    by one (the path node itself) and widens it by rhs; the binomial
	//    factors count the interleavings that place u at rank i.
	for _, rhs := range x[1:] {
		next := make([]float64, len(rp)+rhs+1)
		for i := 1; i < len(next); i++ {
			lo := i - len(rp)
			if lo < 0 {
				lo = 0
			}
			for j := lo; j <= rhs && j <= i-2; j++ {
				next[i] += rp[i-j-1] * nchoose(lhs+rhs-(i-1), rhs-j) * nchoose(i-2, j)
			}
		}
		rp = next
		lhs += rhs + 1
	}

	// 3. Normalize to a probability vector.
	var total float64
	for _, p := range rp {
		total += p
	}
	if total > 0 {
		for i := range rp {
			rp[i] /= total
		}
	}

	return rp, nil
}

// ExpectedRank returns the mean and variance of the rank distribution of
// u within the subtree rooted at root.
func ExpectedRank(root, u *core.Node) (mean, variance float64, err error) {
	rp, err := RankProb(root, u)
	if err != nil {
		return 0, 0, err
	}
	for k, p := range rp {
		mean += float64(k) * p
	}
	for k, p := range rp {
		d := float64(k) - mean
		variance += d * d * p
	}

	return mean, variance, nil
}

// requireBifurcating rejects subtrees with any internal node that does
// not have exactly two children.
func requireBifurcating(root *core.Node) error {
	stack := []*core.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		kids := n.Children()
		if len(kids) != 0 && len(kids) != 2 {
			return fmt.Errorf("rankprob: node %d is not bifurcating: %w", n.ID(), core.ErrBadArgs)
		}
		stack = append(stack, kids...)
	}

	return nil
}

// nchoose returns the binomial coefficient C(n, k) as a float64, 0 when
// k is out of range.
func nchoose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1.0
	for i := 0; i < k; i++ {
		res = res * float64(n-i) / float64(i+1)
	}

	return res
}

// File: paths.go
// Role: Node-to-root and pairwise path metrics.
package stats

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// PathToRoot returns the sum of branch lengths walking parent links from n
// to its root, treating undefined lengths as 0. The root's own length is
// never included.
func PathToRoot(n *core.Node) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("stats: path to root: %w", core.ErrBadArgs)
	}
	var sum float64
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		if l, ok := cur.Length(); ok {
			sum += l
		}
	}

	return sum, nil
}

// NodesToRoot returns the number of edges walking parent links from n to
// its root.
func NodesToRoot(n *core.Node) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("stats: nodes to root: %w", core.ErrBadArgs)
	}
	var count int
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		count++
	}

	return count, nil
}

// MRCA returns the most recent common ancestor of a and b.
//
// A node that is the other's ancestor (or the same node) is its own MRCA.
// Otherwise both self-exclusive, rootward-ordered ancestor lists are scanned
// from the tip ends inward and the first identity match is returned; since
// the lists are strictly rootward-ordered this is the most recent shared
// ancestor, falling back to the root when no earlier match exists. Nodes
// sharing no ancestor yield a wrapped core.ErrObjectMismatch.
func MRCA(a, b *core.Node) (*core.Node, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("stats: mrca: %w", core.ErrBadArgs)
	}
	if a == b || a.IsAncestorOf(b) {
		return a, nil
	}
	if b.IsAncestorOf(a) {
		return b, nil
	}
	for _, x := range a.Ancestors() {
		for _, y := range b.Ancestors() {
			if x == y {
				return x, nil
			}
		}
	}

	return nil, fmt.Errorf("stats: mrca: nodes share no ancestor: %w", core.ErrObjectMismatch)
}

// PatristicDistance returns the sum of branch lengths on the path between a
// and b through their MRCA. PatristicDistance(a, a) is 0.
func PatristicDistance(a, b *core.Node) (float64, error) {
	m, err := MRCA(a, b)
	if err != nil {
		return 0, err
	}

	return climbLength(a, m) + climbLength(b, m), nil
}

// NodalDistance returns the number of edges on the path between a and b
// through their MRCA.
func NodalDistance(a, b *core.Node) (int, error) {
	m, err := MRCA(a, b)
	if err != nil {
		return 0, err
	}

	return climbCount(a, m) + climbCount(b, m), nil
}

// PairwisePatristicSum returns the sum of patristic distances over all
// unordered tip pairs of the tree. The quantity is invariant under
// rerooting.
func PairwisePatristicSum(t *core.Tree) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("stats: pairwise patristic sum: %w", core.ErrBadArgs)
	}
	tips := t.Terminals()
	var total float64
	for i := 0; i < len(tips); i++ {
		for j := i + 1; j < len(tips); j++ {
			d, err := PatristicDistance(tips[i], tips[j])
			if err != nil {
				return 0, err
			}
			total += d
		}
	}

	return total, nil
}

// climbLength sums branch lengths walking from n up to stop (exclusive).
func climbLength(n, stop *core.Node) float64 {
	var sum float64
	for cur := n; cur != nil && cur != stop; cur = cur.Parent() {
		if l, ok := cur.Length(); ok {
			sum += l
		}
	}

	return sum
}

// climbCount counts edges walking from n up to stop (exclusive).
func climbCount(n, stop *core.Node) int {
	var count int
	for cur := n; cur != nil && cur != stop; cur = cur.Parent() {
		count++
	}

	return count
}

// File: splits.go
// Role: Canonical splits and two-tree comparison metrics.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/treeline-bio/phylo/core"
)

// Option configures the two-tree comparison metrics.
type Option func(*Options)

// Options holds the comparison parameters.
type Options struct {
	// Normalized divides BranchDistance by the number of distinct splits
	// compared.
	Normalized bool
}

// WithNormalized normalizes BranchDistance by the compared split count.
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// SplitLengths maps every canonical split of the tree to the branch length
// of the edge that induces it. A split is an internal, non-root node's set
// of subtended tip names, canonicalized bottom-up as the sorted,
// comma-joined xxhash digests of the names; the encoding is independent of
// child order and of node identity, so splits align across trees sharing
// tip names. Undefined lengths map to 0.
func SplitLengths(t *core.Tree) (map[string]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("stats: split lengths: %w", core.ErrBadArgs)
	}
	root := t.Root()
	if root == nil {
		return map[string]float64{}, nil
	}

	splits := make(map[string]float64)
	var walk func(n *core.Node) []string
	walk = func(n *core.Node) []string {
		if n.IsTerminal() {
			return []string{fmt.Sprintf("%016x", xxhash.Sum64String(n.Name()))}
		}
		var digests []string
		for _, c := range n.Children() {
			digests = append(digests, walk(c)...)
		}
		if n.Parent() != nil {
			sorted := append([]string(nil), digests...)
			sort.Strings(sorted)
			l, _ := n.Length()
			splits[strings.Join(sorted, ",")] = l
		}

		return digests
	}
	walk(root)

	return splits, nil
}

// BranchScore returns the branch-score between two trees: over the union of
// their canonical splits, the sum of squared length differences, treating a
// split missing from one tree as having length 0 there.
func BranchScore(a, b *core.Tree) (float64, error) {
	sa, err := SplitLengths(a)
	if err != nil {
		return 0, err
	}
	sb, err := SplitLengths(b)
	if err != nil {
		return 0, err
	}

	var score float64
	for split, la := range sa {
		lb := sb[split] // 0 when exclusive to a
		score += (la - lb) * (la - lb)
	}
	for split, lb := range sb {
		if _, shared := sa[split]; !shared {
			score += lb * lb
		}
	}

	return score, nil
}

// BranchDistance returns the square root of BranchScore, optionally
// normalized by the number of distinct splits compared (WithNormalized).
func BranchDistance(a, b *core.Tree, opts ...Option) (float64, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	score, err := BranchScore(a, b)
	if err != nil {
		return 0, err
	}
	dist := math.Sqrt(score)
	if o.Normalized {
		if n := splitUnion(a, b); n > 0 {
			dist /= float64(n)
		}
	}

	return dist, nil
}

// SymmetricDifference returns the Robinson–Foulds distance: the number of
// canonical splits present in exactly one of the two trees.
func SymmetricDifference(a, b *core.Tree) (int, error) {
	sa, err := SplitLengths(a)
	if err != nil {
		return 0, err
	}
	sb, err := SplitLengths(b)
	if err != nil {
		return 0, err
	}

	var diff int
	for split := range sa {
		if _, shared := sb[split]; !shared {
			diff++
		}
	}
	for split := range sb {
		if _, shared := sa[split]; !shared {
			diff++
		}
	}

	return diff, nil
}

// splitUnion counts the distinct canonical splits across both trees.
func splitUnion(a, b *core.Tree) int {
	sa, _ := SplitLengths(a)
	sb, _ := SplitLengths(b)
	for split := range sb {
		if _, shared := sa[split]; !shared {
			sa[split] = 0
		}
	}

	return len(sa)
}

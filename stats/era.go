// File: era.go
// Role: Era statistics: the Pybus–Harvey gamma and stemminess measures.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/treeline-bio/phylo/core"
)

// ultrametricTolerance bounds the root-to-tip spread RohlfStemminess
// accepts, as a fraction of the deepest tip.
const ultrametricTolerance = 0.01

// Gamma returns the Pybus–Harvey gamma statistic. The internal nodes'
// root-to-node distances form the sorted event times whose gaps g are
// weighted by the number of coexisting lineages:
//
//	γ = ( (Σ_{i=2}^{n−1} Σ_{k=2}^{i} k·g_{k−1}) / (n−2) − T/2 ) / ( T·√(1/(12(n−2))) )
//
// with T the total tree length and n the tip count. The derivation assumes
// one internal event per bifurcation, so the tree must be strictly binary
// and carry at least 3 tips.
func Gamma(t *core.Tree) (float64, error) {
	if err := requireBinary(t, "gamma"); err != nil {
		return 0, err
	}
	n := len(t.Terminals())
	if n < 3 {
		return 0, fmt.Errorf("stats: gamma: needs at least 3 tips: %w", core.ErrObjectMismatch)
	}

	internals := t.Internals()
	times := make([]float64, 0, len(internals))
	for _, node := range internals {
		d, err := PathToRoot(node)
		if err != nil {
			return 0, err
		}
		times = append(times, d)
	}
	sort.Float64s(times)

	// Inter-event gaps between consecutive internal events; a binary tree
	// has n−1 internal nodes, hence n−2 gaps.
	gaps := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps[i-1] = times[i] - times[i-1]
	}

	total := t.Length()
	var sum float64
	for i := 2; i <= n-1; i++ {
		for k := 2; k <= i; k++ {
			sum += float64(k) * gaps[k-2]
		}
	}

	return (sum/float64(n-2) - total/2) / (total * math.Sqrt(1/(12*float64(n-2)))), nil
}

// FialaStemminess returns the mean, over non-root internal nodes, of the
// ratio of a node's branch length to that length plus the total branch
// length of its subtree (Fiala & Sokal 1985). Trees without a qualifying
// node yield NaN with a logged error.
func FialaStemminess(t *core.Tree) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("stats: fiala stemminess: %w", core.ErrBadArgs)
	}
	var sum float64
	var count int
	for _, n := range t.Internals() {
		if n.Parent() == nil {
			continue
		}
		bl, _ := n.Length()
		var subtree float64
		for _, d := range n.Descendants() {
			if l, ok := d.Length(); ok {
				subtree += l
			}
		}
		if bl+subtree == 0 {
			continue
		}
		sum += bl / (bl + subtree)
		count++
	}
	if count == 0 {
		core.Logger().Error("fiala stemminess undefined: no internal node with measurable subtree")

		return math.NaN(), nil
	}

	return sum / float64(count), nil
}

// RohlfStemminess returns the stemminess measure of Rohlf et al. (1990,
// eq. 3): the mean, over non-root internal nodes, of the node's branch
// length relative to its parent's height above the tips. Requires a
// strictly binary, ultrametric tree (wrapped core.ErrObjectMismatch
// otherwise); fewer than 3 tips yield NaN with a logged error.
func RohlfStemminess(t *core.Tree) (float64, error) {
	if err := requireBinary(t, "rohlf stemminess"); err != nil {
		return 0, err
	}
	if !t.IsUltrametric(ultrametricTolerance) {
		return 0, fmt.Errorf("stats: rohlf stemminess: tree is not ultrametric: %w", core.ErrObjectMismatch)
	}
	n := len(t.Terminals())
	if n < 3 {
		core.Logger().Error("rohlf stemminess undefined below 3 tips", "tips", n)

		return math.NaN(), nil
	}
	var sum float64
	var count int
	for _, node := range t.Internals() {
		p := node.Parent()
		if p == nil {
			continue
		}
		bl, _ := node.Length()
		if h := p.Height(); h > 0 {
			sum += bl / h
		}
		count++
	}
	if count == 0 {
		core.Logger().Error("rohlf stemminess undefined: no non-root internal node")

		return math.NaN(), nil
	}

	return sum / float64(count), nil
}

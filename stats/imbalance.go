// File: imbalance.go
// Role: Colless and I2 imbalance indices for strictly binary trees.
package stats

import (
	"fmt"
	"math"

	"github.com/treeline-bio/phylo/core"
)

// CollessSum returns the raw Colless imbalance: Σ |left tips − right tips|
// accumulated post-order over the internal nodes of a strictly binary tree.
// A non-binary tree yields a wrapped core.ErrObjectMismatch.
func CollessSum(t *core.Tree) (float64, error) {
	if err := requireBinary(t, "colless"); err != nil {
		return 0, err
	}
	var sum float64
	for _, n := range t.Internals() {
		kids := n.Children()
		sum += math.Abs(float64(kids[0].TipCount() - kids[1].TipCount()))
	}

	return sum, nil
}

// Colless returns the Colless imbalance normalized by (n−1)(n−2)/2, where n
// is the tip count. Fully balanced topologies score 0 and fully pectinate
// ones 1. Trees with fewer than 3 tips have no defined value: NaN is
// returned and an error is logged.
func Colless(t *core.Tree) (float64, error) {
	sum, err := CollessSum(t)
	if err != nil {
		return 0, err
	}
	n := len(t.Terminals())
	if n < 3 {
		core.Logger().Error("colless imbalance undefined below 3 tips", "tips", n)

		return math.NaN(), nil
	}

	return sum / (float64(n-1) * float64(n-2) / 2), nil
}

// I2 returns the I2 imbalance (Mooers & Heard 1997): each internal node of
// a strictly binary tree with subtree tip counts f and l contributes
// |f−l|/(f+l−2) when the denominator is non-zero, and the sum is normalized
// by its maximum possible value for n tips, n−2. Trees with fewer than
// 3 tips yield NaN with a logged error.
func I2(t *core.Tree) (float64, error) {
	if err := requireBinary(t, "i2"); err != nil {
		return 0, err
	}
	n := len(t.Terminals())
	if n < 3 {
		core.Logger().Error("i2 imbalance undefined below 3 tips", "tips", n)

		return math.NaN(), nil
	}
	var sum float64
	for _, node := range t.Internals() {
		kids := node.Children()
		ftips, ltips := kids[0].TipCount(), kids[1].TipCount()
		if denom := ftips + ltips - 2; denom > 0 {
			sum += math.Abs(float64(ftips-ltips)) / float64(denom)
		}
	}

	return sum / float64(n-2), nil
}

// requireBinary rejects nil and non-binary trees.
func requireBinary(t *core.Tree, op string) error {
	if t == nil {
		return fmt.Errorf("stats: %s: %w", op, core.ErrBadArgs)
	}
	if !t.IsBinary() {
		return fmt.Errorf("stats: %s: tree is not strictly binary: %w", op, core.ErrObjectMismatch)
	}

	return nil
}

// File: impl_balanced.go
// Role: Balanced(depth) constructor.
//
// Contract:
//   - depth >= 1 (else ErrTooFewTips).
//   - Emits the fully balanced binary tree of the given depth: 2^depth
//     tips labeled left to right via cfg.labelFn, internal nodes unnamed.
//   - Every non-root branch draws a length from cfg.lengthFn.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

const (
	methodBalanced   = "Balanced"
	minBalancedDepth = 1
)

// Balanced returns a Constructor building the fully balanced binary
// tree with 2^depth tips.
func Balanced(depth int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if depth < minBalancedDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBalanced, depth, minBalancedDepth, ErrTooFewTips)
		}
		root, err := anchor(t, cfg, methodBalanced)
		if err != nil {
			return err
		}

		// Expand left to right so tip labels read in order.
		idx := 0
		var expand func(n *core.Node, remaining int) error
		expand = func(n *core.Node, remaining int) error {
			for i := 0; i < 2; i++ {
				if remaining == 1 {
					if _, err := tip(t, cfg, methodBalanced, n, idx); err != nil {
						return err
					}
					idx++

					continue
				}
				child, err := internal(t, cfg, methodBalanced, n)
				if err != nil {
					return err
				}
				if err = expand(child, remaining-1); err != nil {
					return err
				}
			}

			return nil
		}

		return expand(root, depth)
	}
}

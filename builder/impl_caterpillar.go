// File: impl_caterpillar.go
// Role: Caterpillar(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewTips).
//   - Emits the fully pectinate binary tree with n tips: each spine node
//     holds the deeper subtree first and one tip second, ending in a
//     cherry of the two lowest-indexed tips.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

const (
	methodCaterpillar  = "Caterpillar"
	minCaterpillarTips = 2
)

// Caterpillar returns a Constructor building the ladder topology
// (((t0,t1),t2),...,tn-1) with n tips.
func Caterpillar(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minCaterpillarTips {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCaterpillar, n, minCaterpillarTips, ErrTooFewTips)
		}
		cur, err := anchor(t, cfg, methodCaterpillar)
		if err != nil {
			return err
		}

		// Descend the spine, hanging one tip per level.
		for i := n - 1; i >= 2; i-- {
			next, err := internal(t, cfg, methodCaterpillar, cur)
			if err != nil {
				return err
			}
			if _, err = tip(t, cfg, methodCaterpillar, cur, i); err != nil {
				return err
			}
			cur = next
		}

		// Terminal cherry.
		for i := 0; i < 2; i++ {
			if _, err = tip(t, cfg, methodCaterpillar, cur, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// File: impl_star.go
// Role: Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewTips).
//   - Emits a single root polytomy with n tips in ascending label order.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

const (
	methodStar  = "Star"
	minStarTips = 2
)

// Star returns a Constructor building an n-tip star: one root whose
// children are all terminals. Useful as a polytomy fixture for resolve
// and collapse operations.
func Star(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minStarTips {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarTips, ErrTooFewTips)
		}
		root, err := anchor(t, cfg, methodStar)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err = tip(t, cfg, methodStar, root, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// File: impl_yule.go
// Role: Yule(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewTips); requires an RNG (else ErrNeedRandSource).
//   - Grows a binary tree by repeatedly splitting a uniformly chosen
//     leaf until n leaves exist, the Yule pure-birth process.
//   - Tips are labeled left to right after growth, so a split never
//     strands a label on an internal node.
//   - Deterministic for a fixed seed and call order.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

const (
	methodYule  = "Yule"
	minYuleTips = 2
)

// Yule returns a Constructor growing a random n-tip binary tree under
// the Yule pure-birth model.
func Yule(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minYuleTips {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodYule, n, minYuleTips, ErrTooFewTips)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodYule, ErrNeedRandSource)
		}
		root, err := anchor(t, cfg, methodYule)
		if err != nil {
			return err
		}

		// 1. Seed the process with the root's two lineages.
		leaves := make([]*core.Node, 0, n)
		for i := 0; i < 2; i++ {
			c, err := internal(t, cfg, methodYule, root)
			if err != nil {
				return err
			}
			leaves = append(leaves, c)
		}

		// 2. Split a uniformly chosen leaf until n leaves exist.
		for len(leaves) < n {
			k := cfg.rng.Intn(len(leaves))
			for i := 0; i < 2; i++ {
				c, err := internal(t, cfg, methodYule, leaves[k])
				if err != nil {
					return err
				}
				if i == 0 {
					leaves = append(leaves, c)
				} else {
					leaves[k] = c
				}
			}
		}

		// 3. Label the terminals left to right.
		idx := 0
		var label func(nd *core.Node)
		label = func(nd *core.Node) {
			if nd.IsTerminal() {
				nd.SetName(cfg.labelFn(idx))
				idx++

				return
			}
			for _, c := range nd.Children() {
				label(c)
			}
		}
		label(root)

		return nil
	}
}

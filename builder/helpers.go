// File: helpers.go
// Role: Shared node-emission helpers for the constructors.
package builder

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// anchor creates a constructor's local root: the tree root on an empty
// tree, otherwise a new child grafted under the existing root. Grafted
// anchors draw a branch length; a true root has none.
func anchor(t *core.Tree, cfg config, method string) (*core.Node, error) {
	var base *core.Node
	if t.Len() > 0 {
		base = t.Root()
	}

	n := core.NewNode()
	if err := t.Insert(n); err != nil {
		return nil, fmt.Errorf("%s: anchor: %w", method, ErrConstructFailed)
	}
	if base != nil {
		base.SetChild(n)
		if err := drawLength(n, cfg, method); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// tip emits a labeled terminal child of parent; idx feeds the labeling
// scheme.
func tip(t *core.Tree, cfg config, method string, parent *core.Node, idx int) (*core.Node, error) {
	n := core.NewNode()
	n.SetName(cfg.labelFn(idx))
	if err := t.Insert(n); err != nil {
		return nil, fmt.Errorf("%s: tip %d: %w", method, idx, ErrConstructFailed)
	}
	parent.SetChild(n)

	return n, drawLength(n, cfg, method)
}

// internal emits an unnamed child of parent.
func internal(t *core.Tree, cfg config, method string, parent *core.Node) (*core.Node, error) {
	n := core.NewNode()
	if err := t.Insert(n); err != nil {
		return nil, fmt.Errorf("%s: internal node: %w", method, ErrConstructFailed)
	}
	parent.SetChild(n)

	return n, drawLength(n, cfg, method)
}

// drawLength assigns a branch length from the configured distribution;
// a false draw leaves the length undefined.
func drawLength(n *core.Node, cfg config, method string) error {
	if l, ok := cfg.lengthFn(cfg.rng); ok {
		if err := n.SetLength(l); err != nil {
			return fmt.Errorf("%s: branch length: %w", method, err)
		}
	}

	return nil
}

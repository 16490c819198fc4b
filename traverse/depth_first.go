package traverse

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// walker encapsulates state shared by the recursive walks.
type walker struct {
	opts Options
	v    Visitor
}

// DepthFirst walks the tree depth-first from its root, firing the visitor's
// hooks in the documented sequence. Recursing into a daughter processes her
// whole subtree and her righthand (or lefthand, under RTL) siblings before
// returning, so a walk started at the root visits every node exactly once.
// Returns ErrTreeNil, ErrNoRoot, or the first hook error (wrapped).
func DepthFirst(t *core.Tree, v Visitor, opts ...Option) error {
	w, root, err := prepare(t, v, opts)
	if err != nil {
		return err
	}

	return w.depth(root)
}

// BreadthFirst walks the tree with the sibling branch evaluated before the
// daughter branch. This is a distinct, named sibling-first order, not
// conventional level order (use LevelOrder for that).
func BreadthFirst(t *core.Tree, v Visitor, opts ...Option) error {
	w, root, err := prepare(t, v, opts)
	if err != nil {
		return err
	}

	return w.breadth(root)
}

func prepare(t *core.Tree, v Visitor, opts []Option) (*walker, *core.Node, error) {
	if t == nil {
		return nil, nil, ErrTreeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	root := t.Root()
	if root == nil {
		return nil, nil, ErrNoRoot
	}

	return &walker{opts: o, v: v}, root, nil
}

// daughter resolves the node's first (LTR) or last (RTL) daughter.
func (w *walker) daughter(n *core.Node) *core.Node {
	if w.opts.Order == RTL {
		return n.LastDaughter()
	}

	return n.FirstDaughter()
}

// sister resolves the node's next (LTR) or previous (RTL) sister.
func (w *walker) sister(n *core.Node) *core.Node {
	if w.opts.Order == RTL {
		return n.PreviousSister()
	}

	return n.NextSister()
}

func (w *walker) call(h Hook, name string, n *core.Node) error {
	if h == nil {
		return nil
	}
	if err := h(n); err != nil {
		return fmt.Errorf("traverse: %s hook for node %d: %w", name, n.ID(), err)
	}

	return nil
}

func (w *walker) callRel(h RelativeHook, name string, n, rel *core.Node) error {
	if h == nil {
		return nil
	}
	if !w.opts.Relatives {
		rel = nil
	}
	if err := h(n, rel); err != nil {
		return fmt.Errorf("traverse: %s hook for node %d: %w", name, n.ID(), err)
	}

	return nil
}

// depth processes node n: Pre, the daughter branch, In, the sister branch,
// Post. The sister recursion is what carries the walk across a family.
func (w *walker) depth(n *core.Node) error {
	// 1. Arrival.
	if err := w.call(w.v.Pre, "pre", n); err != nil {
		return err
	}

	// 2. Daughter branch.
	if d := w.daughter(n); d != nil {
		if err := w.callRel(w.v.PreDaughter, "pre_daughter", n, d); err != nil {
			return err
		}
		if err := w.depth(d); err != nil {
			return err
		}
		if err := w.callRel(w.v.PostDaughter, "post_daughter", n, d); err != nil {
			return err
		}
	} else if err := w.call(w.v.NoDaughter, "no_daughter", n); err != nil {
		return err
	}

	// 3. In-order point.
	if err := w.call(w.v.In, "in", n); err != nil {
		return err
	}

	// 4. Sister branch.
	if s := w.sister(n); s != nil {
		if err := w.callRel(w.v.PreSister, "pre_sister", n, s); err != nil {
			return err
		}
		if err := w.depth(s); err != nil {
			return err
		}
		if err := w.callRel(w.v.PostSister, "post_sister", n, s); err != nil {
			return err
		}
	} else if err := w.call(w.v.NoSister, "no_sister", n); err != nil {
		return err
	}

	// 5. Departure.
	return w.call(w.v.Post, "post", n)
}

// breadth is the depth recursion with the sister branch evaluated first.
func (w *walker) breadth(n *core.Node) error {
	// 1. Arrival.
	if err := w.call(w.v.Pre, "pre", n); err != nil {
		return err
	}

	// 2. Sister branch first.
	if s := w.sister(n); s != nil {
		if err := w.callRel(w.v.PreSister, "pre_sister", n, s); err != nil {
			return err
		}
		if err := w.breadth(s); err != nil {
			return err
		}
		if err := w.callRel(w.v.PostSister, "post_sister", n, s); err != nil {
			return err
		}
	} else if err := w.call(w.v.NoSister, "no_sister", n); err != nil {
		return err
	}

	// 3. In-order point.
	if err := w.call(w.v.In, "in", n); err != nil {
		return err
	}

	// 4. Daughter branch.
	if d := w.daughter(n); d != nil {
		if err := w.callRel(w.v.PreDaughter, "pre_daughter", n, d); err != nil {
			return err
		}
		if err := w.breadth(d); err != nil {
			return err
		}
		if err := w.callRel(w.v.PostDaughter, "post_daughter", n, d); err != nil {
			return err
		}
	} else if err := w.call(w.v.NoDaughter, "no_daughter", n); err != nil {
		return err
	}

	// 5. Departure.
	return w.call(w.v.Post, "post", n)
}

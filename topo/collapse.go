package topo

import "github.com/treeline-bio/phylo/core"

// Collapse splices node n out of its tree: every child of n is reparented to
// n's parent, n's branch length (when defined) is folded into each child's
// length (an undefined child length defaults to 0 first), and n is pruned
// from its parent and removed from its owning tree.
//
// No-op on the root, on a terminal node, or on nil.
func Collapse(n *core.Node) {
	if n == nil || n.IsRoot() || n.IsTerminal() {
		return
	}

	p := n.Parent()
	nl, nHasLength := n.Length()

	// Reparenting mutates the child list; iterate over a snapshot.
	kids := append([]*core.Node(nil), n.Children()...)
	for _, c := range kids {
		if nHasLength {
			cl, _ := c.Length() // undefined defaults to 0
			_ = c.SetLength(cl + nl)
		}
		p.SetChild(c)
	}

	p.PruneChild(n)
	if t := n.Tree(); t != nil {
		t.Remove(n)
	}
}

package topo

import "github.com/treeline-bio/phylo/core"

// KeepTips reduces the tree to the given tips: the retain-set is the union
// of the kept tips and all their ancestors; every other node is deleted from
// its parent and from the tree in a single post-order pass. Retained nodes
// whose child count dropped to exactly one are spliced out, their branch
// length folded into their sole surviving child, which reattaches to the
// grandparent at the vacated position.
func KeepTips(t *core.Tree, keep []*core.Node) error {
	if t == nil {
		return ErrTreeNil
	}
	root := t.Root()
	if root == nil {
		return nil
	}

	retain := make(map[uint64]bool, t.Len())
	for _, tip := range keep {
		if tip == nil {
			continue
		}
		retain[tip.ID()] = true
		for _, a := range tip.Ancestors() {
			retain[a.ID()] = true
		}
	}

	// Children before parents, so deletions below are complete before each
	// parent decides whether to splice.
	order := postorder(root)
	removed := make(map[uint64]int)
	for _, n := range order {
		if !retain[n.ID()] {
			if p := n.Parent(); p != nil {
				p.PruneChild(n)
				removed[p.ID()]++
			}
			t.Remove(n)

			continue
		}
		if removed[n.ID()] > 0 && len(n.Children()) == 1 {
			spliceNode(t, n)
		}
	}

	return nil
}

// PruneTips deletes the given tips from the tree, keeping all others.
func PruneTips(t *core.Tree, remove []*core.Node) error {
	if t == nil {
		return ErrTreeNil
	}
	drop := make(map[uint64]bool, len(remove))
	for _, tip := range remove {
		if tip != nil {
			drop[tip.ID()] = true
		}
	}
	var keep []*core.Node
	for _, tip := range t.Terminals() {
		if !drop[tip.ID()] {
			keep = append(keep, tip)
		}
	}

	return KeepTips(t, keep)
}

// spliceNode removes the unary node n, reattaching its sole child to n's
// parent at n's former position with the branch lengths summed. The root is
// never spliced.
func spliceNode(t *core.Tree, n *core.Node) {
	p := n.Parent()
	if p == nil {
		return
	}
	c := n.Children()[0]
	at := p.ChildIndex(n)
	spliceLengths(c, n)
	p.PruneChild(n)
	p.SetChildAt(c, at)
	t.Remove(n)
}

// postorder lists the subtree under root with children before parents.
func postorder(root *core.Node) []*core.Node {
	var out []*core.Node
	var walk func(n *core.Node)
	walk = func(n *core.Node) {
		for _, c := range n.Children() {
			walk(c)
		}
		out = append(out, n)
	}
	walk(root)

	return out
}

// File: methods_mutate.go
// Role: Structural mutation primitives (reparent, prune, raw parent links).
//
// Reparenting with structurally invalid arguments (nil, self-reference,
// already-a-child) is a silent no-op, not an error, so that partially built
// trees tolerate incremental construction. The cycle guard in setChild is an
// explicit three-phase algorithm: relocate self out of the ancestor lineage,
// detach the child, attach the child.
package core

// ChildIndex returns the position of child in n's child list by identity
// scan, or -1 if child is not a daughter of n.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}

	return -1
}

// SetChild appends child to n's child list, detaching it from any previous
// parent. No-op if child is nil, identical to n, or already a child of n.
//
// If child is currently an ancestor of n (so that adopting it would create a
// cycle), n is first detached from its own parent and reattached as a child
// of child's parent; this relocates n out of the lineage between child and
// the root before the adoption proceeds.
func (n *Node) SetChild(child *Node) {
	n.setChild(child, 0, false)
}

// SetChildAt inserts child into n's child list at index idx (clamped into
// [0, len]); existing children at or beyond idx shift one position to the
// right. Otherwise identical to SetChild, including the cycle guard and the
// silent no-op contract.
func (n *Node) SetChildAt(child *Node, idx int) {
	n.setChild(child, idx, true)
}

func (n *Node) setChild(child *Node, idx int, hasIdx bool) {
	// 1. Silent no-ops: nothing to adopt, self-adoption, already adopted.
	if child == nil || child == n || n.ChildIndex(child) >= 0 {
		return
	}

	childParent := child.parent

	// 2. Cycle guard: adopting an ancestor. Relocate n under the ancestor's
	//    own parent first, so the lineage between child and the root no
	//    longer passes through n.
	if child.IsAncestorOf(n) {
		if n.parent != nil {
			n.parent.PruneChild(n)
		}
		if childParent != nil {
			childParent.attach(n, 0, false)
		}
	}

	// 3. Detach child from its current parent, if any.
	if childParent != nil {
		childParent.PruneChild(child)
	}

	// 4. Insert child at the requested position (or append).
	n.attach(child, idx, hasIdx)
}

// attach links child under n without any guard; callers must have ensured
// acyclicity and detachment already.
func (n *Node) attach(child *Node, idx int, hasIdx bool) {
	if !hasIdx || idx >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		if idx < 0 {
			idx = 0
		}
		n.children = append(n.children, nil)
		copy(n.children[idx+1:], n.children[idx:])
		n.children[idx] = child
	}
	child.parent = n
}

// PruneChild removes child from n's child list by identity scan and clears
// the child's parent back-reference. No further topology repair is
// attempted: the child's subtree stays intact, merely detached. No-op if
// child is nil or not a daughter of n.
func (n *Node) PruneChild(child *Node) {
	i := n.ChildIndex(child)
	if i < 0 {
		return
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	if child.parent == n {
		child.parent = nil
	}
}

// SetParent makes p the node's parent via p.SetChild(n), with the same
// silent no-op and cycle-guard semantics. A nil p detaches n from its
// current parent.
func (n *Node) SetParent(p *Node) {
	if p == nil {
		if n.parent != nil {
			n.parent.PruneChild(n)
		}

		return
	}
	p.SetChild(n)
}

// LinkParent sets only the parent back-reference, without touching any
// child list. It exists for bulk imports whose source carries parent
// pointers but no sibling order; call Tree.ReconcileSiblings afterwards to
// rebuild the child lists. Steady-state code must use SetChild instead.
func LinkParent(child, parent *Node) {
	if child == nil || child == parent {
		return
	}
	child.parent = parent
}

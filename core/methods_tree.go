// File: methods_tree.go
// Role: Tree membership, root discovery, and whole-tree queries.
//
// Determinism:
//   - Nodes() and every scan-based query follow insertion order.
//   - Root() returns the first candidate by scan order when discovery is
//     ambiguous, warning instead of failing.
package core

import "math"

// Insert registers n as a member of the tree and sets its owning-tree
// back-reference. Inserting a node twice is a no-op. A nil node is rejected
// with ErrObjectMismatch.
// Complexity: O(1) amortized
func (t *Tree) Insert(n *Node) error {
	if n == nil {
		return ErrObjectMismatch
	}
	if _, ok := t.nodes.Get(n.id); ok {
		return nil // no-op for an existing member
	}
	t.nodes.Put(n.id, n)
	n.tree = t

	return nil
}

// Remove drops n from the tree's membership and clears its owning-tree
// back-reference. Parent/child links are left untouched; because those links
// are non-owning, removing a subtree's root logically orphans the whole
// subtree for collection. No-op if n is nil or not a member.
func (t *Tree) Remove(n *Node) {
	if n == nil {
		return
	}
	if _, ok := t.nodes.Get(n.id); !ok {
		return
	}
	t.nodes.Remove(n.id)
	if n.tree == t {
		n.tree = nil
	}
}

// Contains reports whether n is a registered member of the tree.
func (t *Tree) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := t.nodes.Get(n.id)

	return ok
}

// Len returns the number of member nodes.
func (t *Tree) Len() int { return t.nodes.Size() }

// Nodes returns the member nodes in insertion order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, 0, t.nodes.Size())
	it := t.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Node))
	}

	return out
}

// Root returns the tree's root, found by linear scan over the members in
// insertion order.
//
// Normally exactly one member is parentless and is returned. If several are,
// a warning is logged and the first by scan order is returned. If none are,
// the root is inferred as a node referenced as a parent by members but
// absent from the member set itself; again the first such candidate wins,
// with a warning when there are zero or several. An empty tree returns nil.
// Complexity: O(n)
func (t *Tree) Root() *Node {
	var parentless []*Node
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.parent == nil {
			parentless = append(parentless, n)
		}
	}
	if len(parentless) == 1 {
		return parentless[0]
	}
	if len(parentless) > 1 {
		logger.Warn("multiple parentless nodes during root discovery",
			"tree_size", t.nodes.Size(), "candidates", len(parentless))

		return parentless[0]
	}

	// No parentless member: infer the root as a parent referenced from
	// inside the member set but not itself registered.
	var inferred []*Node
	seen := make(map[uint64]bool)
	it = t.nodes.Iterator()
	for it.Next() {
		p := it.Value().(*Node).parent
		if p == nil || seen[p.id] {
			continue
		}
		seen[p.id] = true
		if !t.Contains(p) {
			inferred = append(inferred, p)
		}
	}
	if len(inferred) == 0 {
		if t.nodes.Size() > 0 {
			logger.Warn("no root candidate during root discovery", "tree_size", t.nodes.Size())
		}

		return nil
	}
	if len(inferred) > 1 {
		logger.Warn("multiple inferred roots during root discovery",
			"tree_size", t.nodes.Size(), "candidates", len(inferred))
	}

	return inferred[0]
}

// Terminals returns the tips (childless members) in insertion order.
func (t *Tree) Terminals() []*Node {
	var tips []*Node
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.IsTerminal() {
			tips = append(tips, n)
		}
	}

	return tips
}

// Internals returns the members with at least one child, in insertion order.
func (t *Tree) Internals() []*Node {
	var ints []*Node
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.IsInternal() {
			ints = append(ints, n)
		}
	}

	return ints
}

// Length returns the sum of all defined branch lengths in the tree.
func (t *Tree) Length() float64 {
	var total float64
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.hasLength {
			total += n.length
		}
	}

	return total
}

// Depth returns the maximum root-to-tip path length (sum of branch lengths,
// undefined treated as 0), or 0 for an empty tree.
func (t *Tree) Depth() float64 {
	root := t.Root()
	if root == nil {
		return 0
	}

	return root.Height()
}

// IsBinary reports whether every internal member has exactly two children.
// An empty tree is vacuously binary.
func (t *Tree) IsBinary() bool {
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.IsInternal() && len(n.children) != 2 {
			return false
		}
	}

	return true
}

// IsUltrametric reports whether all root-to-tip path lengths agree within
// the given tolerance (as a fraction of the longest path).
func (t *Tree) IsUltrametric(tolerance float64) bool {
	root := t.Root()
	if root == nil {
		return true
	}
	var min, max float64
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, tip := range root.Terminals() {
		var d float64
		for cur := tip; cur != root && cur != nil; cur = cur.parent {
			if cur.hasLength {
				d += cur.length
			}
		}
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if max == 0 {
		return true
	}

	return (max-min)/max <= tolerance
}

// Cherries returns the number of internal members whose children are
// exactly two tips.
func (t *Tree) Cherries() int {
	var count int
	it := t.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if len(n.children) == 2 && n.children[0].IsTerminal() && n.children[1].IsTerminal() {
			count++
		}
	}

	return count
}

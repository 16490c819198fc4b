// File: methods_node.go
// Role: Node accessors and derived relations.
//
// Derived quantities (first/last daughter, previous/next sister) are computed
// by identity scan over the relevant child list on every call; nothing here
// caches topology.
package core

import "math"

// ID returns the node's stable, process-unique identity.
func (n *Node) ID() uint64 { return n.id }

// Name returns the node's label; the empty string means unnamed.
func (n *Node) Name() string { return n.name }

// SetName assigns the node's label.
func (n *Node) SetName(name string) { n.name = name }

// Rank returns the node's free-form rank tag; the empty string means unset.
func (n *Node) Rank() string { return n.rank }

// SetRank assigns the node's rank tag.
func (n *Node) SetRank(rank string) { n.rank = rank }

// Length returns the node's branch length and whether one is defined.
func (n *Node) Length() (float64, bool) { return n.length, n.hasLength }

// SetLength assigns the branch length leading to this node.
// NaN and infinities are rejected with ErrBadNumber. Negative values are
// accepted but logged as a warning.
func (n *Node) SetLength(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrBadNumber
	}
	if v < 0 {
		logger.Warn("negative branch length assigned", "node", n.id, "name", n.name, "length", v)
	}
	n.length = v
	n.hasLength = true

	return nil
}

// ClearLength removes the node's branch length, leaving it undefined.
func (n *Node) ClearLength() {
	n.length = 0
	n.hasLength = false
}

// Children returns the node's ordered child list as a live reference, not a
// copy. Callers may read it and reorder it in place, but must not grow or
// shrink it outside the mutation API (SetChild, PruneChild).
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Tree returns the node's owning tree, or nil for a standalone node.
func (n *Node) Tree() *Tree { return n.tree }

// IsTerminal reports whether the node is a tip (no children).
func (n *Node) IsTerminal() bool { return len(n.children) == 0 }

// IsInternal reports whether the node has at least one child.
func (n *Node) IsInternal() bool { return len(n.children) > 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// FirstDaughter returns the first child, or nil for a tip.
func (n *Node) FirstDaughter() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[0]
}

// LastDaughter returns the last child, or nil for a tip.
func (n *Node) LastDaughter() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[len(n.children)-1]
}

// NextSister returns the sibling immediately to the right in the parent's
// child list, found by identity scan, or nil if none.
func (n *Node) NextSister() *Node {
	if n.parent == nil {
		return nil
	}
	sibs := n.parent.children
	for i, s := range sibs {
		if s == n && i+1 < len(sibs) {
			return sibs[i+1]
		}
	}

	return nil
}

// PreviousSister returns the sibling immediately to the left in the parent's
// child list, found by identity scan, or nil if none.
func (n *Node) PreviousSister() *Node {
	if n.parent == nil {
		return nil
	}
	sibs := n.parent.children
	for i, s := range sibs {
		if s == n && i > 0 {
			return sibs[i-1]
		}
	}

	return nil
}

// IsAncestorOf reports whether n lies on the parent chain between other and
// the root (self-exclusive: a node is not its own ancestor).
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}

	return false
}

// Ancestors returns the node's ancestors, self-exclusive, ordered strictly
// rootward: the parent first, the root last. This ordering is an invariant
// relied upon by MRCA resolution; do not reorder.
func (n *Node) Ancestors() []*Node {
	var anc []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		anc = append(anc, cur)
	}

	return anc
}

// Descendants returns every node below n in pre-order, self-exclusive.
func (n *Node) Descendants() []*Node {
	var desc []*Node
	var walk func(m *Node)
	walk = func(m *Node) {
		for _, c := range m.children {
			desc = append(desc, c)
			walk(c)
		}
	}
	walk(n)

	return desc
}

// Terminals returns the tips of the subtree rooted at n, in child-list
// order. A tip returns itself.
func (n *Node) Terminals() []*Node {
	if n.IsTerminal() {
		return []*Node{n}
	}
	var tips []*Node
	var walk func(m *Node)
	walk = func(m *Node) {
		if m.IsTerminal() {
			tips = append(tips, m)

			return
		}
		for _, c := range m.children {
			walk(c)
		}
	}
	walk(n)

	return tips
}

// TipCount returns the number of tips in the subtree rooted at n.
// A tip counts as 1.
func (n *Node) TipCount() int {
	if n.IsTerminal() {
		return 1
	}
	var count int
	for _, c := range n.children {
		count += c.TipCount()
	}

	return count
}

// Height returns the maximum sum of branch lengths from n down to any tip
// of its subtree, treating undefined lengths as 0.
func (n *Node) Height() float64 {
	var best float64
	for _, c := range n.children {
		h := c.Height()
		if c.hasLength {
			h += c.length
		}
		if h > best {
			best = h
		}
	}

	return best
}

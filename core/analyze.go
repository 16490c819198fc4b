// File: analyze.go
// Role: One-time sibling-order reconciliation for bulk imports.
//
// Import sources that carry only parent pointers (see LinkParent) leave the
// child lists empty. ReconcileSiblings rebuilds them pairwise so the derived
// relations (first/last daughter, previous/next sister) become available.
// It is deliberately O(n²) and must stay off the steady-state mutation path,
// where child lists are already ordered.
package core

// ReconcileSiblings assigns a deterministic left-to-right sibling order to
// members whose parent pointer is set but who are missing from their
// parent's child list.
//
// For every unordered pair of members sharing a parent, the first-found
// pairing (by insertion-order scan) fixes their next/previous relation; each
// parent's first and last daughters then follow from whichever children lack
// a predecessor or successor. The net effect is that every parent's child
// list holds its linked members exactly once, ordered by the members' scan
// order.
// Complexity: O(n²), intended for one-time reconciliation after bulk import.
func (t *Tree) ReconcileSiblings() {
	members := t.Nodes()
	for _, n := range members {
		p := n.parent
		if p == nil || p.ChildIndex(n) >= 0 {
			continue
		}
		// First-found pairing: n slots in after the already-reconciled
		// children sharing this parent, i.e. at the end of the list.
		p.children = append(p.children, n)
	}
}

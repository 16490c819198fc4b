package topo

import "github.com/treeline-bio/phylo/core"

// SetRootBelow reroots node's tree on the branch leading to node. The branch
// is split at WithSplitPoint (clamped into [0, length(node)]; midpoint by
// default): a fresh root adopts node with the near half and node's former
// parent with the far half, and the former ancestor chain is rotated
// underneath, each link keeping its predecessor's branch length and child
// position. A former root left holding a single child is spliced out, with
// the lengths summed.
//
// When node already is the root, or is a direct child of it, the call is a
// no-op returning the current root, unless WithForce is given. Otherwise the
// new root is returned.
//
// Total pairwise patristic distance between tips is invariant under this
// operation.
func SetRootBelow(node *core.Node, opts ...Option) (*core.Node, error) {
	if node == nil {
		return nil, ErrNodeNil
	}
	t := node.Tree()
	if t == nil {
		return nil, ErrDetached
	}
	o := resolveOptions(opts)

	root := t.Root()
	if !o.Force && (node == root || node.Parent() == root) {
		return root, nil
	}

	p := node.Parent()
	if p == nil {
		// The focal node is the root itself; there is no branch to split.
		return root, nil
	}
	r := p.Parent()
	d, dDefined := p.Length()
	tmp, _ := node.Length() // undefined defaults to 0

	dist := tmp / 2
	if o.hasSplitPoint {
		dist = clampSplit(o.SplitPoint, tmp)
	}

	// Capture p's position under r before the detachments below erase it.
	idx := 0
	if r != nil {
		idx = r.ChildIndex(p)
	}

	// 1–2. New root q adopts node (near half) and p (far half).
	q := core.NewNode()
	q.SetChild(node)
	_ = node.SetLength(dist)
	q.SetChild(p)
	_ = p.SetLength(tmp - dist)
	newRoot := q

	// 3. Rotate the former ancestor chain underneath: each link r re-hangs
	//    from its former child p at the position p vacated, taking over the
	//    branch length p used to hold.
	for r != nil {
		s := r.Parent()
		nextIdx := 0
		if s != nil {
			nextIdx = s.ChildIndex(r)
		}
		rl, rlDefined := r.Length()

		p.SetChildAt(r, idx)
		if dDefined {
			_ = r.SetLength(d)
		} else {
			r.ClearLength()
		}

		d, dDefined = rl, rlDefined
		q, p, r, idx = p, r, s, nextIdx
	}

	// 4. p is the former root. If the rotation left it with a single child,
	//    splice it out, summing the child's and p's branch lengths.
	if len(p.Children()) == 1 {
		c := p.Children()[0]
		at := q.ChildIndex(p)
		q.PruneChild(p)
		q.SetChildAt(c, at)
		spliceLengths(c, p)
		t.Remove(p)
	}

	// 5. Register the new root.
	_ = t.Insert(newRoot)

	return newRoot, nil
}

// clampSplit clamps x into the interval between 0 and length, whichever
// orientation that interval has.
func clampSplit(x, length float64) float64 {
	lo, hi := 0.0, length
	if length < 0 {
		lo, hi = length, 0
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// spliceLengths folds removed's branch length into keep's: if either is
// defined the sum (undefined as 0) is assigned; if both are undefined,
// keep's stays undefined.
func spliceLengths(keep, removed *core.Node) {
	kl, kOK := keep.Length()
	rl, rOK := removed.Length()
	if !kOK && !rOK {
		return
	}
	_ = keep.SetLength(kl + rl)
}

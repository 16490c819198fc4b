package topo

import (
	"sort"

	"github.com/treeline-bio/phylo/core"
)

// Ladderize reorders every node's immediate children in a single post-order
// pass, producing the staircase layout: terminal children sorted
// alphabetically by name and placed first, followed by internal children
// sorted ascending by descendant count (tips count as 1, an internal node as
// 1 plus the sum of its children's counts).
//
// WithReverse flips the whole convention at once: both sort orders become
// descending and the terminals move after the internals. Applying Ladderize
// twice yields the same ordering as applying it once.
func Ladderize(t *core.Tree, opts ...Option) error {
	if t == nil {
		return ErrTreeNil
	}
	root := t.Root()
	if root == nil {
		return nil
	}
	o := resolveOptions(opts)

	sizes := make(map[*core.Node]int, t.Len())
	var walk func(n *core.Node) int
	walk = func(n *core.Node) int {
		size := 1
		for _, c := range n.Children() {
			size += walk(c)
		}
		sizes[n] = size
		reorderChildren(n, sizes, o.Reverse)

		return size
	}
	walk(root)

	return nil
}

// reorderChildren permutes n's child list in place: terminals by name,
// internals by already-computed descendant count.
func reorderChildren(n *core.Node, sizes map[*core.Node]int, reverse bool) {
	kids := n.Children()
	if len(kids) < 2 {
		return
	}

	var tips, internals []*core.Node
	for _, c := range kids {
		if c.IsTerminal() {
			tips = append(tips, c)
		} else {
			internals = append(internals, c)
		}
	}

	sort.SliceStable(tips, func(i, j int) bool {
		if reverse {
			return tips[i].Name() > tips[j].Name()
		}

		return tips[i].Name() < tips[j].Name()
	})
	sort.SliceStable(internals, func(i, j int) bool {
		if reverse {
			return sizes[internals[i]] > sizes[internals[j]]
		}

		return sizes[internals[i]] < sizes[internals[j]]
	})

	ordered := make([]*core.Node, 0, len(kids))
	if reverse {
		ordered = append(ordered, internals...)
		ordered = append(ordered, tips...)
	} else {
		ordered = append(ordered, tips...)
		ordered = append(ordered, internals...)
	}
	copy(kids, ordered)
}

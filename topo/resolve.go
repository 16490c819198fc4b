package topo

import (
	"fmt"

	"github.com/treeline-bio/phylo/core"
)

// Resolve breaks every polytomy in the tree into bifurcations. While a node
// has more than two children, a new zero-length node is created, two of the
// remaining children are selected at random and reattached under it, and the
// new node joins the candidate pool as a child of the polytomy. New nodes
// are auto-named r1, r2, … unless WithAnonymous is given; WithSeed fixes the
// pairing order.
func Resolve(t *core.Tree, opts ...Option) error {
	if t == nil {
		return ErrTreeNil
	}
	o := resolveOptions(opts)
	rng := rngFromSeed(o.Seed)

	serial := 1
	for _, n := range t.Nodes() {
		for len(n.Children()) > 2 {
			nn := core.NewNode()
			_ = nn.SetLength(0)
			if !o.Anonymous {
				nn.SetName(fmt.Sprintf("r%d", serial))
				serial++
			}
			if err := t.Insert(nn); err != nil {
				return err
			}

			// Pick two distinct children of the polytomy.
			kids := n.Children()
			i := rng.Intn(len(kids))
			j := rng.Intn(len(kids) - 1)
			if j >= i {
				j++
			}
			a, b := kids[i], kids[j]

			nn.SetChild(a)
			nn.SetChild(b)
			n.SetChild(nn)
		}
	}

	return nil
}

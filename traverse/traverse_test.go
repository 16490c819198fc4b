package traverse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeline-bio/phylo/core"
	"github.com/treeline-bio/phylo/traverse"
)

// buildTree constructs ((A,B)AB,C)root and returns the tree and its nodes.
func buildTree(t *testing.T) (*core.Tree, map[string]*core.Node) {
	t.Helper()

	tr := core.NewTree()
	nodes := make(map[string]*core.Node)
	for _, name := range []string{"root", "AB", "A", "B", "C"} {
		n := core.NewNode()
		n.SetName(name)
		require.NoError(t, tr.Insert(n))
		nodes[name] = n
	}
	nodes["root"].SetChild(nodes["AB"])
	nodes["root"].SetChild(nodes["C"])
	nodes["AB"].SetChild(nodes["A"])
	nodes["AB"].SetChild(nodes["B"])

	return tr, nodes
}

// recorder accumulates a readable event trace.
type recorder struct {
	events []string
}

func (r *recorder) hook(name string) traverse.Hook {
	return func(n *core.Node) error {
		r.events = append(r.events, name+":"+n.Name())

		return nil
	}
}

func (r *recorder) relHook(name string) traverse.RelativeHook {
	return func(n, rel *core.Node) error {
		if rel != nil {
			r.events = append(r.events, fmt.Sprintf("%s:%s/%s", name, n.Name(), rel.Name()))
		} else {
			r.events = append(r.events, name+":"+n.Name())
		}

		return nil
	}
}

func (r *recorder) visitor() traverse.Visitor {
	return traverse.Visitor{
		Pre:          r.hook("pre"),
		PreDaughter:  r.relHook("preD"),
		PostDaughter: r.relHook("postD"),
		NoDaughter:   r.hook("noD"),
		In:           r.hook("in"),
		PreSister:    r.relHook("preS"),
		PostSister:   r.relHook("postS"),
		NoSister:     r.hook("noS"),
		Post:         r.hook("post"),
	}
}

func TestDepthFirst_FullEventSequence(t *testing.T) {
	tr, _ := buildTree(t)
	rec := &recorder{}

	require.NoError(t, traverse.DepthFirst(tr, rec.visitor(), traverse.WithRelatives()))

	want := []string{
		"pre:root",
		"preD:root/AB",
		"pre:AB",
		"preD:AB/A",
		"pre:A", "noD:A", "in:A",
		"preS:A/B",
		"pre:B", "noD:B", "in:B", "noS:B", "post:B",
		"postS:A/B",
		"post:A",
		"postD:AB/A",
		"in:AB",
		"preS:AB/C",
		"pre:C", "noD:C", "in:C", "noS:C", "post:C",
		"postS:AB/C",
		"post:AB",
		"postD:root/AB",
		"in:root",
		"noS:root",
		"post:root",
	}
	assert.Equal(t, want, rec.events)
}

func TestDepthFirst_VisitsEveryNodeOnce(t *testing.T) {
	tr, _ := buildTree(t)
	counts := make(map[string]int)

	v := traverse.Visitor{Pre: func(n *core.Node) error {
		counts[n.Name()]++

		return nil
	}}
	require.NoError(t, traverse.DepthFirst(tr, v))

	assert.Len(t, counts, 5)
	for name, c := range counts {
		assert.Equal(t, 1, c, "node %s visited once", name)
	}
}

func TestDepthFirst_RTLOrder(t *testing.T) {
	tr, _ := buildTree(t)
	var order []string

	v := traverse.Visitor{Pre: func(n *core.Node) error {
		order = append(order, n.Name())

		return nil
	}}
	require.NoError(t, traverse.DepthFirst(tr, v, traverse.WithOrder(traverse.RTL)))

	assert.Equal(t, []string{"root", "C", "AB", "B", "A"}, order)
}

func TestDepthFirst_RelativesNilWithoutFlag(t *testing.T) {
	tr, _ := buildTree(t)

	v := traverse.Visitor{PreDaughter: func(n, rel *core.Node) error {
		assert.Nil(t, rel, "relative must be nil without WithRelatives")

		return nil
	}}
	require.NoError(t, traverse.DepthFirst(tr, v))
}

func TestDepthFirst_HookErrorAborts(t *testing.T) {
	tr, _ := buildTree(t)
	boom := errors.New("boom")
	var seen []string

	v := traverse.Visitor{Pre: func(n *core.Node) error {
		seen = append(seen, n.Name())
		if n.Name() == "A" {
			return boom
		}

		return nil
	}}
	err := traverse.DepthFirst(tr, v)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"root", "AB", "A"}, seen)
}

func TestDepthFirst_NilTreeAndNoRoot(t *testing.T) {
	assert.ErrorIs(t, traverse.DepthFirst(nil, traverse.Visitor{}), traverse.ErrTreeNil)
	assert.ErrorIs(t, traverse.DepthFirst(core.NewTree(), traverse.Visitor{}), traverse.ErrNoRoot)
}

func TestBreadthFirst_SisterBeforeDaughter(t *testing.T) {
	tr, _ := buildTree(t)
	var order []string

	v := traverse.Visitor{Pre: func(n *core.Node) error {
		order = append(order, n.Name())

		return nil
	}}
	require.NoError(t, traverse.BreadthFirst(tr, v))

	// Not conventional BFS: the sibling recursion runs before the daughter
	// recursion at every node.
	assert.Equal(t, []string{"root", "AB", "C", "A", "B"}, order)
}

func TestBreadthFirst_VisitsEveryNodeOnce(t *testing.T) {
	tr, _ := buildTree(t)
	counts := make(map[string]int)

	v := traverse.Visitor{Post: func(n *core.Node) error {
		counts[n.Name()]++

		return nil
	}}
	require.NoError(t, traverse.BreadthFirst(tr, v))
	assert.Len(t, counts, 5)
}

func TestLevelOrder_FIFO(t *testing.T) {
	tr, _ := buildTree(t)
	var order []string

	err := traverse.LevelOrder(tr, func(n *core.Node) error {
		order = append(order, n.Name())

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "AB", "C", "A", "B"}, order)
}

func TestLevelOrder_RTL(t *testing.T) {
	tr, _ := buildTree(t)
	var order []string

	err := traverse.LevelOrder(tr, func(n *core.Node) error {
		order = append(order, n.Name())

		return nil
	}, traverse.WithOrder(traverse.RTL))
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "C", "AB", "B", "A"}, order)
}

func TestLevelOrder_NilCallback(t *testing.T) {
	tr, _ := buildTree(t)
	assert.ErrorIs(t, traverse.LevelOrder(tr, nil), core.ErrBadArgs)
}

func TestLevelOrder_HookErrorAborts(t *testing.T) {
	tr, _ := buildTree(t)
	boom := errors.New("boom")

	err := traverse.LevelOrder(tr, func(n *core.Node) error {
		if n.Name() == "C" {
			return boom
		}

		return nil
	})
	assert.ErrorIs(t, err, boom)
}

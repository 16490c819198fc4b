package traverse_test

import (
	"fmt"
	"strings"

	"github.com/treeline-bio/phylo/core"
	"github.com/treeline-bio/phylo/traverse"
)

func buildExampleTree() *core.Tree {
	tr := core.NewTree()
	named := func(parent *core.Node, name string) *core.Node {
		n := core.NewNode()
		n.SetName(name)
		_ = tr.Insert(n)
		if parent != nil {
			parent.SetChild(n)
		}

		return n
	}

	root := named(nil, "root")
	ab := named(root, "AB")
	named(ab, "A")
	named(ab, "B")
	named(root, "C")

	return tr
}

// ExampleDepthFirst collects the Pre hook firing order on ((A,B)AB,C):
// each node fires before anything in its subtree, giving pre-order.
func ExampleDepthFirst() {
	tr := buildExampleTree()

	var order []string
	err := traverse.DepthFirst(tr, traverse.Visitor{
		Pre: func(n *core.Node) error {
			order = append(order, n.Name())

			return nil
		},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// root AB A B C
}

// ExampleLevelOrder walks the same tree level by level.
func ExampleLevelOrder() {
	tr := buildExampleTree()

	var order []string
	err := traverse.LevelOrder(tr, func(n *core.Node) error {
		order = append(order, n.Name())

		return nil
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// root AB C A B
}

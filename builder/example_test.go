package builder_test

import (
	"fmt"
	"strings"

	"github.com/treeline-bio/phylo/builder"
)

// ExampleBuild assembles the fully balanced four-tip tree with letter
// labels and unit branch lengths.
func ExampleBuild() {
	tr, err := builder.Build(nil,
		[]builder.Option{builder.WithAlphaLabels(), builder.WithConstantLength(1)},
		builder.Balanced(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var tips []string
	for _, n := range tr.Terminals() {
		tips = append(tips, n.Name())
	}
	fmt.Println("tips:", strings.Join(tips, " "))
	fmt.Println("total length:", tr.Length())

	// Output:
	// tips: A B C D
	// total length: 6
}

// File: forest.go
// Role: Ordered collection of trees.
package core

// Forest is an ordered collection of trees. Its members may all reference
// one shared taxon-linkage collection, which lives outside this core.
type Forest struct {
	trees []*Tree
}

// NewForest creates an empty forest.
func NewForest() *Forest { return &Forest{} }

// Insert appends t to the forest. A nil tree is rejected with
// ErrObjectMismatch; inserting the same tree twice is a no-op.
func (f *Forest) Insert(t *Tree) error {
	if t == nil {
		return ErrObjectMismatch
	}
	for _, member := range f.trees {
		if member == t {
			return nil
		}
	}
	f.trees = append(f.trees, t)

	return nil
}

// Trees returns the member trees in insertion order.
func (f *Forest) Trees() []*Tree {
	out := make([]*Tree, len(f.trees))
	copy(out, f.trees)

	return out
}

// Len returns the number of member trees.
func (f *Forest) Len() int { return len(f.trees) }

// DefaultTree returns the first member flagged as default, falling back to
// the first member, or nil for an empty forest.
func (f *Forest) DefaultTree() *Tree {
	for _, t := range f.trees {
		if t.defaultTree {
			return t
		}
	}
	if len(f.trees) > 0 {
		return f.trees[0]
	}

	return nil
}

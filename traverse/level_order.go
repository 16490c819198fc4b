package traverse

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/treeline-bio/phylo/core"
)

// LevelOrder walks the tree in strict level order: a FIFO queue is seeded
// with the root, and each dequeued node is passed to fn before its children
// are enqueued in child-list order (reversed under RTL).
//
// A nil fn is rejected with a wrapped core.ErrBadArgs. A hook error aborts
// the walk.
// Complexity: O(n) time, O(w) queue memory for the widest level.
func LevelOrder(t *core.Tree, fn Hook, opts ...Option) error {
	if t == nil {
		return ErrTreeNil
	}
	if fn == nil {
		return fmt.Errorf("traverse: level-order callback: %w", core.ErrBadArgs)
	}
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	root := t.Root()
	if root == nil {
		return ErrNoRoot
	}

	q := arrayqueue.New()
	q.Enqueue(root)
	for !q.Empty() {
		v, _ := q.Dequeue()
		n := v.(*core.Node)
		if err := fn(n); err != nil {
			return fmt.Errorf("traverse: level-order hook for node %d: %w", n.ID(), err)
		}
		kids := n.Children()
		if o.Order == RTL {
			for i := len(kids) - 1; i >= 0; i-- {
				q.Enqueue(kids[i])
			}
		} else {
			for _, c := range kids {
				q.Enqueue(c)
			}
		}
	}

	return nil
}

// Package traverse implements the traversal engines for rooted trees:
// depth-first, sibling-first, and strict level-order walks over a core.Tree,
// each exposing named event hooks.
//
// What:
//
//   - DepthFirst: recursive walk firing up to nine hooks per node
//     (Pre, PreDaughter, PostDaughter, NoDaughter, In, PreSister,
//     PostSister, NoSister, Post). Recursing into a daughter processes the
//     daughter's entire subtree and all of her own righthand siblings before
//     returning; started at the root this visits every node exactly once.
//   - BreadthFirst: structurally identical recursion with the sibling branch
//     evaluated before the daughter branch. This is a distinct, named
//     traversal order — it does not produce conventional level order.
//   - LevelOrder: classic FIFO-queue walk invoking a single callback per
//     node; children are enqueued in child-list order.
//
// All walks accept an order flag: LTR (default: first daughter, next sister)
// or RTL (last daughter, previous sister), and a WithRelatives flag that
// makes the daughter/sister hooks receive the related node as a second
// argument (nil otherwise).
//
// Hooks must not structurally mutate the tree being walked; the walkers read
// parent/child pointers live at each step.
//
// Complexity:
//
//   - Time:   O(n) node visits plus hook cost.
//   - Memory: O(h) recursion for DepthFirst/BreadthFirst (h = tree height
//     plus sibling count), O(w) queue for LevelOrder (w = widest level).
//
// Errors:
//
//   - ErrTreeNil           tree pointer is nil
//   - ErrNoRoot            root discovery yielded no node
//   - core.ErrBadArgs      nil callback passed to LevelOrder (wrapped)
//   - hook errors          propagated, wrapped with the hook name
package traverse

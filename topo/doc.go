// Package topo implements structural edits above the core mutation
// primitives: collapsing internal nodes, rerooting below a focal node,
// resolving polytomies, ladderizing, and pruning tip subsets.
//
// What:
//
//   - Collapse: splice an internal node out, folding its branch length into
//     its children and reattaching them to the grandparent.
//   - SetRootBelow: reroot the tree on the branch leading to a focal node,
//     splitting that branch at a configurable point and rotating the former
//     ancestor chain.
//   - Resolve: break every polytomy into a cascade of random bifurcations
//     with zero-length internal nodes.
//   - Ladderize: reorder every node's children by subtree size (internals)
//     and name (tips) in a single post-order pass.
//   - PruneTips / KeepTips: delete tip subsets, splicing out internal nodes
//     left with a single child.
//
// Multi-step operations are not transactional: an error partway through
// leaves the tree partially restructured, with no automatic rollback.
//
// Errors:
//
//   - ErrNodeNil            focal node pointer is nil
//   - ErrTreeNil            tree pointer is nil
//   - ErrDetached           focal node has no owning tree
package topo

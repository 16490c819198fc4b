// Package phylo is an in-memory toolkit for building, restructuring,
// and comparing rooted phylogenetic trees.
//
// 🌳 What is phylo?
//
//	A small, focused library that brings together:
//		• Core primitives: create nodes & trees, reparent safely with cycle breaking
//		• Traversals: depth-first, sibling-first, and level-order walks with rich hooks
//		• Topology surgery: collapse, reroot, resolve polytomies, ladderize, prune tips
//		• Comparative statistics: patristic & nodal distances, Colless and I2
//		  imbalance, the Pybus–Harvey gamma, stemminess
//		• Tree comparison: branch-length score and Robinson–Foulds symmetric
//		  difference over canonical splits
//		• Divergence-order probabilities: the RANKPROB/COMPARE dynamic programs
//
// ✨ Why choose phylo?
//
//   - Parser-agnostic – trees are built through a tiny construction API,
//     so any Newick/Nexus/NeXML front-end can sit on top
//   - Auditable mutations – every structural edit preserves the single-root,
//     acyclic, consistent parent/child invariants
//   - Pure Go – no cgo
//   - Extensible – optional visitor hooks (Pre, In, Post, PreDaughter…) on
//     every traversal
//
// Everything is organized under six subpackages:
//
//	core/     — fundamental Node, Tree, Forest types & the mutation primitives
//	traverse/ — depth-first, sibling-first and level-order traversal engines
//	topo/     — collapse, reroot, resolve, ladderize, prune/keep tips
//	stats/    — distance, imbalance, era and two-tree comparison statistics
//	rankprob/ — divergence-order (rank) probability dynamic programs
//	builder/  — deterministic tree factories for tests and demos
//
// Quick ASCII example:
//
//	    ┌── A
//	 ┌──┤
//	 │  └── B
//	─┤
//	 └────── C
//
//	represents the rooted tree ((A,B),C).
//
//	go get github.com/treeline-bio/phylo
package phylo

// Package core defines the central Node, Tree, and Forest types,
// and provides the primitives for building and restructuring rooted trees.
//
// A Node owns its ordered child list; its parent and tree references are
// non-owning back-pointers. A Tree is an insertion-ordered collection of
// nodes with exactly one parentless member (the root) under normal operation.
// All mutation is single-threaded by contract: the model has no locks and
// concurrent structural edits of the same tree are unsupported.
//
// This file declares Node, Tree, Forest, TreeOption, the sentinel errors,
// and the NewNode/NewTree constructors.
//
// Errors:
//
//	ErrBadNumber      - a branch length that is not a finite number.
//	ErrObjectMismatch - a value of the wrong kind for the field or operation.
//	ErrBadArgs        - a structurally unusable argument (nil callback, etc.).
package core

import (
	"errors"
	"sync/atomic"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Sentinel errors for the canonical failure taxonomy. Algorithm packages
// wrap these with fmt.Errorf("pkg: context: %w", …); callers branch with
// errors.Is.
var (
	// ErrBadNumber indicates an attempt to assign NaN or an infinity as a
	// branch length.
	ErrBadNumber = errors.New("core: branch length is not a finite number")

	// ErrObjectMismatch indicates a value of the wrong kind: a nil node where
	// a tree member is required, or a tree shape that an operation cannot
	// accept (e.g. binary-only statistics on a multifurcating tree).
	ErrObjectMismatch = errors.New("core: object of the wrong kind")

	// ErrBadArgs indicates an argument that is structurally unusable, such as
	// a nil traversal callback or a non-bifurcating subtree passed to the
	// rank-probability programs.
	ErrBadArgs = errors.New("core: bad arguments")
)

// nextNodeID generates stable, process-unique node identities.
var nextNodeID uint64

// Node is a single tree vertex: identity, optional label, optional branch
// length, optional rank tag, an exclusively owned ordered child list, and
// non-owning references to its parent and owning tree.
//
// First/last daughter and previous/next sibling are derived from the child
// lists by identity scan; they are never stored.
type Node struct {
	id uint64

	name string
	rank string

	length    float64
	hasLength bool

	// children is exclusively owned by this node. Children() exposes the
	// live slice; callers must not grow or shrink it outside the mutation API.
	children []*Node

	parent *Node // non-owning; nil for a root
	tree   *Tree // non-owning; nil for a standalone node
}

// NewNode creates a standalone node with a fresh process-unique identity,
// no name, no branch length, no rank, no children, and no parent or tree.
// Attach it to a tree with Tree.Insert and to a parent with SetChild.
// Complexity: O(1)
func NewNode() *Node {
	return &Node{id: atomic.AddUint64(&nextNodeID, 1)}
}

// TreeOption configures a Tree at construction time.
type TreeOption func(t *Tree)

// WithForceUnrooted marks the tree as unrooted regardless of its topology.
// The flag is carried verbatim for collaborators (drawers, serializers);
// it does not change how the root is discovered.
func WithForceUnrooted() TreeOption {
	return func(t *Tree) { t.forceUnrooted = true }
}

// WithDefaultTree marks the tree as the default tree of its forest.
func WithDefaultTree() TreeOption {
	return func(t *Tree) { t.defaultTree = true }
}

// Tree is an insertion-ordered collection of nodes forming one rooted tree.
// Iteration order is preserved but carries no topological meaning.
type Tree struct {
	// nodes maps node identity to *Node, preserving insertion order.
	nodes *linkedhashmap.Map

	forceUnrooted bool
	defaultTree   bool
}

// NewTree creates an empty tree with the given options.
// Complexity: O(1)
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{nodes: linkedhashmap.New()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ForceUnrooted reports whether the tree carries the "force unrooted" flag.
func (t *Tree) ForceUnrooted() bool { return t.forceUnrooted }

// SetForceUnrooted sets or clears the "force unrooted" flag.
func (t *Tree) SetForceUnrooted(v bool) { t.forceUnrooted = v }

// DefaultTree reports whether the tree is flagged as its forest's default.
func (t *Tree) DefaultTree() bool { return t.defaultTree }

// SetDefaultTree sets or clears the default-tree flag.
func (t *Tree) SetDefaultTree(v bool) { t.defaultTree = v }

// Package traverse defines the visitor, options, and error types shared by
// the traversal engines.
package traverse

import (
	"errors"

	"github.com/treeline-bio/phylo/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrNoRoot is returned when root discovery yields no starting node.
	ErrNoRoot = errors.New("traverse: tree has no root")
)

// Order selects the direction of a walk.
type Order int

const (
	// LTR walks first daughter → next sister (the default).
	LTR Order = iota

	// RTL walks last daughter → previous sister.
	RTL
)

// Hook is a single-node traversal event. Returning an error aborts the walk
// and propagates the error to the caller.
type Hook func(n *core.Node) error

// RelativeHook is a traversal event carrying a related node (the daughter or
// sister about to be, or just, recursed into). The relative is nil unless
// the walk was started with WithRelatives.
type RelativeHook func(n, relative *core.Node) error

// Visitor bundles the named event hooks of a depth-first or sibling-first
// walk. Every field is optional; a nil hook is a no-op.
//
// For a node N the call sequence is:
//
//	Pre(N)
//	PreDaughter(N,D) … recurse D … PostDaughter(N,D)   — or NoDaughter(N)
//	In(N)
//	PreSister(N,S) … recurse S … PostSister(N,S)       — or NoSister(N)
//	Post(N)
//
// where D and S are the daughter and sister selected by the walk's Order.
// BreadthFirst evaluates the sister branch before the daughter branch.
type Visitor struct {
	// Pre fires on arrival at a node, before anything else.
	Pre Hook

	// PreDaughter fires before recursing into the node's daughter.
	PreDaughter RelativeHook

	// PostDaughter fires after the daughter recursion returns.
	PostDaughter RelativeHook

	// NoDaughter fires instead of the daughter branch on a tip.
	NoDaughter Hook

	// In fires between the daughter and sister branches.
	In Hook

	// PreSister fires before recursing into the node's sister.
	PreSister RelativeHook

	// PostSister fires after the sister recursion returns.
	PostSister RelativeHook

	// NoSister fires instead of the sister branch when the node has none.
	NoSister Hook

	// Post fires last, after both branches.
	Post Hook
}

// Option configures optional behavior of a walk.
type Option func(*Options)

// Options holds the configurable parameters of a traversal.
type Options struct {
	// Order selects LTR or RTL daughter/sister resolution.
	Order Order

	// Relatives controls whether daughter/sister hooks receive the related
	// node as a second argument. When false, the relative argument is nil.
	Relatives bool
}

// DefaultOptions returns Options with LTR order and no relatives.
func DefaultOptions() Options {
	return Options{Order: LTR, Relatives: false}
}

// WithOrder selects the walk direction.
func WithOrder(o Order) Option {
	return func(opts *Options) { opts.Order = o }
}

// WithRelatives makes daughter/sister hooks receive the related node.
func WithRelatives() Option {
	return func(opts *Options) { opts.Relatives = true }
}

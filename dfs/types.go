// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and full-forest traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a user.
const (
	White = iota // White: the user has not been visited yet.
	Gray         // Gray: the user is on the recursion stack.
	Black        // Black: the user and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil Adjacency is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start user does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Adjacency is the read-only forward view DFS needs. *core.Network
// satisfies it; so does a raw edge list that has not been inserted yet.
//
// Users must return IDs in a stable order and DirectReferrals must return
// children in a stable order for results to be deterministic.
type Adjacency interface {
	Users() []string
	DirectReferrals(id string) []string
}

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a user is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// FullTraversal, if true, walks every tree of the forest: first from
	// each user nobody referred, then from whatever is still unvisited
	// (only possible when the input has cycles).
	FullTraversal bool
}

// DefaultOptions returns single-source options on context.Background with
// no visit hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal makes DFS cover the whole forest, starting from roots so
// that Depth is measured from each tree's root.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// PreOrder records users in discovery order.
	PreOrder []string

	// Order records users in the sequence they finished (post-order).
	Order []string

	// Depth maps each user to its distance (#edges) from the root of the
	// DFS tree that discovered it.
	Depth map[string]int

	// Parent maps each user to the user from which it was discovered.
	// Tree roots do not appear.
	Parent map[string]string

	// Visited flags which users were reached.
	Visited map[string]bool
}

// MaxDepth returns the largest discovery depth, or -1 if nothing was visited.
func (r *DFSResult) MaxDepth() int {
	max := -1
	for _, d := range r.Depth {
		if d > max {
			max = d
		}
	}

	return max
}

// Package bfs provides breadth-first search over a core.Network, following
// referral edges forward (referrer → candidate) and returning hop distances,
// BFS-tree parents and visit order.
//
// BFS explores users in increasing distance from a start user, with optional
// hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// queueItem pairs a user ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on n starting from startID,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Each user is enqueued at most once (visited set), so the walk terminates
// and never double-counts even if the forest invariant did not hold.
func BFS(n *core.Network, startID string, opts ...Option) (*BFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !n.HasUser(startID) {
		return nil, ErrStartNotFound
	}

	size := o.SizeHint
	if size <= 0 {
		size = 16
	}
	w := &walker{
		net:     n,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}

	// Seed queue with start user (no parent)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop drains the queue; a hook error or cancellation stops it early.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the user in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueChildren enqueues each unseen direct referral of item, unless that
// would cross MaxDepth.
func (w *walker) enqueueChildren(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, child := range w.net.DirectReferrals(item.id) {
		if !w.visited[child] {
			w.enqueue(child, nextDepth, item.id)
		}
	}
}

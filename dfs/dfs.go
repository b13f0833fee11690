// Package dfs implements depth-first search (single-source and forest)
// over a referral Adjacency, with cancellation and a pre-order hook.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Adjacency
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every tree, roots first (startID is ignored); otherwise it starts only
// from startID.
// Returns the partial result and an error if aborted by context or hook.
func DFS(g Adjacency, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	users := g.Users()
	if !dopts.FullTraversal && indexOf(users, startID) < 0 {
		return nil, ErrStartVertexNotFound
	}

	res := &DFSResult{
		PreOrder: make([]string, 0, len(users)),
		Order:    make([]string, 0, len(users)),
		Depth:    make(map[string]int, len(users)),
		Parent:   make(map[string]string, len(users)),
		Visited:  make(map[string]bool, len(users)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.traverse(startID, 0)
	}
	for _, u := range rootsFirst(g, users) {
		if !res.Visited[u] {
			if err := w.traverse(u, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into its children.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for _, child := range w.graph.DirectReferrals(id) {
		if w.res.Visited[child] {
			continue
		}
		w.res.Parent[child] = id
		if err := w.traverse(child, depth+1); err != nil {
			return err
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}

// rootsFirst reorders users so that those without an incoming edge come
// first, each group keeping its Users() order.
func rootsFirst(g Adjacency, users []string) []string {
	referred := make(map[string]struct{}, len(users))
	for _, u := range users {
		for _, c := range g.DirectReferrals(u) {
			referred[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(users))
	rest := make([]string, 0)
	for _, u := range users {
		if _, ok := referred[u]; ok {
			rest = append(rest, u)
		} else {
			out = append(out, u)
		}
	}

	return append(out, rest...)
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

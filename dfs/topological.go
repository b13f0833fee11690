package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Adjacency
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort orders all users so that every referrer precedes the users
// it referred. For a referral forest this lists each referrer before its
// whole downstream. Returns ErrCycleDetected if g is not acyclic.
//
// Complexity: O(V + E).
func TopologicalSort(g Adjacency, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	users := g.Users()
	t := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(users)),
		order: make([]string, 0, len(users)),
	}
	for _, u := range users {
		if t.state[u] == White {
			if err := t.visit(u); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray
	for _, child := range t.graph.DirectReferrals(id) {
		if err := t.visit(child); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

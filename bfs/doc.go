// Package bfs provides breadth-first search over a core.Network, returning
// hop distances, BFS-tree parent links and visit order.
//
// What
//
//   - Explores users in non-decreasing referral-hop distance from a start user,
//     following edges forward only (referrer → candidate).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from user → hops from start
//   - Parent: map from user → its predecessor in the BFS tree
//   - Hooks: OnEnqueue on discovery, OnVisit on visit (may abort).
//   - MaxDepth bounds the walk to d generations (d>0); d==0 means no limit.
//
// Why
//
//   - Downstream reach of a referrer is exactly the set of users BFS visits.
//   - Unweighted shortest paths (hop counts) feed the flow-centrality ranker.
//   - Depth-limited walks give a referrer's first N generations.
//
// Determinism
//
//	core.DirectReferrals returns candidates sorted by ID, and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Users|, E = |Referrals|)
//
//   - Time:   O(V + E·log d)   (children are sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(n, "alice")
//	res, err := bfs.BFS(n, "alice",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - ErrStartNotFound    if the start user does not exist.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs

// Package dfs provides depth-first algorithms over referral adjacency:
//
//   - DFS:             single-source or full-forest traversal with hooks.
//   - DetectCycles:    three-colour cycle audit with canonical cycle output.
//   - TopologicalSort: referrers before referrals; ErrCycleDetected otherwise.
//
// All functions accept the small Adjacency interface. *core.Network
// implements it, and so does any raw edge list (see internal/edgefile), which
// lets callers audit input before inserting it into a Network.
//
// Determinism: traversal follows Users() order for roots and
// DirectReferrals() order for children; with sorted inputs (as core returns)
// every result is reproducible.
package dfs

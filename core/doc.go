// Package core provides the thread-safe, append-only referral Network that
// every other refnet package reads from.
//
// A Network N = (U, E) stores:
//
//   - users:    the catalog of known identifiers U
//   - children: forward adjacency referrer → {candidates}
//   - parent:   reverse mapping candidate → referrer
//
// Every mutation goes through AddReferral, which keeps N a forest of rooted
// out-trees:
//
//   - no self-referral                      (ErrSelfReferral)
//   - at most one referrer per candidate    (ErrDuplicateReferrer)
//   - no referral that closes a cycle       (ErrCycleDetected)
//
// The unique-parent rule alone does not prevent cycles: joining two existing
// trees can close one even if the candidate had no referrer. AddReferral
// therefore runs an explicit reachability check from the candidate before
// inserting. Rejected referrals never mutate the network.
//
// Users are created implicitly on first reference (or explicitly with
// AddUser). There is no deletion.
//
// Core Methods:
//
//	AddUser(id string) error                  // O(1)
//	AddReferral(referrer, candidate) error    // O(V+E) reachability check
//	DirectReferrals(id string) []string       // O(d·log d), sorted
//	Referrer(id string) (string, bool)        // O(1)
//	CanReach(source, target string) bool      // O(V+E)
//	Users() []string                          // O(V·log V), sorted
//	Roots() []string                          // O(V·log V), sorted
//	UserCount(), ReferralCount() int          // O(1)
//	AdjacencyList() map[string][]string       // O(V+E)
//	Stats() NetworkStats                      // O(V)
//	Clone() *Network                          // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog: writers are serialized and
//	readers run concurrently. Analytics packages only read, so long passes
//	may run on a Clone to avoid holding readers against writers.
//
// Observability:
//
//	WithObserver registers callbacks fired after every AddReferral attempt
//	(see package metrics for a Prometheus-backed observer).
//
// Example:
//
//	n := core.NewNetwork()
//	_ = n.AddReferral("alice", "bob")
//	_ = n.AddReferral("bob", "carol")
//	err := n.AddReferral("carol", "alice") // errors.Is(err, core.ErrCycleDetected)
package core

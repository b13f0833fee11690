// Package influence ranks referrers by two complementary measures.
//
// Unique Reach Expansion
//
//	Greedy maximum coverage over downstream-reach sets: each round picks the
//	user whose downstream set adds the most users not yet covered by earlier
//	picks. Coverage is monotone submodular, so greedy is within (1 − 1/e) of
//	optimal. UniqueReach uses the lazy-greedy variant (a max-heap of stale
//	upper bounds) and returns exactly the selection the naive recompute-all
//	loop would, with ties going to the smallest user ID.
//
// Flow (Broker) Centrality
//
//	For every ordered pair (s, t) with t reachable from s and every broker
//	b ∉ {s, t}, b scores one point when d(s,b) + d(b,t) == d(s,t), i.e. b lies
//	on some shortest s→t path. Distances come from one BFS per user; the
//	scoring pass is exact (not sampled) and O(V³).
//
// Cancellation
//
//	FlowCentrality and AllPairsDistances check ctx once per source user so
//	callers can put a deadline around the cubic pass.
package influence

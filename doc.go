// Package refnet is an in-memory referral network engine: it records who
// referred whom, ranks influential referrers and projects referral growth.
//
// What is inside?
//
//	A thread-safe referral store plus analytics built on top of it:
//		• Store: users and referrals kept as a forest (no self-referral,
//		  one referrer per candidate, no cycles)
//		• Reach: direct and downstream referral counts, top referrers
//		• Influence: greedy unique-reach selection, broker (flow) centrality
//		• Growth: stochastic fixed-cohort simulation, days to a target
//		• Incentives: minimum bonus search over simulated outcomes
//
// Layout:
//
//	core/       - Network, referral rules and sentinel errors
//	bfs/        - breadth-first walker with hooks, depth limits and paths
//	dfs/        - depth-first walker, cycle audit, topological order
//	reach/      - downstream reach sets and top referrers
//	influence/  - unique-reach and flow-centrality rankings
//	simulate/   - growth simulator and parallel scenarios
//	bonus/      - adoption curves and the bonus optimizer
//	stats/      - dashboard summary
//	builder/    - synthetic networks (chain, star, random forest, sample data)
//	metrics/    - Prometheus instruments and referral observer
//	cmd/refnet/ - command-line interface
//
// Quick example:
//
//	alice ──► bob ──► carol
//	  │
//	  └────► dave
//
//	n := core.NewNetwork()
//	_ = n.AddReferral("alice", "bob")
//	_ = n.AddReferral("bob", "carol")
//	_ = n.AddReferral("alice", "dave")
//	reach.TotalReferralCount(n, "alice")        // 3
//	influence.FlowCentrality(ctx, n, 5)        // [{bob 1}]
//	simulate.New(simulate.WithSeed(1)).Simulate(0.35, 30)
package refnet

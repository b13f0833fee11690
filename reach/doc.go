// Package reach answers "how far does a referrer's influence go?" over a
// core.Network.
//
// What
//
//   - TotalReferralCount: number of distinct users downstream of a user.
//   - DownstreamReach:    the downstream set itself.
//   - AllDownstreamReach: downstream sets for every user, computed once.
//   - TopReferrersByReach: users ranked by downstream size.
//   - Generations:        downstream users grouped by hop distance, optionally
//     limited to the first N generations.
//
// Every query is a BFS (package bfs) along referral edges with a visited set,
// so nothing is counted twice and the walk terminates regardless of shape.
//
// Robust reads: unknown users yield 0 or an empty set, never an error.
//
// Complexity (V = |Users|, E = |Referrals|)
//
//   - TotalReferralCount / DownstreamReach: O(V + E) per call.
//   - AllDownstreamReach / TopReferrersByReach: O(V·(V + E)).
package reach

package reach

import (
	"context"
	"sort"

	"github.com/katalvlaran/refnet/bfs"
	"github.com/katalvlaran/refnet/core"
)

// Set is a set of user IDs.
type Set map[string]struct{}

// Has reports whether id is in s.
func (s Set) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Sorted returns the members of s in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Referrer pairs a user with the size of its downstream reach.
type Referrer struct {
	UserID         string `json:"user_id" yaml:"user_id"`
	TotalReferrals int    `json:"total_referrals" yaml:"total_referrals"`
}

// walk runs an unbounded BFS from id, or returns nil when id is unknown.
func walk(n *core.Network, id string) *bfs.BFSResult {
	if n == nil || !n.HasUser(id) {
		return nil
	}
	res, err := bfs.BFS(n, id)
	if err != nil {
		// Only reachable if id vanished, which the append-only store forbids.
		return nil
	}

	return res
}

// TotalReferralCount returns the number of distinct users reachable from id
// through referral edges, excluding id itself. Unknown users yield 0.
//
// For a chain A→B→C, TotalReferralCount(A) == 2.
func TotalReferralCount(n *core.Network, id string) int {
	res := walk(n, id)
	if res == nil {
		return 0
	}

	return len(res.Order) - 1
}

// DownstreamReach returns the set of users reachable from id, excluding id.
// The result is never nil; it is empty for unknown or childless users.
func DownstreamReach(n *core.Network, id string) Set {
	res := walk(n, id)
	if res == nil {
		return Set{}
	}
	out := make(Set, len(res.Order)-1)
	for _, u := range res.Descendants() {
		out[u] = struct{}{}
	}

	return out
}

// Generations groups the users below id by hop distance: element 0 holds
// the direct referrals, element 1 their referrals, and so on. A positive
// depth keeps only the first depth generations; depth 0 returns them all.
// Unknown users yield an empty result. Errors come from ctx or a negative
// depth (bfs.ErrOptionViolation).
//
// For a chain A→B→C, Generations(ctx, n, A, 1) == [[B]].
func Generations(ctx context.Context, n *core.Network, id string, depth int) ([][]string, error) {
	out := [][]string{}
	if n == nil || !n.HasUser(id) {
		return out, nil
	}
	_, err := bfs.BFS(n, id,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(depth),
		bfs.WithOnVisit(func(u string, d int) error {
			if d == 0 {
				return nil
			}
			// visits arrive in non-decreasing depth
			if d > len(out) {
				out = append(out, nil)
			}
			out[d-1] = append(out[d-1], u)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AllDownstreamReach returns DownstreamReach for every known user.
// Complexity: O(V·(V + E)).
func AllDownstreamReach(n *core.Network) map[string]Set {
	if n == nil {
		return map[string]Set{}
	}
	users := n.Users()
	out := make(map[string]Set, len(users))
	for _, u := range users {
		out[u] = DownstreamReach(n, u)
	}

	return out
}

// TopReferrersByReach ranks users by TotalReferralCount, largest first,
// ties broken by ascending user ID. Users with zero reach are omitted and
// at most k entries are returned (none for k <= 0).
func TopReferrersByReach(n *core.Network, k int) []Referrer {
	if n == nil || k <= 0 {
		return []Referrer{}
	}
	ranked := make([]Referrer, 0)
	for _, u := range n.Users() {
		if c := TotalReferralCount(n, u); c > 0 {
			ranked = append(ranked, Referrer{UserID: u, TotalReferrals: c})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalReferrals != ranked[j].TotalReferrals {
			return ranked[i].TotalReferrals > ranked[j].TotalReferrals
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked
}

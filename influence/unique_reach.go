package influence

import (
	"container/heap"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// ReachPick is one round of the greedy selection.
type ReachPick struct {
	UserID string `json:"user_id" yaml:"user_id"`
	// MarginalReach is the number of newly covered users this pick added.
	MarginalReach int `json:"unique_reach" yaml:"unique_reach"`
}

// candidate is a heap entry. gain is exact when round equals the number of
// picks made so far, otherwise it is a stale upper bound.
type candidate struct {
	idx   int
	user  string
	gain  int
	round int
}

// gainHeap orders candidates by gain desc, then by idx asc.
type gainHeap []*candidate

func (h gainHeap) Len() int { return len(h) }
func (h gainHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].idx < h[j].idx
}
func (h gainHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *gainHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }
func (h *gainHeap) Pop() interface{} {
	old := *h
	c := old[len(old)-1]
	*h = old[:len(old)-1]

	return c
}

// UniqueReach selects up to k users greedily by marginal downstream coverage.
//
// Users are considered in ascending ID order, so a tie goes to the smallest
// ID. Selection stops early once no remaining user adds new coverage.
// Returns an empty slice for k <= 0 or an empty network.
//
// Complexity: O(V·(V+E)) to precompute reach sets, plus O(k·V·R) worst case
// for gain recomputation (R = largest reach set); lazy evaluation usually
// recomputes only a handful of candidates per round.
func UniqueReach(n *core.Network, k int) []ReachPick {
	picks := make([]ReachPick, 0)
	if n == nil || k <= 0 {
		return picks
	}
	users := n.Users()
	sets := reach.AllDownstreamReach(n)

	h := make(gainHeap, 0, len(users))
	for i, u := range users {
		h = append(h, &candidate{idx: i, user: u, gain: len(sets[u])})
	}
	heap.Init(&h)

	covered := make(reach.Set)
	for len(picks) < k && h.Len() > 0 {
		top := h[0]
		if top.round != len(picks) {
			// Stale bound: recompute and let it sink to its place.
			top.gain = marginal(sets[top.user], covered)
			top.round = len(picks)
			heap.Fix(&h, 0)
			continue
		}
		if top.gain == 0 {
			break
		}
		heap.Pop(&h)
		for u := range sets[top.user] {
			covered[u] = struct{}{}
		}
		picks = append(picks, ReachPick{UserID: top.user, MarginalReach: top.gain})
	}

	return picks
}

// marginal counts members of set not yet in covered.
func marginal(set, covered reach.Set) int {
	c := 0
	for u := range set {
		if !covered.Has(u) {
			c++
		}
	}

	return c
}

// Covered returns the union of the downstream sets of picks.
func Covered(n *core.Network, picks []ReachPick) reach.Set {
	out := make(reach.Set)
	for _, p := range picks {
		for u := range reach.DownstreamReach(n, p.UserID) {
			out[u] = struct{}{}
		}
	}

	return out
}

package influence

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/refnet/bfs"
	"github.com/katalvlaran/refnet/core"
)

// Unreachable marks an infinite distance in Distances.
const Unreachable = -1

// BrokerScore is a user's flow-centrality score.
type BrokerScore struct {
	UserID string `json:"user_id" yaml:"user_id"`
	Score  int    `json:"centrality_score" yaml:"centrality_score"`
}

// Distances is an all-pairs hop-distance table over the forward graph.
type Distances struct {
	Users []string
	index map[string]int
	hops  [][]int
}

// Between returns d(s,t) and whether t is reachable from s.
// d(s,s) is 0 for every known s.
func (d *Distances) Between(s, t string) (int, bool) {
	i, ok := d.index[s]
	if !ok {
		return 0, false
	}
	j, ok := d.index[t]
	if !ok {
		return 0, false
	}
	h := d.hops[i][j]

	return h, h != Unreachable
}

// AllPairsDistances runs one BFS per user and records hop counts; pairs that
// are not connected by forward edges hold Unreachable.
//
// Complexity: O(V·(V + E)) time, O(V²) memory.
func AllPairsDistances(ctx context.Context, n *core.Network) (*Distances, error) {
	if n == nil {
		return nil, bfs.ErrNetworkNil
	}
	users := n.Users()
	d := &Distances{
		Users: users,
		index: make(map[string]int, len(users)),
		hops:  make([][]int, len(users)),
	}
	for i, u := range users {
		d.index[u] = i
	}
	for i, s := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]int, len(users))
		for j := range row {
			row[j] = Unreachable
		}
		res, err := bfs.BFS(n, s, bfs.WithContext(ctx), bfs.WithSizeHint(len(users)))
		if err != nil {
			return nil, fmt.Errorf("influence: distances from %q: %w", s, err)
		}
		for id, depth := range res.Depth {
			if j, ok := d.index[id]; ok {
				row[j] = depth
			}
		}
		d.hops[i] = row
	}

	return d, nil
}

// FlowCentrality scores every user by how many ordered (source, target)
// pairs it brokers, i.e. lies on some shortest source→target path without
// being an endpoint. Returns users with a nonzero score, highest first, ties
// by ascending ID, truncated to k (empty for k <= 0).
//
// For a chain A→B→C only B scores, exactly 1 (pair A→C).
//
// Complexity: O(V³) time, O(V²) memory.
func FlowCentrality(ctx context.Context, n *core.Network, k int) ([]BrokerScore, error) {
	if k <= 0 {
		return []BrokerScore{}, nil
	}
	d, err := AllPairsDistances(ctx, n)
	if err != nil {
		return nil, err
	}
	scores := brokerScores(ctx, d)
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]BrokerScore, 0)
	for i, s := range scores {
		if s > 0 {
			out = append(out, BrokerScore{UserID: d.Users[i], Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > k {
		out = out[:k]
	}

	return out, nil
}

// brokerScores runs the cubic scoring pass over the distance table. It stops
// early (with partial scores) if ctx is done; the caller checks ctx.Err.
func brokerScores(ctx context.Context, d *Distances) []int {
	v := len(d.Users)
	scores := make([]int, v)
	for s := 0; s < v; s++ {
		if ctx.Err() != nil {
			return scores
		}
		row := d.hops[s]
		for t := 0; t < v; t++ {
			st := row[t]
			if t == s || st == Unreachable {
				continue
			}
			for b := 0; b < v; b++ {
				if b == s || b == t {
					continue
				}
				sb, bt := row[b], d.hops[b][t]
				if sb == Unreachable || bt == Unreachable {
					continue
				}
				if sb+bt == st {
					scores[b]++
				}
			}
		}
	}

	return scores
}

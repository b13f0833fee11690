// Package stats assembles the network summary shown on the analytics
// dashboard: catalog sizes, the three influencer rankings, average fan-out
// and tree shape.
package stats

import (
	"context"
	"errors"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/dfs"
	"github.com/katalvlaran/refnet/influence"
	"github.com/katalvlaran/refnet/reach"
)

// DefaultTopK is the ranking length used by the dashboard.
const DefaultTopK = 5

// ErrNetworkNil is returned by Compute for a nil network.
var ErrNetworkNil = errors.New("stats: network is nil")

// NetworkStats is the dashboard summary.
type NetworkStats struct {
	TotalUsers              int                     `json:"total_users" yaml:"total_users"`
	TotalReferrals          int                     `json:"total_referrals" yaml:"total_referrals"`
	TopReferrers            []reach.Referrer        `json:"top_referrers" yaml:"top_referrers"`
	UniqueInfluencers       []influence.ReachPick   `json:"unique_influencers" yaml:"unique_influencers"`
	FlowInfluencers         []influence.BrokerScore `json:"flow_influencers" yaml:"flow_influencers"`
	AverageReferralsPerUser float64                 `json:"average_referrals_per_user" yaml:"average_referrals_per_user"`
	Roots                   int                     `json:"roots" yaml:"roots"`
	MaxDepth                int                     `json:"max_depth" yaml:"max_depth"`
	UsersByDepth            []int                   `json:"users_by_depth" yaml:"users_by_depth"`
}

// Compute builds NetworkStats with rankings of length k (k <= 0 yields empty
// rankings). MaxDepth is the longest root-to-leaf chain in edges, 0 for an
// empty network. UsersByDepth[d] counts the users d hops below their
// tree's root. ctx bounds the cubic flow-centrality pass and the tree walk.
func Compute(ctx context.Context, n *core.Network, k int) (NetworkStats, error) {
	if n == nil {
		return NetworkStats{}, ErrNetworkNil
	}
	flow, err := influence.FlowCentrality(ctx, n, k)
	if err != nil {
		return NetworkStats{}, err
	}
	depth, byDepth, err := shape(ctx, n)
	if err != nil {
		return NetworkStats{}, err
	}
	cs := n.Stats()

	return NetworkStats{
		TotalUsers:              cs.UserCount,
		TotalReferrals:          cs.ReferralCount,
		TopReferrers:            reach.TopReferrersByReach(n, k),
		UniqueInfluencers:       influence.UniqueReach(n, k),
		FlowInfluencers:         flow,
		AverageReferralsPerUser: cs.AverageReferrals(),
		Roots:                   cs.RootCount,
		MaxDepth:                depth,
		UsersByDepth:            byDepth,
	}, nil
}

// shape walks the whole forest once, roots first, and returns the deepest
// level and the number of users on each level.
func shape(ctx context.Context, n *core.Network) (int, []int, error) {
	byDepth := []int{}
	res, err := dfs.DFS(n, "",
		dfs.WithContext(ctx),
		dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(_ string, d int) error {
			for len(byDepth) <= d {
				byDepth = append(byDepth, 0)
			}
			byDepth[d]++
			return nil
		}),
	)
	if err != nil {
		return 0, nil, err
	}
	if d := res.MaxDepth(); d > 0 {
		return d, byDepth, nil
	}

	return 0, byDepth, nil
}

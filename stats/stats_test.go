package stats_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/influence"
	"github.com/katalvlaran/refnet/reach"
	"github.com/katalvlaran/refnet/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Empty(t *testing.T) {
	got, err := stats.Compute(context.Background(), core.NewNetwork(), stats.DefaultTopK)
	require.NoError(t, err)
	assert.Zero(t, got.TotalUsers)
	assert.Zero(t, got.AverageReferralsPerUser)
	assert.Zero(t, got.MaxDepth)
	assert.Empty(t, got.UsersByDepth)
	assert.Empty(t, got.TopReferrers)
	assert.Empty(t, got.UniqueInfluencers)
	assert.Empty(t, got.FlowInfluencers)
}

func TestCompute_Nil(t *testing.T) {
	_, err := stats.Compute(context.Background(), nil, 5)
	require.ErrorIs(t, err, stats.ErrNetworkNil)
}

// A→B→C, A→D, X
func TestCompute_SmallForest(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral("A", "B"))
	require.NoError(t, n.AddReferral("B", "C"))
	require.NoError(t, n.AddReferral("A", "D"))
	require.NoError(t, n.AddUser("X"))

	got, err := stats.Compute(context.Background(), n, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, got.TotalUsers)
	assert.Equal(t, 3, got.TotalReferrals)
	assert.InDelta(t, 0.6, got.AverageReferralsPerUser, 1e-9)
	assert.Equal(t, 2, got.Roots)
	assert.Equal(t, 2, got.MaxDepth)
	assert.Equal(t, []int{2, 2, 1}, got.UsersByDepth)
	assert.Equal(t, []reach.Referrer{{UserID: "A", TotalReferrals: 3}, {UserID: "B", TotalReferrals: 1}}, got.TopReferrers)
	assert.Equal(t, []influence.ReachPick{{UserID: "A", MarginalReach: 3}}, got.UniqueInfluencers)
	assert.Equal(t, []influence.BrokerScore{{UserID: "B", Score: 1}}, got.FlowInfluencers)
}

func TestCompute_Cancelled(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral("A", "B"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := stats.Compute(ctx, n, 5)
	require.ErrorIs(t, err, context.Canceled)
}

// TestCompute_DepthFromRoot uses a root whose ID sorts after its referrals,
// so a walk that started from the first ID would undercount the depth.
func TestCompute_DepthFromRoot(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral("zoe", "amy"))
	require.NoError(t, n.AddReferral("amy", "bea"))
	require.NoError(t, n.AddReferral("bea", "cat"))

	got, err := stats.Compute(context.Background(), n, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got.MaxDepth)
	assert.Equal(t, []int{1, 1, 1, 1}, got.UsersByDepth)
}

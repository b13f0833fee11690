package reach_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/refnet/bfs"
	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func network(t *testing.T, edges ...[2]string) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, e := range edges {
		require.NoError(t, n.AddReferral(e[0], e[1]))
	}

	return n
}

func TestTotalReferralCount_Chain(t *testing.T) {
	n := network(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	assert.Equal(t, 2, reach.TotalReferralCount(n, "A"))
	assert.Equal(t, 1, reach.TotalReferralCount(n, "B"))
	assert.Equal(t, 0, reach.TotalReferralCount(n, "C"))
	assert.Equal(t, 0, reach.TotalReferralCount(n, "ghost"))
	assert.Equal(t, 0, reach.TotalReferralCount(nil, "A"))
}

func TestDownstreamReach(t *testing.T) {
	n := network(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"C", "D"}, [2]string{"X", "Y"})

	got := reach.DownstreamReach(n, "A")
	assert.Equal(t, []string{"B", "C", "D"}, got.Sorted())
	assert.False(t, got.Has("A"), "reach excludes the user itself")

	assert.Empty(t, reach.DownstreamReach(n, "ghost"))
	assert.NotNil(t, reach.DownstreamReach(n, "ghost"))
}

// TestDownstreamReach_Properties checks on a random forest that reach is a
// subset of users, excludes the origin and agrees with the count.
func TestDownstreamReach_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	n := core.NewNetwork()
	for i := 1; i < 120; i++ {
		_ = n.AddReferral(fmt.Sprintf("u%03d", r.Intn(i)), fmt.Sprintf("u%03d", i))
	}
	all := reach.AllDownstreamReach(n)
	require.Len(t, all, n.UserCount())
	for u, set := range all {
		assert.False(t, set.Has(u))
		assert.Equal(t, reach.TotalReferralCount(n, u), len(set))
		for v := range set {
			assert.True(t, n.HasUser(v))
		}
	}
	assert.Equal(t, n.UserCount()-1, reach.TotalReferralCount(n, "u000"), "u000 roots the whole tree")
}

func TestTopReferrersByReach(t *testing.T) {
	n := network(t,
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"X", "Y"}, [2]string{"X", "Z"},
		[2]string{"M", "N"})
	require.NoError(t, n.AddUser("lonely"))

	got := reach.TopReferrersByReach(n, 10)
	want := []reach.Referrer{
		{UserID: "A", TotalReferrals: 2},
		{UserID: "X", TotalReferrals: 2},
		{UserID: "B", TotalReferrals: 1},
		{UserID: "M", TotalReferrals: 1},
	}
	assert.Equal(t, want, got)

	assert.Equal(t, want[:2], reach.TopReferrersByReach(n, 2))
	assert.Empty(t, reach.TopReferrersByReach(n, 0))
	assert.Empty(t, reach.TopReferrersByReach(core.NewNetwork(), 3))
}

func TestGenerations(t *testing.T) {
	n := network(t,
		[2]string{"A", "C"}, [2]string{"A", "B"}, [2]string{"B", "D"}, [2]string{"C", "E"}, [2]string{"E", "F"})
	ctx := context.Background()

	all, err := reach.Generations(ctx, n, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "C"}, {"D", "E"}, {"F"}}, all)

	two, err := reach.Generations(ctx, n, "A", 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "C"}, {"D", "E"}}, two)

	leaf, err := reach.Generations(ctx, n, "F", 0)
	require.NoError(t, err)
	assert.Empty(t, leaf)

	ghost, err := reach.Generations(ctx, n, "ghost", 1)
	require.NoError(t, err)
	assert.Empty(t, ghost)
}

func TestGenerations_Errors(t *testing.T) {
	n := network(t, [2]string{"A", "B"})
	_, err := reach.Generations(context.Background(), n, "A", -1)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reach.Generations(ctx, n, "A", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGenerations_MatchesReach checks the unbounded generations partition the
// downstream set.
func TestGenerations_MatchesReach(t *testing.T) {
	n := network(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"}, [2]string{"D", "E"}, [2]string{"X", "A"})
	gens, err := reach.Generations(context.Background(), n, "X", 0)
	require.NoError(t, err)
	var flat []string
	for _, g := range gens {
		flat = append(flat, g...)
	}
	assert.ElementsMatch(t, reach.DownstreamReach(n, "X").Sorted(), flat)
}

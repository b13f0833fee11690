package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/refnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUser(t *testing.T) {
	n := core.NewNetwork()
	require.ErrorIs(t, n.AddUser(""), core.ErrEmptyUserID)

	require.NoError(t, n.AddUser(UserA))
	require.NoError(t, n.AddUser(UserA)) // idempotent
	assert.Equal(t, 1, n.UserCount())
	assert.True(t, n.HasUser(UserA))
	assert.Empty(t, n.DirectReferrals(UserA))
	assert.Equal(t, []string{UserA}, n.Roots())
}

func TestAddReferral_Success(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral(UserA, UserB))

	assert.True(t, n.HasUser(UserA), "referrer auto-created")
	assert.True(t, n.HasUser(UserB), "candidate auto-created")
	assert.Equal(t, []string{UserB}, n.DirectReferrals(UserA))
	ref, ok := n.Referrer(UserB)
	require.True(t, ok)
	assert.Equal(t, UserA, ref)
	_, ok = n.Referrer(UserA)
	assert.False(t, ok, "root has no referrer")
	assert.Equal(t, 1, n.ReferralCount())
}

func TestAddReferral_EmptyID(t *testing.T) {
	n := core.NewNetwork()
	require.ErrorIs(t, n.AddReferral("", UserA), core.ErrEmptyUserID)
	require.ErrorIs(t, n.AddReferral(UserA, ""), core.ErrEmptyUserID)
	assert.Zero(t, n.UserCount())
}

func TestAddReferral_SelfReferral(t *testing.T) {
	n := core.NewNetwork()
	err := n.AddReferral(UserA, UserA)
	require.ErrorIs(t, err, core.ErrSelfReferral)
	assert.Zero(t, n.UserCount(), "self-referral must not register the user")
	assert.Zero(t, n.ReferralCount())

	// also on a populated network
	require.NoError(t, n.AddReferral(UserA, UserB))
	require.ErrorIs(t, n.AddReferral(UserB, UserB), core.ErrSelfReferral)
	assert.Equal(t, 2, n.UserCount())
	assert.Empty(t, n.DirectReferrals(UserB))
}

func TestAddReferral_DuplicateReferrer(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral(UserA, UserC))

	err := n.AddReferral(UserB, UserC)
	require.ErrorIs(t, err, core.ErrDuplicateReferrer)
	assert.Contains(t, err.Error(), `"A"`)

	ref, _ := n.Referrer(UserC)
	assert.Equal(t, UserA, ref, "first referral stays intact")
	assert.False(t, n.HasUser(UserB), "rejected referrer must not be registered")
	assert.Equal(t, 1, n.ReferralCount())

	// same referrer twice is still a duplicate
	require.ErrorIs(t, n.AddReferral(UserA, UserC), core.ErrDuplicateReferrer)
}

func TestAddReferral_CycleDetected(t *testing.T) {
	n := buildChain(t, UserA, UserB, UserC)
	before := n.AdjacencyList()

	err := n.AddReferral(UserC, UserA)
	require.ErrorIs(t, err, core.ErrCycleDetected)
	if diff := cmp.Diff(before, n.AdjacencyList()); diff != "" {
		t.Fatalf("network changed after rejected referral (-before +after):\n%s", diff)
	}
	assert.Equal(t, 2, n.ReferralCount())
	_, ok := n.Referrer(UserA)
	assert.False(t, ok)
}

// TestAddReferral_CycleAcrossComponents covers a cycle that the unique-parent
// rule alone would not catch: after two trees are joined, a leaf of the
// lower tree tries to refer the upper root.
func TestAddReferral_CycleAcrossComponents(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral(UserA, UserB))
	require.NoError(t, n.AddReferral(UserB, UserC))
	require.NoError(t, n.AddReferral(UserX, UserY))

	// Joining trees is fine.
	require.NoError(t, n.AddReferral(UserC, UserX))
	// A now reaches Y through C→X, so Y→A would close a cycle.
	require.ErrorIs(t, n.AddReferral(UserY, UserA), core.ErrCycleDetected)
	assertForest(t, n)
}

func TestDirectReferrals_UnknownAndSorted(t *testing.T) {
	n := core.NewNetwork()
	assert.Empty(t, n.DirectReferrals("ghost"))

	for _, c := range []string{"z", "m", "a"} {
		require.NoError(t, n.AddReferral(UserA, c))
	}
	got := n.DirectReferrals(UserA)
	assert.Equal(t, []string{"a", "m", "z"}, got)

	got[0] = "mutated"
	assert.Equal(t, []string{"a", "m", "z"}, n.DirectReferrals(UserA), "result is a snapshot")
}

func TestRootsAndStats(t *testing.T) {
	n := buildChain(t, UserA, UserB, UserC)
	require.NoError(t, n.AddReferral(UserA, UserD))
	require.NoError(t, n.AddUser(UserX))

	assert.Equal(t, []string{UserA, UserX}, n.Roots())
	s := n.Stats()
	assert.Equal(t, core.NetworkStats{UserCount: 5, ReferralCount: 3, RootCount: 2, LeafCount: 3}, s)
	assert.InDelta(t, 0.6, s.AverageReferrals(), 1e-9)
	assert.Zero(t, core.NetworkStats{}.AverageReferrals())
}

func TestClone_Independent(t *testing.T) {
	n := buildChain(t, UserA, UserB)
	c := n.Clone()
	require.NoError(t, c.AddReferral(UserB, UserC))

	assert.False(t, n.HasUser(UserC), "source untouched by clone mutation")
	assert.Equal(t, 1, n.ReferralCount())
	assert.Equal(t, 2, c.ReferralCount())
	assert.Equal(t, []string{UserB}, c.DirectReferrals(UserA))
}

func TestObserver(t *testing.T) {
	var results []error
	n := core.NewNetwork(core.WithObserver(func(_, _ string, err error) {
		results = append(results, err)
	}), core.WithObserver(nil))

	require.NoError(t, n.AddReferral(UserA, UserB))
	require.Error(t, n.AddReferral(UserA, UserA))
	require.Len(t, results, 2)
	assert.NoError(t, results[0])
	assert.ErrorIs(t, results[1], core.ErrSelfReferral)
}

// TestRandomInsertions_StayForest throws random referral attempts at the
// network and checks every accepted state is a forest.
func TestRandomInsertions_StayForest(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	n := core.NewNetwork()
	const users = 60
	accepted := 0
	for i := 0; i < 600; i++ {
		from := fmt.Sprintf("u%02d", r.Intn(users))
		to := fmt.Sprintf("u%02d", r.Intn(users))
		if err := n.AddReferral(from, to); err == nil {
			accepted++
		}
	}
	assert.Equal(t, accepted, n.ReferralCount())
	assert.Less(t, n.ReferralCount(), n.UserCount(), "a forest has fewer edges than nodes")
	assertForest(t, n)
}

package dfs_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawAdj is an unchecked adjacency used to feed cyclic inputs to dfs.
type rawAdj map[string][]string

func (a rawAdj) Users() []string {
	set := make(map[string]struct{})
	for u, kids := range a {
		set[u] = struct{}{}
		for _, k := range kids {
			set[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}

func (a rawAdj) DirectReferrals(id string) []string { return a[id] }

func forest(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"X", "Y"}} {
		require.NoError(t, n.AddReferral(e[0], e[1]))
	}

	return n
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.DFS(forest(t), "missing")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleSource(t *testing.T) {
	res, err := dfs.DFS(forest(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.PreOrder)
	assert.Equal(t, []string{"C", "B", "D", "A"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "A"}, res.Parent)
	assert.Equal(t, 2, res.MaxDepth())
	assert.False(t, res.Visited["X"])
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(forest(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
	assert.Equal(t, 0, res.Depth["X"])
	assert.Equal(t, 1, res.Depth["Y"])
}

// TestDFS_FullTraversal_RootsFirst covers a root that sorts after its own
// referrals: depths must still be measured from the root.
func TestDFS_FullTraversal_RootsFirst(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral("zoe", "amy"))
	require.NoError(t, n.AddReferral("amy", "bea"))

	res, err := dfs.DFS(n, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"zoe", "amy", "bea"}, res.PreOrder)
	assert.Equal(t, 2, res.Depth["bea"])
	assert.Equal(t, 2, res.MaxDepth())

	// a pure cycle has no roots but is still covered
	res, err = dfs.DFS(rawAdj{"A": {"B"}, "B": {"A"}}, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.PreOrder)
}

func TestDFS_Hooks(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.DFS(forest(t), "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	var seen []string
	_, err = dfs.DFS(forest(t), "A", dfs.WithOnVisit(func(id string, d int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, seen)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(forest(t), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDFS_TerminatesOnCycle guards the visited-set discipline.
func TestDFS_TerminatesOnCycle(t *testing.T) {
	res, err := dfs.DFS(rawAdj{"A": {"B"}, "B": {"C"}, "C": {"A"}}, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.PreOrder)
}

package edgefile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/internal/edgefile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
users: [zed]
referrals:
  - {referrer: alice, candidate: bob}
  - {referrer: bob, candidate: carol}
  - {referrer: alice, candidate: dave}
`

const dirtyDoc = `
referrals:
  - {referrer: a, candidate: b}
  - {referrer: b, candidate: c}
  - {referrer: c, candidate: a}
  - {referrer: x, candidate: b}
  - {referrer: d, candidate: d}
  - {referrer: "", candidate: e}
`

func parse(t *testing.T, doc string) *edgefile.File {
	t.Helper()
	f, err := edgefile.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return f
}

func TestParse_Adjacency(t *testing.T) {
	f := parse(t, validDoc)
	assert.Equal(t, []string{"alice", "bob", "carol", "dave", "zed"}, f.Users())
	assert.Equal(t, []string{"bob", "dave"}, f.DirectReferrals("alice"))
	assert.Empty(t, f.DirectReferrals("zed"))
	assert.True(t, f.Audit().Clean())
}

func TestParse_EmptyAndInvalid(t *testing.T) {
	f := parse(t, "")
	assert.Empty(t, f.Users())

	_, err := edgefile.Parse(strings.NewReader("referrals: {bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode edges")
}

func TestAudit_Dirty(t *testing.T) {
	a := parse(t, dirtyDoc).Audit()
	assert.False(t, a.Clean())
	assert.Equal(t, []string{"d"}, a.SelfReferrals)
	assert.Equal(t, map[string][]string{"b": {"a", "x"}}, a.MultiReferrers)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, a.Cycles)
	assert.Equal(t, 1, a.EmptyIDs)
}

func TestApply(t *testing.T) {
	n := core.NewNetwork()
	rep, err := parse(t, dirtyDoc).Apply(n)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Accepted)
	require.Len(t, rep.Rejections, 4)
	assert.ErrorIs(t, rep.Rejections[0].Err, core.ErrCycleDetected)
	assert.ErrorIs(t, rep.Rejections[1].Err, core.ErrDuplicateReferrer)
	assert.ErrorIs(t, rep.Rejections[2].Err, core.ErrSelfReferral)
	assert.ErrorIs(t, rep.Rejections[3].Err, core.ErrEmptyUserID)
	assert.Equal(t, edgefile.Edge{Referrer: "c", Candidate: "a"}, rep.Rejections[0].Edge)

	_, err = parse(t, validDoc).Apply(nil)
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	n := core.NewNetwork()
	_, err := parse(t, validDoc).Apply(n)
	require.NoError(t, err)

	out, err := edgefile.FromNetwork(context.Background(), n)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, out.Encode(&buf))

	path := filepath.Join(t.TempDir(), "edges.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	f, err := edgefile.Load(path)
	require.NoError(t, err)

	m := core.NewNetwork()
	rep, err := f.Apply(m)
	require.NoError(t, err)
	assert.Empty(t, rep.Rejections)
	if diff := cmp.Diff(n.AdjacencyList(), m.AdjacencyList()); diff != "" {
		t.Fatalf("round trip changed the network (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"zed"}, f.UserIDs)
}

func TestFromNetwork_ReferrersFirst(t *testing.T) {
	n := core.NewNetwork()
	// inserted bottom-up: carol's subtree exists before alice refers bob
	require.NoError(t, n.AddReferral("carol", "dave"))
	require.NoError(t, n.AddReferral("bob", "carol"))
	require.NoError(t, n.AddReferral("alice", "bob"))

	f, err := edgefile.FromNetwork(context.Background(), n)
	require.NoError(t, err)
	want := []edgefile.Edge{
		{Referrer: "alice", Candidate: "bob"},
		{Referrer: "bob", Candidate: "carol"},
		{Referrer: "carol", Candidate: "dave"},
	}
	if diff := cmp.Diff(want, f.Referrals); diff != "" {
		t.Fatalf("referral order (-want +got):\n%s", diff)
	}
	assert.Empty(t, f.UserIDs)
}

func TestLoad_Missing(t *testing.T) {
	_, err := edgefile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestFromNetwork_Cancelled(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddReferral("alice", "bob"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := edgefile.FromNetwork(ctx, n)
	require.ErrorIs(t, err, context.Canceled)
}

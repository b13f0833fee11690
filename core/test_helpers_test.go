// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for refnet/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/refnet/core"
	"github.com/stretchr/testify/require"
)

// Common user IDs used across core tests.
const (
	UserA = "A"
	UserB = "B"
	UserC = "C"
	UserD = "D"
	UserX = "X"
	UserY = "Y"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// buildChain returns a network with referrals ids[0]→ids[1]→…→ids[len-1].
func buildChain(t *testing.T, ids ...string) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for i := 1; i < len(ids); i++ {
		require.NoError(t, n.AddReferral(ids[i-1], ids[i]))
	}

	return n
}

// assertForest checks that every user has at most one referrer and that no
// user can reach its own referrer.
func assertForest(t *testing.T, n *core.Network) {
	t.Helper()
	parents := make(map[string]int)
	for _, u := range n.Users() {
		for _, c := range n.DirectReferrals(u) {
			parents[c]++
			require.Falsef(t, n.CanReach(c, u), "cycle through %s→%s", u, c)
		}
	}
	for c, cnt := range parents {
		require.LessOrEqualf(t, cnt, 1, "%s has %d referrers", c, cnt)
	}
}

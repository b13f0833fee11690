// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters.

package core

// Stats produces a read-only snapshot of catalog sizes.
//
// RootCount and LeafCount are derived in a single pass over the user
// catalog under one read lock, so the four numbers are mutually consistent.
//
// Complexity: O(V).
func (n *Network) Stats() NetworkStats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s := NetworkStats{
		UserCount:     len(n.users),
		ReferralCount: n.edges,
	}
	for id := range n.users {
		if _, referred := n.parent[id]; !referred {
			s.RootCount++
		}
		if len(n.children[id]) == 0 {
			s.LeafCount++
		}
	}

	return s
}

// AverageReferrals returns ReferralCount / UserCount, or 0 for an empty
// network.
func (s NetworkStats) AverageReferrals() float64 {
	if s.UserCount == 0 {
		return 0
	}

	return float64(s.ReferralCount) / float64(s.UserCount)
}

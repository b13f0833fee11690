// File: methods_referrals.go
// Role: Referral (edge) insertion & adjacency queries.
//
// Policy:
//   - Validation happens before any mutation; a rejected referral leaves the
//     network byte-for-byte unchanged (no implicitly created users).
//   - Check order: empty ID, self-referral, duplicate referrer, cycle.
//
// Concurrency:
//   - AddReferral holds mu.Lock for validation and insertion so the cycle
//     check and the write are atomic. Observers run after the lock is released.

package core

import (
	"fmt"
	"sort"
)

// AddReferral records that referrer referred candidate.
//
// Both endpoints are created on success if they were unknown. On failure
// nothing is mutated and one of the sentinels is returned, wrapped with the
// offending IDs:
//   - ErrEmptyUserID       if either ID is "".
//   - ErrSelfReferral      if referrer == candidate.
//   - ErrDuplicateReferrer if candidate already has a referrer.
//   - ErrCycleDetected     if candidate can already reach referrer.
//
// Complexity: O(V + E) worst case for the reachability check.
func (n *Network) AddReferral(referrer, candidate string) error {
	err := n.addReferral(referrer, candidate)
	for _, fn := range n.observers {
		fn(referrer, candidate, err)
	}

	return err
}

func (n *Network) addReferral(referrer, candidate string) error {
	if referrer == "" || candidate == "" {
		return ErrEmptyUserID
	}
	if referrer == candidate {
		return fmt.Errorf("%w: %q", ErrSelfReferral, referrer)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if prev, ok := n.parent[candidate]; ok {
		return fmt.Errorf("%w: %q is referred by %q", ErrDuplicateReferrer, candidate, prev)
	}
	// A fresh candidate has no children, so only a known one can close a cycle.
	if n.canReach(candidate, referrer) {
		return fmt.Errorf("%w: %q already reaches %q", ErrCycleDetected, candidate, referrer)
	}

	n.ensureUser(referrer)
	n.ensureUser(candidate)
	n.children[referrer][candidate] = struct{}{}
	n.parent[candidate] = referrer
	n.edges++

	return nil
}

// canReach reports whether target is reachable from source by following
// forward edges. Iterative DFS with a visited set; every user is expanded at
// most once so the walk terminates even if the forest invariant were broken.
// Caller must hold mu.
func (n *Network) canReach(source, target string) bool {
	if _, ok := n.users[source]; !ok {
		return false
	}
	visited := make(map[string]struct{}, len(n.users))
	stack := []string{source}
	for len(stack) > 0 && len(visited) <= len(n.users) {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}
		for child := range n.children[cur] {
			if _, seen := visited[child]; !seen {
				stack = append(stack, child)
			}
		}
	}

	return false
}

// CanReach reports whether target is a descendant of source (or equal to it).
// Unknown IDs yield false, except that a known user trivially reaches itself.
func (n *Network) CanReach(source, target string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.canReach(source, target)
}

// DirectReferrals returns the users directly referred by id, sorted
// ascending. The slice is a snapshot owned by the caller; it is empty for
// unknown or childless users.
// Complexity: O(d log d).
func (n *Network) DirectReferrals(id string) []string {
	n.mu.RLock()
	kids := n.children[id]
	out := make([]string, 0, len(kids))
	for c := range kids {
		out = append(out, c)
	}
	n.mu.RUnlock()
	sort.Strings(out)

	return out
}

// ReferralCount returns the number of referral edges.
func (n *Network) ReferralCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edges
}

// AdjacencyList returns a sorted copy of the forward adjacency for every
// known user, including users with no referrals.
// Complexity: O(V + E log E).
func (n *Network) AdjacencyList() map[string][]string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make(map[string][]string, len(n.users))
	for id, kids := range n.children {
		list := make([]string, 0, len(kids))
		for c := range kids {
			list = append(list, c)
		}
		sort.Strings(list)
		out[id] = list
	}

	return out
}

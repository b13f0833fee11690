// File: methods_users.go
// Role: User lifecycle & queries.
//
// Determinism:
//   - Users() and Roots() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Writers take mu.Lock, readers mu.RLock.

package core

import "sort"

// AddUser registers id with an empty set of referrals (idempotent).
//
// Returns ErrEmptyUserID if id is "".
// Complexity: O(1) amortized.
func (n *Network) AddUser(id string) error {
	if id == "" {
		return ErrEmptyUserID
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.ensureUser(id)

	return nil
}

// ensureUser registers id if unseen. Caller must hold mu for writing.
func (n *Network) ensureUser(id string) {
	if _, ok := n.users[id]; ok {
		return
	}
	n.users[id] = struct{}{}
	n.children[id] = make(map[string]struct{})
}

// HasUser reports whether id is known to the network.
// Complexity: O(1).
func (n *Network) HasUser(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.users[id]

	return ok
}

// Users returns every known user ID in ascending order.
// Complexity: O(V log V).
func (n *Network) Users() []string {
	n.mu.RLock()
	out := make([]string, 0, len(n.users))
	for id := range n.users {
		out = append(out, id)
	}
	n.mu.RUnlock()
	sort.Strings(out)

	return out
}

// UserCount returns the number of known users.
func (n *Network) UserCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.users)
}

// Referrer returns the user who referred id, and false if id is a root or
// unknown.
func (n *Network) Referrer(id string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	p, ok := n.parent[id]

	return p, ok
}

// Roots returns, in ascending order, every user that has no referrer.
// Complexity: O(V log V).
func (n *Network) Roots() []string {
	n.mu.RLock()
	out := make([]string, 0)
	for id := range n.users {
		if _, referred := n.parent[id]; !referred {
			out = append(out, id)
		}
	}
	n.mu.RUnlock()
	sort.Strings(out)

	return out
}

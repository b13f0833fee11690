// File: methods_clone.go
// Role: Snapshotting network instances.
// Concurrency:
//   - Read lock on the source for the whole copy; the clone shares no maps.

package core

// Clone returns a deep copy of the users, adjacency and parent mapping.
// Observers are not carried over: the clone is a detached analytics
// snapshot, and mutating it never notifies the source's observers.
//
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := NewNetwork()
	for id := range n.users {
		c.users[id] = struct{}{}
	}
	for id, kids := range n.children {
		m := make(map[string]struct{}, len(kids))
		for k := range kids {
			m[k] = struct{}{}
		}
		c.children[id] = m
	}
	for cand, ref := range n.parent {
		c.parent[cand] = ref
	}
	c.edges = n.edges

	return c
}

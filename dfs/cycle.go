// Package dfs implements cycle detection for directed referral adjacency.
// DetectCycles reports every back-edge cycle found by a three-colour DFS,
// each rotated so its smallest ID comes first. The list is sorted for
// deterministic output.
//
// A *core.Network can never contain a cycle; DetectCycles exists to audit
// raw edge lists before they are inserted and to assert the forest property
// in tests.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles reported, L = avg cycle length)
//   - Memory: O(V)
package dfs

import (
	"sort"
	"strings"
)

// DetectCycles inspects g for cycles reachable along back-edges.
// Returns (true, cycles) if any are found, (false, nil) otherwise.
// A nil g is treated as cycle-free.
func DetectCycles(g Adjacency) (bool, [][]string) {
	if g == nil {
		return false, nil
	}

	users := g.Users()
	state := make(map[string]int, len(users))
	path := make([]string, 0, len(users))
	seen := make(map[string]struct{})
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		state[id] = Gray
		path = append(path, id)
		for _, child := range g.DirectReferrals(id) {
			switch state[child] {
			case White:
				visit(child)
			case Gray:
				start := indexOf(path, child)
				cyc := canonical(path[start:])
				sig := strings.Join(cyc, ",")
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, cyc)
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black
	}

	for _, u := range users {
		if state[u] == White {
			visit(u)
		}
	}

	if len(cycles) == 0 {
		return false, nil
	}
	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return true, cycles
}

// canonical returns a copy of cyc rotated so that its smallest ID is first.
func canonical(cyc []string) []string {
	min := 0
	for i := range cyc {
		if cyc[i] < cyc[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cyc))
	out = append(out, cyc[min:]...)
	out = append(out, cyc[:min]...)

	return out
}

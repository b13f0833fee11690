// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// impl_random_forest.go - RandomForest(n, p): random recursive trees.
//
// Model:
//   - Users idFn(0..n-1) are registered in ascending order.
//   - For i = 1..n-1, with probability p user i is referred by a uniformly
//     chosen earlier user j < i; otherwise i starts a new tree.
//   - Referrals only point from lower to higher index, so none can be
//     rejected on a fresh network. On a pre-populated network rejections are
//     skipped.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewUsers), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p ≤ 1 (parent choice is random).
//
// Complexity: O(n) draws plus the network's O(V+E) check per referral.

package builder

import (
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// RandomForest returns a Constructor sampling a forest over n users.
func RandomForest(n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < MinForestUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomForest, n, MinForestUsers, ErrTooFewUsers)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomForest, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomForest, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := net.AddUser(id); err != nil {
				return fmt.Errorf("%s: AddUser(%s): %w", MethodRandomForest, id, err)
			}
		}
		if p == 0 {
			return nil
		}

		rng := cfg.rng
		for i := 1; i < n; i++ {
			if rng.Float64() >= p {
				continue
			}
			from, to := cfg.idFn(rng.Intn(i)), cfg.idFn(i)
			if err := net.AddReferral(from, to); err != nil {
				if rejected(err) {
					continue
				}
				return fmt.Errorf("%s: AddReferral(%s→%s): %w", MethodRandomForest, from, to, err)
			}
		}

		return nil
	}
}

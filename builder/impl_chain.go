// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// impl_chain.go - Chain(n): the deepest possible referral tree.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewUsers).
//   - Users idFn(0..n-1); referrals idFn(i-1) → idFn(i) in ascending i.
//   - Any rejection (e.g. an ID already referred) is ErrConstructFailed, also
//     matching the core sentinel.
//
// Complexity: O(n) referrals, each O(V+E) for the cycle check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// Chain returns a Constructor for the path idFn(0) → idFn(1) → … → idFn(n-1).
func Chain(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < MinChainUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, MinChainUsers, ErrTooFewUsers)
		}
		for i := 1; i < n; i++ {
			from, to := cfg.idFn(i-1), cfg.idFn(i)
			if err := net.AddReferral(from, to); err != nil {
				return fmt.Errorf("%s: AddReferral(%s→%s): %w: %w", MethodChain, from, to, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

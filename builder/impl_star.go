// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// impl_star.go - Star(n): one hub referring everybody else.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewUsers).
//   - Hub is idFn(0); leaves idFn(1..n-1) in ascending order.
//   - Any rejection is ErrConstructFailed.
//
// A star has a single referrer with n-1 direct referrals and no broker, so
// flow centrality is empty while unique reach picks only the hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// Star returns a Constructor for a hub with n-1 direct referrals.
func Star(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < MinStarUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarUsers, ErrTooFewUsers)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := net.AddReferral(hub, leaf); err != nil {
				return fmt.Errorf("%s: AddReferral(%s→%s): %w: %w", MethodStar, hub, leaf, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// impl_dashboard.go - DashboardSeed(): the sample network the analytics
// dashboard starts from.
//
// Passes (users are "user_001".."user_100", index i ↦ user_{i+1}):
//  1. Roots 0..19: root i draws k ∈ [1,4] and refers users 20+4i+j, j < k.
//  2. Users 20..59: each, with probability 0.4, refers a random user in
//     60..79. Many of those already have a referrer from pass 1; the
//     rejection is skipped.
//  3. 30 outside candidates "new_candidate_1".."new_candidate_30", each
//     referred by a random user in 0..79.
//
// Only users that take part in a referral are registered.
// Requires cfg.rng (ErrNeedRandSource). cfg.idFn is not used: the dashboard
// IDs are fixed.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/refnet/core"
)

// DashboardUserID returns the dashboard ID for zero-based index i.
func DashboardUserID(i int) string {
	return PaddedIDFn(DashboardUserPrefix, 3)(i + 1)
}

// DashboardCandidateID returns the outside-candidate ID for zero-based index i.
func DashboardCandidateID(i int) string {
	return DashboardCandidatePrefix + strconv.Itoa(i+1)
}

// DashboardSeed returns a Constructor reproducing the dashboard sample data.
func DashboardSeed() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodDashboardSeed, ErrNeedRandSource)
		}
		rng := cfg.rng
		refer := func(from, to string) error {
			if err := net.AddReferral(from, to); err != nil && !rejected(err) {
				return fmt.Errorf("%s: AddReferral(%s→%s): %w", MethodDashboardSeed, from, to, err)
			}
			return nil
		}

		for i := 0; i < DashboardRoots; i++ {
			k := rng.Intn(DashboardFanout) + 1
			for j := 0; j < k; j++ {
				c := DashboardRoots + i*DashboardFanout + j
				if c >= DashboardUsers {
					break
				}
				if err := refer(DashboardUserID(i), DashboardUserID(c)); err != nil {
					return err
				}
			}
		}

		for i := DashboardSecondLevelLo; i < DashboardSecondLevelHi; i++ {
			if rng.Float64() >= DashboardSecondProb {
				continue
			}
			c := DashboardSecondTargetLo + rng.Intn(DashboardSecondTargets)
			if err := refer(DashboardUserID(i), DashboardUserID(c)); err != nil {
				return err
			}
		}

		for i := 0; i < DashboardCandidates; i++ {
			r := rng.Intn(DashboardCandidateRefs)
			if err := refer(DashboardUserID(r), DashboardCandidateID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: refnet/simulate
//
// options.go - functional options for Simulator.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs
//     (non-positive cohort/capacity/max days, nil rand). Simulation itself
//     never panics.
//   - Determinism is explicit: seed via WithSeed or WithRand.

package simulate

import (
	"math/rand"
	"time"
)

// Defaults for the growth model.
const (
	DefaultCohort   = 100
	DefaultCapacity = 10
	DefaultMaxDays  = 10000
)

// Option configures a Simulator.
type Option func(*Simulator)

// WithCohort sets the number of active referrer slots. Panics if n <= 0.
func WithCohort(n int) Option {
	if n <= 0 {
		panic("simulate: WithCohort(n<=0)")
	}
	return func(s *Simulator) { s.cohort = n }
}

// WithCapacity sets how many referrals a slot makes before it is handed
// off. Panics if c <= 0.
func WithCapacity(c int) Option {
	if c <= 0 {
		panic("simulate: WithCapacity(c<=0)")
	}
	return func(s *Simulator) { s.capacity = c }
}

// WithMaxDays bounds DaysToTarget. Panics if d <= 0.
func WithMaxDays(d int) Option {
	if d <= 0 {
		panic("simulate: WithMaxDays(d<=0)")
	}
	return func(s *Simulator) { s.maxDays = d }
}

// WithRand installs an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}
	return func(s *Simulator) { s.rng = r }
}

// WithSeed installs a generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSingleRunSearch makes DaysToTarget scan one trajectory of MaxDays
// instead of re-simulating each candidate day count.
func WithSingleRunSearch() Option {
	return func(s *Simulator) { s.singleRun = true }
}

func unseeded() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

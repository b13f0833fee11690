package simulate

import (
	"math"
	"math/rand"
)

// Simulator runs the fixed-cohort growth model.
type Simulator struct {
	cohort    int
	capacity  int
	maxDays   int
	singleRun bool
	rng       *rand.Rand
}

// Trajectory is the full output of one run.
type Trajectory struct {
	// Cumulative[i] is the total number of referrals made on days 1..i+1.
	Cumulative []int
	// Daily[i] is the number of referrals made on day i+1.
	Daily []int
	// Handoffs counts slots that reached capacity and were reset.
	Handoffs int
}

// New returns a Simulator with defaults (cohort 100, capacity 10, max days
// 10000, unseeded generator) overridden by opts.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		cohort:   DefaultCohort,
		capacity: DefaultCapacity,
		maxDays:  DefaultMaxDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = unseeded()
	}

	return s
}

// Cohort returns the number of referrer slots.
func (s *Simulator) Cohort() int { return s.cohort }

// Capacity returns the per-slot referral capacity.
func (s *Simulator) Capacity() int { return s.capacity }

// MaxDays returns the DaysToTarget bound.
func (s *Simulator) MaxDays() int { return s.maxDays }

// Simulate runs the model for days days with success probability p and
// returns the cumulative referral count at the end of each day.
//
// The result has length max(days, 0) and is non-decreasing. p is clamped to
// [0, 1] (NaN counts as 0), so Simulate(0, d) is all zeros.
func (s *Simulator) Simulate(p float64, days int) []int {
	return s.Run(p, days).Cumulative
}

// Run is Simulate with the per-day breakdown and handoff count.
//
// Complexity: O(days · cohort).
func (s *Simulator) Run(p float64, days int) Trajectory {
	if days < 0 {
		days = 0
	}
	p = clamp(p)
	tr := Trajectory{
		Cumulative: make([]int, days),
		Daily:      make([]int, days),
	}
	counts := make([]int, s.cohort)
	total := 0
	for d := 0; d < days; d++ {
		daily := 0
		for i := range counts {
			if s.rng.Float64() < p {
				counts[i]++
				daily++
				if counts[i] >= s.capacity {
					// handed off to a newly referred participant
					counts[i] = 0
					tr.Handoffs++
				}
			}
		}
		total += daily
		tr.Daily[d] = daily
		tr.Cumulative[d] = total
	}

	return tr
}

// DaysToTarget returns the smallest day count whose simulated cumulative
// total reaches target, and false if MaxDays is exceeded first. A
// non-positive target is met on day 1.
//
// Outcomes that are certain are answered without simulating: p <= 0 can
// never reach a positive target, and a target above cohort·MaxDays is out of
// reach even at p = 1.
func (s *Simulator) DaysToTarget(p float64, target int) (int, bool) {
	if target <= 0 {
		return 1, true
	}
	p = clamp(p)
	if p == 0 || int64(target) > int64(s.cohort)*int64(s.maxDays) {
		return 0, false
	}
	if s.singleRun {
		for d, total := range s.Simulate(p, s.maxDays) {
			if total >= target {
				return d + 1, true
			}
		}
		return 0, false
	}
	for d := 1; d <= s.maxDays; d++ {
		if res := s.Simulate(p, d); res[d-1] >= target {
			return d, true
		}
	}

	return 0, false
}

func clamp(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

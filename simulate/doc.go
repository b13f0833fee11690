// Package simulate projects referral growth with a discrete-time stochastic
// model.
//
// Model
//
//	A fixed cohort of N referrer slots (default 100) attempts referrals for D
//	days. Each day every slot independently succeeds with probability p. A
//	success bumps the slot's counter; when the counter reaches the capacity C
//	(default 10) it resets to zero, modeling the slot being handed off to a
//	newly referred participant who starts from scratch. The cohort never grows.
//
//	Simulate returns the cumulative number of successful referrals at the end
//	of each day: a non-decreasing series of length D whose day-over-day
//	difference is that day's success count.
//
// Randomness
//
//	By default a Simulator draws from a time-seeded source, so two runs differ.
//	Pass WithSeed or WithRand for reproducible output. A Simulator (and its
//	generator) is not safe for concurrent use; RunScenarios gives each
//	goroutine its own instance.
//
// Days to target
//
//	DaysToTarget re-simulates for D = 1, 2, 3, … until the last day's
//	cumulative total reaches the target. Each attempt is an independent run
//	continuing the same generator stream, so the answer varies between
//	unseeded runs. WithSingleRunSearch switches to one long trajectory and
//	reports the first day it crosses the target, which is both faster and
//	monotone in the target.
package simulate

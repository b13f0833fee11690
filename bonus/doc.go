// Package bonus searches for the smallest referral bonus that lets the growth
// model reach a hiring target.
//
// The caller supplies an AdoptionFunc mapping a bonus in dollars to a daily
// referral success probability. The Optimizer tests bonuses on a fixed grid
// (multiples of the increment, default $10, up to the upper bound, default
// $10000) with a lower-bound binary search: each step simulates the midpoint
// bonus for the requested number of days and keeps the left half when the
// final cumulative count meets the target.
//
// For a monotone AdoptionFunc the result is the smallest tested increment that
// met the target. Because every probe is a fresh stochastic run, an unseeded
// Optimizer may return different answers across calls; seed the Simulator for
// reproducible output.
//
// "Not found" is a normal outcome (Result.Found == false), not an error. A
// zero bonus is a valid answer.
package bonus

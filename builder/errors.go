// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   - Option constructors (WithX) panic on nil input; constructors never panic.

package builder

import "errors"

// ErrTooFewUsers indicates a size parameter below the constructor's minimum.
var ErrTooFewUsers = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the network refused a referral that the
// constructor's topology requires, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

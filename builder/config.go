// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn = DefaultIDFn ("0","1","2",...)
//   - rng  = nil (stochastic constructors fail with ErrNeedRandSource)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: refnet/builder
//
// api.go - BuildNetwork orchestrator and the Constructor contract.
//
// Contract:
//   - One orchestrator: BuildNetwork(nopts, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order.
//   - Same inputs, options, seed and constructor order give identical networks.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// Constructor applies a deterministic mutation to n using the resolved
// builderConfig. Constructors validate parameters before touching n and
// return sentinel errors; they never panic.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a core.Network with nopts, resolves the builder
// configuration from bopts and applies every constructor in order.
// Constructor errors are wrapped as "BuildNetwork: %w"; the partially built
// network is discarded.
func BuildNetwork(nopts []core.NetworkOption, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork(nopts...)
	if err := Apply(n, bopts, cons...); err != nil {
		return nil, err
	}

	return n, nil
}

// Apply runs cons against an existing network. Useful for layering a
// synthetic seed on top of loaded data.
func Apply(n *core.Network, bopts []BuilderOption, cons ...Constructor) error {
	if n == nil {
		return fmt.Errorf("BuildNetwork: nil network: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return nil
}

// rejected reports whether err is one of the referral rules a stochastic
// seed may trip over.
func rejected(err error) bool {
	return errors.Is(err, core.ErrSelfReferral) ||
		errors.Is(err, core.ErrDuplicateReferrer) ||
		errors.Is(err, core.ErrCycleDetected)
}

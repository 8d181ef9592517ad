// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// api.go - the Build orchestrator and the Constructor contract.
//
// Design contract (strict):
//   - One orchestrator: Build(d, opts, cons...). Resolves the scheme and cfg,
//     runs cons in order over a single accumulator, returns a validated
//     polynomial (pruned, no invalid keys).
//   - Constructors ADD into the accumulator, so composing them sums their
//     polynomials.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mnl/monomial"
	"github.com/katalvlaran/mnl/polynomial"
)

// Constructor adds terms into acc using the scheme and resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(acc map[monomial.Index]float64, s *monomial.Scheme, cfg builderConfig) error

// Build creates a polynomial in d variables as the sum of all constructors.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
func Build(d int, opts []Option, cons ...Constructor) (*polynomial.Polynomial, error) {
	s, err := monomial.For(d)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)

	acc := make(map[monomial.Index]float64)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	p, err := polynomial.New(d, acc)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return p, nil
}

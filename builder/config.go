// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = nil                    (pure/deterministic unless seeded)
//   • coeffFn = DefaultCoefficientFn   (every coefficient is 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Coefficient generator for every emitted term.
	coeffFn CoefficientFn
}

// newBuilderConfig starts from the defaults and applies opts in order;
// later options override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		coeffFn: DefaultCoefficientFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

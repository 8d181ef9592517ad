// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// impl_dense.go - Dense(k) and RandomSparse(k, p) over the index range
// [0, SpaceDim(k)).
//
// Determinism:
//   - Indices are visited in ascending order; every RNG draw happens in
//     that order, so a fixed seed fixes the result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mnl/monomial"
)

const (
	methodDense        = "Dense"
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// Dense adds every monomial of order ≤ k with coefficient cfg.coeffFn(cfg.rng).
func Dense(k int) Constructor {
	return func(acc map[monomial.Index]float64, s *monomial.Scheme, cfg builderConfig) error {
		end, err := orderEnd(methodDense, s, k)
		if err != nil {
			return err
		}
		for alpha := monomial.One; alpha < end; alpha++ {
			acc[alpha] += cfg.coeffFn(cfg.rng)
		}

		return nil
	}
}

// RandomSparse keeps each monomial of order ≤ k independently with
// probability p. An RNG is required when 0 < p < 1.
func RandomSparse(k int, p float64) Constructor {
	return func(acc map[monomial.Index]float64, s *monomial.Scheme, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return builderErrorf(fmt.Sprintf("%s: p=%.6f not in [%.1f,%.1f]", methodRandomSparse, p, probMin, probMax), ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource)
		}
		end, err := orderEnd(methodRandomSparse, s, k)
		if err != nil {
			return err
		}

		for alpha := monomial.One; alpha < end; alpha++ {
			keep := p == probMax || (p > probMin && cfg.rng.Float64() < p)
			if !keep {
				continue
			}
			acc[alpha] += cfg.coeffFn(cfg.rng)
		}

		return nil
	}
}

// orderEnd validates k and returns SpaceDim(k).
func orderEnd(method string, s *monomial.Scheme, k int) (monomial.Index, error) {
	if k < 0 {
		return 0, builderErrorf(fmt.Sprintf("%s(%d)", method, k), ErrInvalidOrder)
	}
	end, err := s.SpaceDim(k)
	if err != nil {
		return 0, builderErrorf(method, err)
	}

	return end, nil
}

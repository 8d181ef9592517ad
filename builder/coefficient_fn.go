// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// coefficient_fn.go - coefficient distributions for the constructors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultCoefficient is the coefficient emitted when no CoefficientFn is set.
const DefaultCoefficient float64 = 1

// CoefficientFn produces a term coefficient from an optional RNG. It must
// be deterministic for a given RNG state.
type CoefficientFn func(rng *rand.Rand) float64

// DefaultCoefficientFn always returns DefaultCoefficient.
func DefaultCoefficientFn(_ *rand.Rand) float64 {
	return DefaultCoefficient
}

// ConstantCoefficientFn returns a CoefficientFn that always yields c.
// Panics if c is NaN or ±Inf.
func ConstantCoefficientFn(c float64) CoefficientFn {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		panic(fmt.Sprintf("ConstantCoefficientFn: value must be finite, got %g", c))
	}

	return func(_ *rand.Rand) float64 {
		return c
	}
}

// UniformCoefficientFn samples uniformly in [lo, hi).
// Panics unless lo ≤ hi and both are finite.
// With a nil rng it yields DefaultCoefficient.
func UniformCoefficientFn(lo, hi float64) CoefficientFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		panic(fmt.Sprintf("UniformCoefficientFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCoefficient
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// impl_power_sum.go - PowerSum(n) = (x0 + … + x{d-1})^n.
//
// The expansion goes through polynomial.Pow, so the coefficients are the
// multinomial coefficients n!/(e0!…e{d-1}!).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mnl/monomial"
	"github.com/katalvlaran/mnl/polynomial"
)

const methodPowerSum = "PowerSum"

// PowerSum adds (Σ x_v)^n. Requires n ≥ 0; n beyond the scheme's MaxOrder
// fails with monomial.ErrOrderOverflow.
func PowerSum(n int) Constructor {
	return func(acc map[monomial.Index]float64, s *monomial.Scheme, _ builderConfig) error {
		if n < 0 {
			return builderErrorf(fmt.Sprintf("%s(%d)", methodPowerSum, n), ErrInvalidOrder)
		}

		gens := make(map[monomial.Index]float64, s.Dim())
		for v := 0; v < s.Dim(); v++ {
			gens[monomial.Index(v+1)] = 1
		}
		sum, err := polynomial.New(s.Dim(), gens)
		if err != nil {
			return builderErrorf(methodPowerSum, err)
		}
		pow, err := polynomial.Pow(sum, n)
		if err != nil {
			return builderErrorf(methodPowerSum, err)
		}
		pow.Range(func(alpha monomial.Index, c float64) bool {
			acc[alpha] += c
			return true
		})

		return nil
	}
}

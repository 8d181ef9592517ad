// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// impl_linear.go - degree-one constructors: Generator and LinearForm.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mnl/monomial"
)

const (
	methodGenerator  = "Generator"
	methodLinearForm = "LinearForm"
)

// Generator adds the monomial x_v with coefficient 1.
// Errors: monomial.ErrVariableOutOfRange for v ∉ [0, d).
func Generator(v int) Constructor {
	return func(acc map[monomial.Index]float64, s *monomial.Scheme, _ builderConfig) error {
		g, err := s.Generator(v)
		if err != nil {
			return builderErrorf(methodGenerator, err)
		}
		acc[g]++

		return nil
	}
}

// LinearForm adds Σ coeffs[v]·x_v. Exactly d coefficients are required.
func LinearForm(coeffs ...float64) Constructor {
	return func(acc map[monomial.Index]float64, s *monomial.Scheme, _ builderConfig) error {
		if len(coeffs) != s.Dim() {
			return builderErrorf(fmt.Sprintf("%s: got %d coefficients for d=%d", methodLinearForm, len(coeffs), s.Dim()), ErrLengthMismatch)
		}
		for v, c := range coeffs {
			g, err := s.Generator(v)
			if err != nil {
				return builderErrorf(methodLinearForm, err)
			}
			acc[g] += c
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// Monomial-level failures (e.g. monomial.ErrOrderOverflow) are wrapped, not
// replaced, so errors.Is works against both packages' sentinels.

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPolynomial indicates a nil *Polynomial operand.
	ErrNilPolynomial = errors.New("polynomial: nil polynomial")

	// ErrDimensionMismatch indicates operands over different numbers of variables.
	ErrDimensionMismatch = errors.New("polynomial: dimension mismatch")

	// ErrInvalidTerm indicates a term keyed by a non-monomial index.
	ErrInvalidTerm = errors.New("polynomial: invalid term index")

	// ErrNaNInf indicates a NaN or ±Inf coefficient or scale factor.
	ErrNaNInf = errors.New("polynomial: NaN or Inf coefficient")

	// ErrNegativePower indicates Pow with a negative exponent.
	ErrNegativePower = errors.New("polynomial: negative power")
)

// polynomialErrorf prefixes err with the operation tag.
func polynomialErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

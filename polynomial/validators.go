// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// validators.go - operand checks shared by the binary operations.
// Order: nil → dimension.

package polynomial

// validateNotNil rejects nil operands.
func validateNotNil(ps ...*Polynomial) error {
	for _, p := range ps {
		if p == nil {
			return ErrNilPolynomial
		}
	}

	return nil
}

// validatePair rejects nil operands and operands over different schemes.
func validatePair(p, q *Polynomial) error {
	if err := validateNotNil(p, q); err != nil {
		return err
	}
	if p.scheme.Dim() != q.scheme.Dim() {
		return ErrDimensionMismatch
	}

	return nil
}

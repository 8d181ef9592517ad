// SPDX-License-Identifier: MIT
// Package: mnl/monomial
//
// validators.go - argument checks shared by the public operations.
// Each validator returns a plain sentinel; call sites add the operation tag.

package monomial

// validateIndex accepts every real monomial index and, when allowZero is
// set, the Zero sentinel.
func (s *Scheme) validateIndex(alpha Index, allowZero bool) error {
	switch {
	case alpha == Zero && allowZero:
		return nil
	case alpha == Zero:
		return ErrSentinelIndex
	case alpha < Zero:
		return ErrInvalidIndex
	case alpha >= s.Len():
		return ErrIndexOverflow
	}

	return nil
}

// validateVariable accepts 0 ≤ variable < d.
func (s *Scheme) validateVariable(variable int) error {
	if variable < 0 || variable >= s.dim {
		return ErrVariableOutOfRange
	}

	return nil
}

// validateOrder accepts orders up to MaxOrder.
func (s *Scheme) validateOrder(k int) error {
	if k > s.maxOrder {
		return ErrOrderOverflow
	}

	return nil
}

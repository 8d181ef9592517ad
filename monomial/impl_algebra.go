// SPDX-License-Identifier: MIT
// Package: mnl/monomial
//
// impl_algebra.go - index algebra: generators, products, derivatives and
// antiderivatives.
//
// Contract:
//   - Zero is absorptive under Product and maps to Zero under Derivative.
//   - Derivative/Antiderivative shift one exponent by ∓1. They carry no
//     scalar factor; d/dx(x^n) = n·x^(n-1) is the caller's business.
//   - Sentinel handling happens once here, at the public boundary. The
//     recursive helpers only see real indices (plus the inner-level 0 case
//     in derivative), so the d = 1 closed forms stay branch-free.

package monomial

import "fmt"

// Generator returns the index of the degree-1 monomial x_variable,
// which is variable+1.
func (s *Scheme) Generator(variable int) (Index, error) {
	if err := s.validateVariable(variable); err != nil {
		return 0, monomialErrorf(fmt.Sprintf("Generator(%d)", variable), err)
	}

	return Index(variable + 1), nil
}

// Product returns the index of m_alpha · m_beta.
// Zero in either argument yields Zero; One is the identity.
// Returns ErrOrderOverflow when the product order exceeds MaxOrder().
// Complexity: O(d).
func (s *Scheme) Product(alpha, beta Index) (Index, error) {
	tag := fmt.Sprintf("Product(%d, %d)", alpha, beta)
	if err := s.validateIndex(alpha, true); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if err := s.validateIndex(beta, true); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if alpha == Zero || beta == Zero {
		return Zero, nil
	}
	if err := s.validateOrder(s.order(alpha) + s.order(beta)); err != nil {
		return 0, monomialErrorf(tag, err)
	}

	return s.product(alpha, beta), nil
}

// Derivative returns the index of the monomial obtained by lowering the
// exponent of variable by one, or Zero when that exponent is already 0.
// Derivative(0, v) and Derivative(Zero, v) are Zero.
// Complexity: O(d).
func (s *Scheme) Derivative(alpha Index, variable int) (Index, error) {
	tag := fmt.Sprintf("Derivative(%d, %d)", alpha, variable)
	if err := s.validateIndex(alpha, true); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if err := s.validateVariable(variable); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if alpha == Zero {
		return Zero, nil
	}

	return s.derivative(alpha, variable), nil
}

// Antiderivative returns the index of the monomial obtained by raising the
// exponent of variable by one. Antiderivative(Zero, v) is One: the
// antiderivative of zero is a constant.
// Returns ErrOrderOverflow when alpha already has order MaxOrder().
// Complexity: O(d).
func (s *Scheme) Antiderivative(alpha Index, variable int) (Index, error) {
	tag := fmt.Sprintf("Antiderivative(%d, %d)", alpha, variable)
	if err := s.validateIndex(alpha, true); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if err := s.validateVariable(variable); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if alpha == Zero {
		return One, nil
	}
	if err := s.validateOrder(s.order(alpha) + 1); err != nil {
		return 0, monomialErrorf(tag, err)
	}

	return s.antiderivative(alpha, variable), nil
}

// product adds exponent vectors: multiply the inner monomials, then place
// the result in the block of order ka+kb.
func (s *Scheme) product(alpha, beta Index) Index {
	if s.inner == nil {
		return alpha + beta
	}

	ka, kb := s.order(alpha), s.order(beta)

	return s.inner.product(alpha-s.spaceDim(ka-1), beta-s.spaceDim(kb-1)) + s.spaceDim(ka+kb-1)
}

// derivative expects alpha ≥ 0.
func (s *Scheme) derivative(alpha Index, variable int) Index {
	if s.inner == nil {
		// 0 - 1 is Zero.
		return alpha - 1
	}
	if alpha == One {
		return Zero
	}

	k := s.order(alpha)
	inner := alpha - s.spaceDim(k-1)
	if variable == 0 {
		// Inner monomials of order k use up the whole degree: x0 is absent.
		if inner >= s.inner.spaceDim(k-1) {
			return Zero
		}
		return inner + s.spaceDim(k-2)
	}

	d := s.inner.derivative(inner, variable-1)
	if d == Zero {
		return Zero
	}

	return d + s.spaceDim(k-2)
}

// antiderivative expects alpha ≥ 0 with order < maxOrder.
func (s *Scheme) antiderivative(alpha Index, variable int) Index {
	if s.inner == nil {
		return alpha + 1
	}

	k := s.order(alpha)
	if variable == 0 {
		return alpha + s.inner.spaceDim(k)
	}

	return s.inner.antiderivative(alpha-s.spaceDim(k-1), variable-1) + s.spaceDim(k)
}

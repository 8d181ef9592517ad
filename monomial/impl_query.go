// SPDX-License-Identifier: MIT
// Package: mnl/monomial
//
// impl_query.go - read-only queries: block sizes, orders, exponents.
//
// Layout recap:
//   alpha = SpaceDim(k-1) + inner, where k is the order of alpha and inner
//   is the (d-1)-variable index of the monomial x1^e1 … x{d-1}^e{d-1}.
//   The exponent of x0 is k minus the order of inner.
//
// Unexported helpers (spaceDim, order, exponent, encode) assume validated
// arguments and recurse through s.inner down to the closed-form d = 1 case.

package monomial

import (
	"fmt"
	"math"
)

// SpaceDim returns the number of monomials of order ≤ k, C(k+d, d).
// SpaceDim(k) = 0 for k < 0, which makes SpaceDim(-1) the start of block 0.
// Returns ErrOrderOverflow for k > MaxOrder().
// Complexity: O(1).
func (s *Scheme) SpaceDim(k int) (Index, error) {
	if err := s.validateOrder(k); err != nil {
		return 0, monomialErrorf(fmt.Sprintf("SpaceDim(%d)", k), err)
	}

	return s.spaceDim(k), nil
}

// Block returns the half-open index range [lo, hi) of all order-k monomials.
func (s *Scheme) Block(k int) (lo, hi Index, err error) {
	if k < 0 {
		return 0, 0, monomialErrorf(fmt.Sprintf("Block(%d)", k), ErrInvalidIndex)
	}
	if err = s.validateOrder(k); err != nil {
		return 0, 0, monomialErrorf(fmt.Sprintf("Block(%d)", k), err)
	}

	return s.spaceDim(k - 1), s.spaceDim(k), nil
}

// Order returns the order (total degree) of the monomial alpha.
// Zero has no order (ErrSentinelIndex).
// Complexity: O(1) expected; the float estimate lands on or next to the block.
func (s *Scheme) Order(alpha Index) (int, error) {
	if err := s.validateIndex(alpha, false); err != nil {
		return 0, monomialErrorf(fmt.Sprintf("Order(%d)", alpha), err)
	}

	return s.order(alpha), nil
}

// Exponent returns the exponent of variable in the monomial alpha.
// Complexity: O(d).
func (s *Scheme) Exponent(alpha Index, variable int) (int, error) {
	tag := fmt.Sprintf("Exponent(%d, %d)", alpha, variable)
	if err := s.validateIndex(alpha, false); err != nil {
		return 0, monomialErrorf(tag, err)
	}
	if err := s.validateVariable(variable); err != nil {
		return 0, monomialErrorf(tag, err)
	}

	return s.exponent(alpha, variable), nil
}

// Exponents decodes alpha into its full exponent vector (length d).
// Complexity: O(d).
func (s *Scheme) Exponents(alpha Index) ([]int, error) {
	if err := s.validateIndex(alpha, false); err != nil {
		return nil, monomialErrorf(fmt.Sprintf("Exponents(%d)", alpha), err)
	}

	out := make([]int, s.dim)
	cur, a := s, alpha
	for v := 0; cur.inner != nil; v++ {
		k := cur.order(a)
		inner := a - cur.spaceDim(k-1)
		out[v] = k - cur.inner.order(inner)
		cur, a = cur.inner, inner
	}
	out[s.dim-1] = int(a)

	return out, nil
}

// IndexOf encodes an exponent vector of length d into its index.
// It is the inverse of Exponents.
// Complexity: O(d²).
func (s *Scheme) IndexOf(exponents ...int) (Index, error) {
	tag := fmt.Sprintf("IndexOf(%v)", exponents)
	if len(exponents) != s.dim {
		return 0, monomialErrorf(tag, ErrVariableOutOfRange)
	}

	k := 0
	for _, e := range exponents {
		if e < 0 {
			return 0, monomialErrorf(tag, ErrInvalidExponent)
		}
		k += e
	}
	if err := s.validateOrder(k); err != nil {
		return 0, monomialErrorf(tag, err)
	}

	return s.encode(exponents), nil
}

// spaceDim is SpaceDim without validation; k ≤ maxOrder.
func (s *Scheme) spaceDim(k int) Index {
	if k < 0 {
		return 0
	}
	if s.inner == nil {
		return Index(k + 1)
	}

	return s.blocks[k]
}

// order finds k with alpha ∈ [SpaceDim(k-1), SpaceDim(k)).
// The float estimate inverts SpaceDim(k) ≈ (k+d)^d / d!; the two loops
// then walk to the exact block, so the estimate only affects speed.
func (s *Scheme) order(alpha Index) int {
	if s.inner == nil {
		return int(alpha)
	}

	k := int(math.Ceil(math.Pow(s.factorial*float64(alpha+1), 1/float64(s.dim)))) - s.dim
	if k < 0 {
		k = 0
	}
	if k > s.maxOrder {
		k = s.maxOrder
	}
	for k > 0 && alpha < s.spaceDim(k-1) {
		k--
	}
	for alpha >= s.spaceDim(k) {
		k++
	}

	return k
}

// exponent is Exponent without validation.
func (s *Scheme) exponent(alpha Index, variable int) int {
	if s.inner == nil {
		return int(alpha)
	}

	k := s.order(alpha)
	inner := alpha - s.spaceDim(k-1)
	if variable == 0 {
		return k - s.inner.order(inner)
	}

	return s.inner.exponent(inner, variable-1)
}

// encode is IndexOf without validation.
func (s *Scheme) encode(exponents []int) Index {
	if s.inner == nil {
		return Index(exponents[0])
	}

	k := 0
	for _, e := range exponents {
		k += e
	}

	return s.spaceDim(k-1) + s.inner.encode(exponents[1:])
}

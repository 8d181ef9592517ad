// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// methods.go - additive and multiplicative algebra.
//
// Every operation:
//   - Stage 1 (Validate): nil operands, matching dimensions, finite scalars.
//   - Stage 2 (Execute): accumulate into a fresh term map.
//   - Stage 3 (Finalize): prune |c| < Tolerance and return.

package polynomial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mnl/monomial"
)

// Add returns p + q. Fails with ErrNaNInf if a sum overflows float64.
// Complexity: O(|p| + |q|).
func Add(p, q *Polynomial) (*Polynomial, error) {
	if err := validatePair(p, q); err != nil {
		return nil, polynomialErrorf("Add", err)
	}

	out := p.Clone()
	for alpha, c := range q.terms {
		out.terms[alpha] += c
	}
	if err := out.finalize(); err != nil {
		return nil, polynomialErrorf("Add", err)
	}

	return out, nil
}

// Sub returns p - q.
// Complexity: O(|p| + |q|).
func Sub(p, q *Polynomial) (*Polynomial, error) {
	if err := validatePair(p, q); err != nil {
		return nil, polynomialErrorf("Sub", err)
	}

	out := p.Clone()
	for alpha, c := range q.terms {
		out.terms[alpha] -= c
	}
	if err := out.finalize(); err != nil {
		return nil, polynomialErrorf("Sub", err)
	}

	return out, nil
}

// Scale returns s·p. Scaling by 0 yields the zero polynomial.
// A product that overflows to ±Inf fails with ErrNaNInf.
// Complexity: O(|p|).
func Scale(p *Polynomial, s float64) (*Polynomial, error) {
	if err := validateNotNil(p); err != nil {
		return nil, polynomialErrorf("Scale", err)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, polynomialErrorf("Scale", ErrNaNInf)
	}

	out := emptyLike(p, len(p.terms))
	for alpha, c := range p.terms {
		out.terms[alpha] = s * c
	}
	if err := out.finalize(); err != nil {
		return nil, polynomialErrorf("Scale", err)
	}

	return out, nil
}

// Multiply returns the Cauchy product p·q: every term pair (i1,c1), (i2,c2)
// contributes c1·c2 to the monomial Product(i1, i2).
// Options: WithWorkers(n) parallelizes the pair loop.
//
// Errors:
//   - ErrNilPolynomial, ErrDimensionMismatch.
//   - monomial.ErrOrderOverflow (wrapped) when the product order exceeds
//     the scheme's MaxOrder.
//   - ErrNaNInf when an accumulated coefficient overflows float64.
//
// Complexity: O(|p|·|q|·d) time, O(|p|·|q|) space worst case.
func Multiply(p, q *Polynomial, opts ...Option) (*Polynomial, error) {
	if err := validatePair(p, q); err != nil {
		return nil, polynomialErrorf("Multiply", err)
	}
	// Overflow is decided by the top orders alone; reject before any work.
	if p.Len() > 0 && q.Len() > 0 {
		if k := p.Order() + q.Order(); k > p.scheme.MaxOrder() {
			return nil, polynomialErrorf(fmt.Sprintf("Multiply: order %d", k), monomial.ErrOrderOverflow)
		}
	}

	o := gatherOptions(opts...)
	out, err := cauchy(p, q, o.workers)
	if err != nil {
		return nil, polynomialErrorf("Multiply", err)
	}

	return out, nil
}

// Pow returns p^n by binary exponentiation; Pow(p, 0) is the constant 1.
// Options are forwarded to every Multiply.
// Complexity: O(log n) products.
func Pow(p *Polynomial, n int, opts ...Option) (*Polynomial, error) {
	if err := validateNotNil(p); err != nil {
		return nil, polynomialErrorf("Pow", err)
	}
	if n < 0 {
		return nil, polynomialErrorf(fmt.Sprintf("Pow(%d)", n), ErrNegativePower)
	}

	result, err := Constant(p.Dim(), 1)
	if err != nil {
		return nil, polynomialErrorf("Pow", err)
	}

	base := p
	for n > 0 {
		if n&1 == 1 {
			if result, err = Multiply(result, base, opts...); err != nil {
				return nil, polynomialErrorf("Pow", err)
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = Multiply(base, base, opts...); err != nil {
				return nil, polynomialErrorf("Pow", err)
			}
		}
	}

	return result, nil
}

// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// types.go - the Polynomial type and its constructors.
//
// Invariants (established by every constructor and operation):
//   - every key is a real monomial index of p.scheme (0 ≤ key < Len()).
//   - every coefficient is finite with |c| ≥ Tolerance.

package polynomial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mnl/monomial"
)

// Tolerance is the magnitude below which a coefficient counts as zero.
const Tolerance = 1e-10

// Polynomial is a sparse polynomial over a fixed monomial scheme.
type Polynomial struct {
	scheme *monomial.Scheme
	terms  map[monomial.Index]float64
}

// New builds a polynomial in d variables from index → coefficient pairs.
// The input map is copied; near-zero coefficients are dropped.
//
// Errors:
//   - monomial.ErrInvalidDimension for d outside [1, monomial.MaxDim].
//   - ErrInvalidTerm (wrapping the monomial error) for Zero, negative or
//     out-of-range keys.
//   - ErrNaNInf for non-finite coefficients.
func New(d int, terms map[monomial.Index]float64) (*Polynomial, error) {
	p, err := empty(d, len(terms))
	if err != nil {
		return nil, polynomialErrorf("New", err)
	}

	for alpha, c := range terms {
		if _, err := p.scheme.Order(alpha); err != nil {
			return nil, polynomialErrorf("New", fmt.Errorf("%w: %w", ErrInvalidTerm, err))
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, polynomialErrorf(fmt.Sprintf("New: term %d", alpha), ErrNaNInf)
		}
		p.terms[alpha] = c
	}
	p.prune()

	return p, nil
}

// Zero returns the polynomial with no terms in d variables.
func Zero(d int) (*Polynomial, error) {
	p, err := empty(d, 0)
	if err != nil {
		return nil, polynomialErrorf("Zero", err)
	}

	return p, nil
}

// Constant returns the constant polynomial c in d variables.
func Constant(d int, c float64) (*Polynomial, error) {
	return FromMonomial(d, monomial.One, c)
}

// FromMonomial returns the single-term polynomial c·m_alpha.
func FromMonomial(d int, alpha monomial.Index, c float64) (*Polynomial, error) {
	return New(d, map[monomial.Index]float64{alpha: c})
}

// empty allocates a zero polynomial with room for n terms.
func empty(d, n int) (*Polynomial, error) {
	s, err := monomial.For(d)
	if err != nil {
		return nil, err
	}

	return &Polynomial{scheme: s, terms: make(map[monomial.Index]float64, n)}, nil
}

// emptyLike allocates a zero polynomial over the same scheme as p.
func emptyLike(p *Polynomial, n int) *Polynomial {
	return &Polynomial{scheme: p.scheme, terms: make(map[monomial.Index]float64, n)}
}

// finalize rejects non-finite accumulated coefficients (float overflow),
// then prunes.
func (p *Polynomial) finalize() error {
	for alpha, c := range p.terms {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("term %d: %w", alpha, ErrNaNInf)
		}
	}
	p.prune()

	return nil
}

// prune removes every term with |c| < Tolerance.
func (p *Polynomial) prune() {
	for alpha, c := range p.terms {
		if math.Abs(c) < Tolerance {
			delete(p.terms, alpha)
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// queries.go - read-only accessors and term enumeration.

package polynomial

import (
	"math"

	"github.com/katalvlaran/mnl/monomial"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Dim returns the number of variables.
func (p *Polynomial) Dim() int { return p.scheme.Dim() }

// Scheme returns the monomial scheme the polynomial is indexed by.
func (p *Polynomial) Scheme() *monomial.Scheme { return p.scheme }

// Len returns the number of stored (non-zero) terms.
func (p *Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Coefficient returns the coefficient of m_alpha, 0 when absent.
func (p *Polynomial) Coefficient(alpha monomial.Index) float64 { return p.terms[alpha] }

// Order returns the order of the monomial with the greatest stored index.
// Because indices are graded, this is the total degree of p.
// The zero polynomial has order -1, matching SpaceDim's empty-range marker.
func (p *Polynomial) Order() int {
	if len(p.terms) == 0 {
		return -1
	}

	maxIndex := monomial.Zero
	for alpha := range p.terms {
		if alpha > maxIndex {
			maxIndex = alpha
		}
	}
	// Keys are validated on insertion, so Order cannot fail here.
	k, _ := p.scheme.Order(maxIndex)

	return k
}

// Terms returns a copy of the index → coefficient map.
func (p *Polynomial) Terms() map[monomial.Index]float64 {
	return maps.Clone(p.terms)
}

// Range calls fn for every term in unspecified order until fn returns false.
func (p *Polynomial) Range(fn func(alpha monomial.Index, c float64) bool) {
	for alpha, c := range p.terms {
		if !fn(alpha, c) {
			return
		}
	}
}

// Indices returns the stored monomial indices in ascending order.
func (p *Polynomial) Indices() []monomial.Index {
	keys := maps.Keys(p.terms)
	slices.Sort(keys)

	return keys
}

// Clone returns an independent copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{scheme: p.scheme, terms: maps.Clone(p.terms)}
}

// Equal reports whether p and q have the same dimension, the same term
// set, and coefficients that agree within eps.
func Equal(p, q *Polynomial, eps float64) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.Dim() != q.Dim() || len(p.terms) != len(q.terms) {
		return false
	}
	for alpha, c := range p.terms {
		d, ok := q.terms[alpha]
		if !ok || math.Abs(c-d) > eps {
			return false
		}
	}

	return true
}

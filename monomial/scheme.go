// SPDX-License-Identifier: MIT
// Package: mnl/monomial
//
// scheme.go - Scheme construction and the per-dimension cache.
//
// Design:
//   - A Scheme for d variables owns the Scheme for d-1 variables (inner);
//     the chain ends at d = 1, whose inner is nil and whose operations are
//     closed-form.
//   - Block boundaries SpaceDim(0 … MaxOrder) are computed once with
//     combin.Binomial and stored; every later query is table lookups plus
//     integer arithmetic.
//   - MaxOrder = combin.MaxN - d keeps C(k+d, d) inside the exact range.
//
// Concurrency:
//   - Schemes are immutable. The cache behind For is guarded by a RWMutex.

package monomial

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/mnl/combin"
)

// Scheme is the index engine for a fixed number of variables.
type Scheme struct {
	dim       int     // number of variables, 1 ≤ dim ≤ MaxDim
	maxOrder  int     // highest representable order
	factorial float64 // dim!, feeds the order estimate
	blocks    []Index // blocks[k] = SpaceDim(k) for 0 ≤ k ≤ maxOrder
	inner     *Scheme // scheme for dim-1 variables; nil when dim == 1
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[int]*Scheme, MaxDim)
)

// For returns the process-wide Scheme for d variables, building it on
// first use. Errors as NewScheme.
func For(d int) (*Scheme, error) {
	cacheMu.RLock()
	s, ok := cache[d]
	cacheMu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := NewScheme(d)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	// Another goroutine may have won the race; keep the first instance.
	if prev, ok := cache[d]; ok {
		return prev, nil
	}
	cache[d] = s

	return s, nil
}

// NewScheme builds an independent Scheme for d variables.
// Returns ErrInvalidDimension unless 1 ≤ d ≤ MaxDim.
// Complexity: O(d · MaxN) binomial evaluations.
func NewScheme(d int) (*Scheme, error) {
	if d < 1 || d > MaxDim {
		return nil, monomialErrorf(fmt.Sprintf("NewScheme(%d)", d), ErrInvalidDimension)
	}

	var inner *Scheme
	if d > 1 {
		var err error
		if inner, err = NewScheme(d - 1); err != nil {
			return nil, err
		}
	}

	f, err := combin.Factorial(d)
	if err != nil {
		return nil, monomialErrorf(fmt.Sprintf("NewScheme(%d)", d), err)
	}

	maxOrder := combin.MaxN - d
	blocks := make([]Index, maxOrder+1)
	for k := 0; k <= maxOrder; k++ {
		c, err := combin.Binomial(k+d, d)
		if err != nil {
			return nil, monomialErrorf(fmt.Sprintf("NewScheme(%d)", d), err)
		}
		blocks[k] = Index(c)
	}

	return &Scheme{
		dim:       d,
		maxOrder:  maxOrder,
		factorial: float64(f),
		blocks:    blocks,
		inner:     inner,
	}, nil
}

// Dim returns the number of variables.
func (s *Scheme) Dim() int { return s.dim }

// MaxOrder returns the highest monomial order the scheme can index.
func (s *Scheme) MaxOrder() int { return s.maxOrder }

// Len returns the number of representable monomials; valid indices are
// [0, Len()).
func (s *Scheme) Len() Index { return s.blocks[s.maxOrder] }

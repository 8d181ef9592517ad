// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// impl_multiply.go - sequential and partitioned Cauchy product kernels.
//
// Partitioning:
//   - The terms of p are sorted by index and cut into `workers` contiguous
//     chunks; chunk i pairs its terms with all of q into a private map.
//   - Partials are merged in chunk order after a single WaitGroup barrier.
//     Destination accumulation is commutative, so the result equals the
//     sequential one up to floating-point rounding.

package polynomial

import (
	"sync"

	"github.com/katalvlaran/mnl/monomial"
)

// cauchy dispatches to the sequential or the partitioned kernel.
func cauchy(p, q *Polynomial, workers int) (*Polynomial, error) {
	if workers > len(p.terms) {
		workers = len(p.terms)
	}
	if workers <= 1 {
		out := emptyLike(p, len(p.terms)*len(q.terms))
		if err := accumulate(p.scheme, out.terms, p.terms, q.terms); err != nil {
			return nil, err
		}
		if err := out.finalize(); err != nil {
			return nil, err
		}
		return out, nil
	}

	keys := p.Indices()
	chunk := (len(keys) + workers - 1) / workers

	partials := make([]map[monomial.Index]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(keys) {
			break
		}
		hi := lo + chunk
		if hi > len(keys) {
			hi = len(keys)
		}

		left := make(map[monomial.Index]float64, hi-lo)
		for _, alpha := range keys[lo:hi] {
			left[alpha] = p.terms[alpha]
		}

		wg.Add(1)
		go func(w int, left map[monomial.Index]float64) {
			defer wg.Done()
			partial := make(map[monomial.Index]float64, len(left)*len(q.terms))
			errs[w] = accumulate(p.scheme, partial, left, q.terms)
			partials[w] = partial
		}(w, left)
	}
	wg.Wait()

	out := emptyLike(p, len(p.terms)*len(q.terms))
	for w, partial := range partials {
		if errs[w] != nil {
			return nil, errs[w]
		}
		for alpha, c := range partial {
			out.terms[alpha] += c
		}
	}
	if err := out.finalize(); err != nil {
		return nil, err
	}

	return out, nil
}

// accumulate adds every pairwise product of left × right into dst.
func accumulate(s *monomial.Scheme, dst, left, right map[monomial.Index]float64) error {
	for a, ca := range left {
		for b, cb := range right {
			gamma, err := s.Product(a, b)
			if err != nil {
				return err
			}
			dst[gamma] += ca * cb
		}
	}

	return nil
}

// Package monomial implements a bijective arithmetic indexing of the
// monomials in d variables.
//
// What & Why:
//
//	Every monomial x0^e0 · x1^e1 · … · x{d-1}^e{d-1} is identified by one
//	non-negative integer Index. Ordering, exponent extraction, products,
//	derivatives and antiderivatives are computed directly on indices, so
//	polynomial code never materializes exponent vectors.
//
// Index layout (graded):
//
//	All monomials of order k (total degree) occupy the contiguous range
//	[SpaceDim(k-1), SpaceDim(k)), with SpaceDim(k) = C(k+d, d). Inside a
//	block, the offset of a monomial is its index in the (d-1)-variable
//	scheme of the monomial formed by x1 … x{d-1}; the exponent of x0 is
//	whatever order the inner monomial leaves unused. For d = 2:
//
//	index:  0  1  2  3   4   5   6   7    8    9
//	mono:   1  x  y  x²  xy  y²  x³  x²y  xy²  y³
//
// Sentinel:
//
//	Zero (-1) is not a monomial. It stands for "the zero polynomial / no
//	such monomial": Product absorbs it, Derivative of a constant yields it.
//
// Concurrency:
//
//	A Scheme is immutable after construction and safe for concurrent use.
//	For(d) caches one Scheme per dimension for the whole process.
//
// Example:
//
//	s, _ := monomial.For(2)
//	e, _ := s.Exponent(7, 0)  // 2  (index 7 is x²y)
//	p, _ := s.Product(5, 7)   // 18 (y² · x²y = x²y³)
package monomial

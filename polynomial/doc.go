// Package polynomial implements sparse real polynomials in d variables on
// top of the monomial index scheme.
//
// A Polynomial is a map from monomial.Index to a non-zero float64
// coefficient. Arithmetic never decodes exponent vectors: products of terms
// are monomial.Scheme.Product on their indices.
//
// Numeric policy:
//
//	A coefficient with |c| < Tolerance (1e-10) is zero. Every operation
//	prunes such terms from its result, so "zero" has one meaning and maps
//	do not grow with cancellation noise. The tolerance is fixed.
//
// Ownership:
//
//	Polynomials are values: operations return fresh polynomials and never
//	mutate their operands. Reads are safe for concurrent use.
//
// Parallelism:
//
//	Multiply and Pow accept WithWorkers(n). The Cauchy product is split
//	across n goroutines, each accumulating a private partial map, and the
//	partials are summed once at the end.
//
// Example:
//
//	p, _ := polynomial.New(2, map[monomial.Index]float64{1: 1, 2: 1}) // x + y
//	sq, _ := polynomial.Multiply(p, p)                                // x² + 2xy + y²
package polynomial

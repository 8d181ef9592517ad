// Package notation renders monomial indices and sparse polynomials as
// human-readable algebraic text.
//
// It is a read-only consumer of monomial.Scheme.Exponents and the
// polynomial query methods; nothing here affects the index scheme.
//
//	s, _ := monomial.For(2)
//	notation.Monomial(s, 7)             // "x^2y"
//	notation.Monomial(s, monomial.Zero) // "0"
//
// Variable names default to x, y, z for d ≤ 3 and x0, x1, … otherwise.
// Single-rune names are juxtaposed ("x^2y"); longer names are joined
// with "*" ("x0^2*x1").
package notation

// Package mnl is an arithmetic toolkit for multivariate monomials and
// sparse polynomials, where every monomial is one integer and all of
// the algebra runs on those integers.
//
// What is mnl?
//
//	A small, dependency-light library built in layers:
//		• combin:     exact factorials and binomial coefficients up to n = 20
//		• monomial:   the graded index scheme (order, exponents, product,
//		              derivative, antiderivative) for d = 1 … 20 variables
//		• polynomial: sparse map[Index]float64 polynomials with Add, Sub,
//		              Scale, a parallel Cauchy product and Pow
//		• builder:    composable constructors (generators, linear forms,
//		              power sums, dense and seeded random polynomials)
//		• notation:   human-readable rendering ("x^2y + 3z")
//
// Index layout:
//
//	Monomials of order k occupy [C(k-1+d, d), C(k+d, d)). The constant 1
//	is index 0, the generators x0 … x{d-1} are 1 … d, and -1 is the
//	Zero sentinel ("no monomial").
//
// Limits:
//
//	Binomials are exact for n ≤ 20, so a d-variable scheme supports
//	orders up to 20 - d. Operations past that limit fail with
//	monomial.ErrOrderOverflow rather than overflow silently.
//
// Quick start:
//
//	sum, _ := builder.Build(3, nil, builder.LinearForm(1, 1, 1))
//	cube, _ := polynomial.Pow(sum, 3, polynomial.WithWorkers(4))
//	fmt.Println(notation.Polynomial(cube))
//
// See examples/ for a runnable walkthrough.
package mnl

// Package combin provides the exact integer combinatorics used by the
// monomial index scheme.
//
// The package exposes two primitives:
//
//   - Factorial(n): fixed lookup table for 0! … 20!.
//   - Binomial(n, k): C(n, k), computed multiplicatively and rounded.
//
// Both are exact for every n ≤ MaxN. Larger arguments are rejected with
// ErrOverflow rather than producing a silently wrong count.
//
//	c, err := combin.Binomial(5, 2) // 10, nil
package combin

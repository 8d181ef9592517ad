// SPDX-License-Identifier: MIT
// Package: mnl/combin
//
// binomial.go - exact factorials and binomial coefficients.
//
// Contract:
//   - Factorial(n) and Binomial(n, k) are exact for 0 ≤ n ≤ MaxN.
//   - Binomial(n, k) = 0 for k > n; C(n,0) = C(n,n) = 1.
//   - Inputs outside the domain, and results that do not fit T, return
//     sentinel errors, never panic.
//
// Numeric note:
//   - Binomial divides as it multiplies: after step i the accumulator is
//     C(n, i) up to a relative error of i·2^-52. For n ≤ MaxN every C(n, i)
//     is below 2^18, so the absolute error stays far under 0.5 and rounding
//     recovers the exact integer.

package combin

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxN is the largest n accepted by Factorial and Binomial.
const MaxN = 20

// factorialTable holds 0! … 20!; 21! no longer fits in int64.
var factorialTable = [MaxN + 1]int64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000,
	121645100408832000, 2432902008176640000,
}

// Factorial returns n! for 0 ≤ n ≤ MaxN.
// Complexity: O(1).
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrNegativeArgument)
	}
	if n > MaxN {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}

	return factorialTable[n], nil
}

// Binomial returns the binomial coefficient C(n, k).
//
// Implementation:
//   - Stage 1: validate 0 ≤ n ≤ MaxN and k ≥ 0.
//   - Stage 2: short-circuit k > n (0) and k ∈ {0, n} (1).
//   - Stage 3: c = n · Π_{i=2..m} (n+1-i)/i with m = min(k, n-k), rounded.
//   - Stage 4: ErrOverflow if the rounded value does not fit T.
//
// Complexity: O(min(k, n-k)).
func Binomial[T constraints.Integer](n, k T) (T, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("Binomial(%d, %d): %w", int64(n), int64(k), ErrNegativeArgument)
	}
	if uint64(n) > MaxN {
		return 0, fmt.Errorf("Binomial(%d, %d): %w", int64(n), int64(k), ErrOverflow)
	}
	if k > n {
		return 0, nil
	}
	if k == 0 || k == n {
		return 1, nil
	}

	m := k
	if n-k < m {
		m = n - k
	}

	c := float64(n)
	for i := T(2); i <= m; i++ {
		c *= float64(n+1-i) / float64(i)
	}

	r := int64(c + 0.5)
	if int64(T(r)) != r {
		return 0, fmt.Errorf("Binomial(%d, %d): result %d does not fit %T: %w", int64(n), int64(k), r, n, ErrOverflow)
	}

	return T(r), nil
}

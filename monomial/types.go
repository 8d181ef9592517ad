// SPDX-License-Identifier: MIT

package monomial

import "github.com/katalvlaran/mnl/combin"

// Index identifies a monomial under the graded ordering.
// Valid monomials are ≥ 0; Zero (-1) is the sentinel.
type Index int

const (
	// Zero is the sentinel index: the zero polynomial, or "no such monomial".
	Zero Index = -1

	// One is the index of the constant monomial 1.
	One Index = 0
)

// MaxDim is the largest supported number of variables. The order estimate
// needs d!, which the factorial table provides up to combin.MaxN.
const MaxDim = combin.MaxN

// SPDX-License-Identifier: MIT
// Package monomial: sentinel error set.
// Every public operation returns one of these (possibly wrapped with the
// operation name via %w); callers match with errors.Is. Runtime code never
// panics on caller input.

package monomial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when d is outside [1, MaxDim].
	ErrInvalidDimension = errors.New("monomial: invalid dimension")

	// ErrInvalidIndex is returned for indices below the Zero sentinel.
	ErrInvalidIndex = errors.New("monomial: invalid index")

	// ErrSentinelIndex is returned when a query that needs a real monomial
	// (Order, Exponent, Exponents) receives the Zero sentinel.
	ErrSentinelIndex = errors.New("monomial: sentinel index has no order")

	// ErrIndexOverflow is returned for indices at or beyond Scheme.Len().
	ErrIndexOverflow = errors.New("monomial: index beyond representable range")

	// ErrOrderOverflow is returned when an order, or the order of a result,
	// exceeds Scheme.MaxOrder().
	ErrOrderOverflow = errors.New("monomial: order beyond representable range")

	// ErrVariableOutOfRange is returned when a variable is outside [0, d),
	// or when an exponent vector does not have exactly d entries.
	ErrVariableOutOfRange = errors.New("monomial: variable out of range")

	// ErrInvalidExponent is returned for negative exponents passed to IndexOf.
	ErrInvalidExponent = errors.New("monomial: negative exponent")
)

// monomialErrorf prefixes err with the operation tag.
func monomialErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

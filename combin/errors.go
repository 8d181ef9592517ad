// SPDX-License-Identifier: MIT
// Package combin: sentinel errors. Callers branch with errors.Is.

package combin

import "errors"

var (
	// ErrNegativeArgument is returned when n or k is negative.
	ErrNegativeArgument = errors.New("combin: negative argument")

	// ErrOverflow is returned when n exceeds MaxN, the largest argument for
	// which the factorial table and the float accumulator stay exact.
	ErrOverflow = errors.New("combin: argument exceeds exact range")
)

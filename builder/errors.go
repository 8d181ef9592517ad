// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w wrapping.

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrConstructFailed indicates an unusable constructor list (e.g. a nil entry).
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrInvalidOrder indicates a negative order or power.
	ErrInvalidOrder = errors.New("builder: invalid order")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of [0,1]")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrLengthMismatch indicates a coefficient list whose length is not d.
	ErrLengthMismatch = errors.New("builder: coefficient count must equal dimension")
)

// builderErrorf attaches the method tag to err.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// SPDX-License-Identifier: MIT
// Package: mnl/notation
//
// options.go - functional options for Monomial and Polynomial.

package notation

import "fmt"

// DefaultPrecision prints the shortest representation that round-trips.
const DefaultPrecision = -1

// Option customizes rendering.
type Option func(*Options)

// Options is the resolved rendering configuration.
type Options struct {
	names     []string // nil → default names
	precision int      // strconv precision for coefficients
}

// WithVariables names the variables x0 … x{len-1}. Variables beyond the
// list keep their default names. Panics on an empty name.
func WithVariables(names ...string) Option {
	for i, n := range names {
		if n == "" {
			panic(fmt.Sprintf("notation: WithVariables: empty name at %d", i))
		}
	}
	cp := append([]string(nil), names...)
	return func(o *Options) {
		o.names = cp
	}
}

// WithPrecision sets the number of significant digits for coefficients.
// Panics if n < -1.
func WithPrecision(n int) Option {
	if n < -1 {
		panic(fmt.Sprintf("notation: WithPrecision: n must be ≥ -1, got %d", n))
	}
	return func(o *Options) {
		o.precision = n
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SPDX-License-Identifier: MIT
// Package: mnl/polynomial
//
// options.go - functional options for the multiplicative operations.
//
// Contract:
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Operations never panic; they consume ...Option via gatherOptions.
//   - Defaults below are the single source of truth.

package polynomial

// DefaultWorkers runs the Cauchy product on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "polynomial: WithWorkers: n must be ≥ 1"

// Option mutates Options. Safe to apply repeatedly; last one wins.
type Option func(*Options)

// Options is the resolved configuration of a Multiply/Pow call.
type Options struct {
	workers int // ≥ 1; DefaultWorkers
}

// WithWorkers splits the term-pair space of a product across n goroutines.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.workers = n
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

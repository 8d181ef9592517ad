// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithKey or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/blake2b"
)

// Option customizes a Build call by mutating builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new math/rand RNG with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithKey creates an RNG whose stream is the blake2b XOF of key. The same
// key reproduces the same stream on every platform and Go release.
// Panics if key is longer than 64 bytes.
func WithKey(key []byte) Option {
	if len(key) > blake2b.Size {
		panic(fmt.Sprintf("builder: WithKey: key length %d > %d", len(key), blake2b.Size))
	}
	k := append([]byte(nil), key...)
	return func(c *builderConfig) {
		// Fresh stream per Build; the length check above rules out errors.
		src, err := newKeyedSource(k)
		if err != nil {
			panic(fmt.Sprintf("builder: WithKey: %v", err))
		}
		c.rng = rand.New(src)
	}
}

// WithCoefficientFn overrides the per-term coefficient generator.
// Panics on nil.
func WithCoefficientFn(fn CoefficientFn) Option {
	if fn == nil {
		panic("builder: WithCoefficientFn(nil)")
	}
	return func(c *builderConfig) {
		c.coeffFn = fn
	}
}

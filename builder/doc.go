// Package builder provides deterministic polynomial fixtures built from
// "functional-options"-style building blocks. It is used by tests,
// benchmarks and examples to assemble polynomials without hand-writing
// index maps.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(d, opts, cons...): resolves options, runs constructors in order
//     into one accumulator, and returns a validated *polynomial.Polynomial.
//   - Constructors:
//     – Generator(v):        the single variable x_v.
//     – LinearForm(c...):    Σ c_v x_v.
//     – PowerSum(n):         (x0 + … + x{d-1})^n.
//     – Dense(k):            every monomial of order ≤ k.
//     – RandomSparse(k, p):  each monomial of order ≤ k kept with probability p.
//   - Randomness (explicit, never global):
//     – WithSeed:  math/rand source seeded with an int64.
//     – WithKey:   keyed blake2b XOF stream, reproducible from the key bytes.
//     – WithRand:  caller-owned *rand.Rand.
//   - Coefficient distributions (CoefficientFn):
//     – DefaultCoefficientFn, ConstantCoefficientFn, UniformCoefficientFn.
//
// Guarantees:
//
//   - Same d, options, seed/key and constructor order ⇒ identical polynomial.
//   - Option constructors panic on nonsensical values; constructors return
//     sentinel errors and never panic.
package builder

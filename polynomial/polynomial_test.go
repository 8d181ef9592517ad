package polynomial_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/mnl/monomial"
	"github.com/katalvlaran/mnl/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type terms = map[monomial.Index]float64

// approx compares term maps within a tolerance well above rounding noise.
var approx = cmpopts.EquateApprox(0, 1e-9)

// mustNew builds a polynomial or fails the test.
func mustNew(t testing.TB, d int, tm terms) *polynomial.Polynomial {
	t.Helper()
	p, err := polynomial.New(d, tm)
	require.NoError(t, err)
	return p
}

// requireTerms asserts the exact term set of p within approx.
func requireTerms(t *testing.T, want terms, p *polynomial.Polynomial) {
	t.Helper()
	if diff := cmp.Diff(want, p.Terms(), approx); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

// TestNewValidation rejects bad dimensions, keys and coefficients.
func TestNewValidation(t *testing.T) {
	_, err := polynomial.New(0, nil)
	require.ErrorIs(t, err, monomial.ErrInvalidDimension)

	_, err = polynomial.New(2, terms{monomial.Zero: 1})
	require.ErrorIs(t, err, polynomial.ErrInvalidTerm)
	require.ErrorIs(t, err, monomial.ErrSentinelIndex)

	_, err = polynomial.New(2, terms{-4: 1})
	require.ErrorIs(t, err, polynomial.ErrInvalidTerm)

	_, err = polynomial.New(2, terms{190: 1})
	require.ErrorIs(t, err, monomial.ErrIndexOverflow)

	_, err = polynomial.New(2, terms{1: math.NaN()})
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.New(2, terms{1: math.Inf(-1)})
	require.ErrorIs(t, err, polynomial.ErrNaNInf)
}

// TestNewPrunesAndCopies drops tiny coefficients and does not alias input.
func TestNewPrunesAndCopies(t *testing.T) {
	in := terms{0: 2, 1: 1e-12, 2: -3}
	p := mustNew(t, 2, in)
	requireTerms(t, terms{0: 2, 2: -3}, p)

	in[0] = 99
	assert.Equal(t, 2.0, p.Coefficient(0))
	assert.Equal(t, 0.0, p.Coefficient(1))
}

// TestOrder covers the graded maximum and the empty polynomial.
func TestOrder(t *testing.T) {
	z, err := polynomial.Zero(3)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, -1, z.Order())

	c, err := polynomial.Constant(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Order())

	p := mustNew(t, 2, terms{1: 1, 7: 2, 3: 5})
	assert.Equal(t, 3, p.Order())
}

// TestAddSub checks accumulation and cancellation pruning.
func TestAddSub(t *testing.T) {
	p := mustNew(t, 2, terms{0: 1, 1: 2})
	q := mustNew(t, 2, terms{1: -2, 4: 0.5})

	sum, err := polynomial.Add(p, q)
	require.NoError(t, err)
	requireTerms(t, terms{0: 1, 4: 0.5}, sum)

	// Operands are untouched.
	requireTerms(t, terms{0: 1, 1: 2}, p)

	diff, err := polynomial.Sub(p, p)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	rev, err := polynomial.Add(q, p)
	require.NoError(t, err)
	assert.True(t, polynomial.Equal(sum, rev, polynomial.Tolerance))
}

// TestAddNearZeroResidue prunes sums that land under the tolerance.
func TestAddNearZeroResidue(t *testing.T) {
	p := mustNew(t, 2, terms{5: 1})
	q := mustNew(t, 2, terms{5: -1 + 1e-11})

	sum, err := polynomial.Add(p, q)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Len())
}

// TestScale checks scalar multiplication, including 0 and non-finite factors.
func TestScale(t *testing.T) {
	p := mustNew(t, 3, terms{1: 1, 2: -2})

	s, err := polynomial.Scale(p, 3)
	require.NoError(t, err)
	requireTerms(t, terms{1: 3, 2: -6}, s)

	s, err = polynomial.Scale(p, 0)
	require.NoError(t, err)
	assert.True(t, s.IsZero())

	_, err = polynomial.Scale(p, math.NaN())
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.Scale(nil, 2)
	require.ErrorIs(t, err, polynomial.ErrNilPolynomial)
}

// TestOperandValidation covers nil and dimension mismatch for binary ops.
func TestOperandValidation(t *testing.T) {
	p := mustNew(t, 2, terms{1: 1})
	q := mustNew(t, 3, terms{1: 1})

	_, err := polynomial.Add(p, q)
	require.ErrorIs(t, err, polynomial.ErrDimensionMismatch)

	_, err = polynomial.Sub(nil, p)
	require.ErrorIs(t, err, polynomial.ErrNilPolynomial)

	_, err = polynomial.Multiply(p, q)
	require.ErrorIs(t, err, polynomial.ErrDimensionMismatch)

	_, err = polynomial.Multiply(p, nil)
	require.ErrorIs(t, err, polynomial.ErrNilPolynomial)

	_, err = polynomial.Pow(nil, 2)
	require.ErrorIs(t, err, polynomial.ErrNilPolynomial)

	_, err = polynomial.Pow(p, -1)
	require.ErrorIs(t, err, polynomial.ErrNegativePower)
}

// TestMultiplyBinomialSquare expands (x+y)².
func TestMultiplyBinomialSquare(t *testing.T) {
	p := mustNew(t, 2, terms{1: 1, 2: 1})

	sq, err := polynomial.Multiply(p, p)
	require.NoError(t, err)
	requireTerms(t, terms{3: 1, 4: 2, 5: 1}, sq)
	assert.Equal(t, 2, sq.Order())
}

// TestMultiplyTrinomialCube expands (x+y+z)³.
func TestMultiplyTrinomialCube(t *testing.T) {
	p := mustNew(t, 3, terms{1: 1, 2: 1, 3: 1})

	sq, err := polynomial.Multiply(p, p)
	require.NoError(t, err)
	cube, err := polynomial.Multiply(sq, p)
	require.NoError(t, err)

	want := terms{10: 1, 11: 3, 12: 3, 13: 3, 14: 6, 15: 3, 16: 1, 17: 3, 18: 3, 19: 1}
	requireTerms(t, want, cube)
	assert.Equal(t, 3, cube.Order())

	viaPow, err := polynomial.Pow(p, 3)
	require.NoError(t, err)
	requireTerms(t, want, viaPow)
}

// TestMultiplyZeroAndOne checks the absorbing and identity polynomials.
func TestMultiplyZeroAndOne(t *testing.T) {
	p := mustNew(t, 2, terms{0: 2, 4: -1, 9: 0.25})

	z, err := polynomial.Zero(2)
	require.NoError(t, err)
	prod, err := polynomial.Multiply(p, z)
	require.NoError(t, err)
	assert.True(t, prod.IsZero())

	one, err := polynomial.Constant(2, 1)
	require.NoError(t, err)
	prod, err = polynomial.Multiply(one, p)
	require.NoError(t, err)
	requireTerms(t, p.Terms(), prod)

	pow0, err := polynomial.Pow(p, 0)
	require.NoError(t, err)
	requireTerms(t, terms{0: 1}, pow0)
}

// TestMultiplyCancellation prunes terms that cancel: (x+y)(x-y) = x² - y².
func TestMultiplyCancellation(t *testing.T) {
	a := mustNew(t, 2, terms{1: 1, 2: 1})
	b := mustNew(t, 2, terms{1: 1, 2: -1})

	prod, err := polynomial.Multiply(a, b)
	require.NoError(t, err)
	requireTerms(t, terms{3: 1, 5: -1}, prod)
}

// TestMultiplyNearZeroResidue drops pair products below Tolerance.
func TestMultiplyNearZeroResidue(t *testing.T) {
	a := mustNew(t, 2, terms{1: 1e-6, 2: 1})
	b := mustNew(t, 2, terms{1: 1e-5})

	prod, err := polynomial.Multiply(a, b)
	require.NoError(t, err)
	requireTerms(t, terms{4: 1e-5}, prod)
	assert.Zero(t, prod.Coefficient(3))

	par, err := polynomial.Multiply(a, b, polynomial.WithWorkers(2))
	require.NoError(t, err)
	requireTerms(t, terms{4: 1e-5}, par)
}

// TestFloatOverflowRejected keeps every stored coefficient finite.
func TestFloatOverflowRejected(t *testing.T) {
	huge := mustNew(t, 2, terms{1: 1e308})
	pair := mustNew(t, 2, terms{1: 1e308, 2: 1e308})

	_, err := polynomial.Scale(huge, 10)
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.Add(huge, huge)
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	neg, err := polynomial.Scale(huge, -1)
	require.NoError(t, err)
	_, err = polynomial.Sub(huge, neg)
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.Multiply(huge, huge)
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.Multiply(pair, pair, polynomial.WithWorkers(2))
	require.ErrorIs(t, err, polynomial.ErrNaNInf)

	_, err = polynomial.Pow(huge, 2)
	require.ErrorIs(t, err, polynomial.ErrNaNInf)
}

// TestMultiplyOrderOverflow rejects products beyond the scheme range.
func TestMultiplyOrderOverflow(t *testing.T) {
	s, err := monomial.For(2)
	require.NoError(t, err)
	lo, _, err := s.Block(10)
	require.NoError(t, err)

	p := mustNew(t, 2, terms{lo: 1})
	_, err = polynomial.Multiply(p, p)
	require.ErrorIs(t, err, monomial.ErrOrderOverflow)

	_, err = polynomial.Pow(p, 2, polynomial.WithWorkers(2))
	require.ErrorIs(t, err, monomial.ErrOrderOverflow)
}

// TestMultiplyParallelMatchesSequential compares worker counts on one product.
func TestMultiplyParallelMatchesSequential(t *testing.T) {
	p := mustNew(t, 3, terms{0: 1, 1: -2, 2: 0.5, 3: 3, 5: 1.5, 9: -1, 12: 2})
	q := mustNew(t, 3, terms{0: 4, 2: 1, 4: -0.75, 7: 2, 11: 1})

	seq, err := polynomial.Multiply(p, q)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 7, 64} {
		par, err := polynomial.Multiply(p, q, polynomial.WithWorkers(w))
		require.NoError(t, err)
		requireTerms(t, seq.Terms(), par)
	}
}

// TestWithWorkersPanics rejects nonsensical worker counts at option build time.
func TestWithWorkersPanics(t *testing.T) {
	require.Panics(t, func() { polynomial.WithWorkers(0) })
	require.NotPanics(t, func() { polynomial.WithWorkers(1) })
}

// TestEnumeration checks Indices order, Range early exit and Terms isolation.
func TestEnumeration(t *testing.T) {
	p := mustNew(t, 2, terms{9: 1, 0: 2, 4: 3})

	assert.Equal(t, []monomial.Index{0, 4, 9}, p.Indices())

	seen := 0
	p.Range(func(monomial.Index, float64) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)

	tm := p.Terms()
	tm[0] = -1
	assert.Equal(t, 2.0, p.Coefficient(0))

	cl := p.Clone()
	assert.True(t, polynomial.Equal(p, cl, 0))
}

// TestEqual covers tolerance and shape differences.
func TestEqual(t *testing.T) {
	p := mustNew(t, 2, terms{1: 1})
	q := mustNew(t, 2, terms{1: 1 + 1e-12})
	r := mustNew(t, 3, terms{1: 1})

	assert.True(t, polynomial.Equal(p, q, 1e-9))
	assert.False(t, polynomial.Equal(p, q, 0))
	assert.False(t, polynomial.Equal(p, r, 1))
	assert.False(t, polynomial.Equal(p, nil, 1))
	assert.True(t, polynomial.Equal(nil, nil, 0))
}

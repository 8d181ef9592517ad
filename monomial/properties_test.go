package monomial_test

import (
	"testing"

	"github.com/katalvlaran/mnl/monomial"
	"github.com/stretchr/testify/suite"
)

// maxTestOrder bounds the exhaustive sweeps (orders 0..4).
const maxTestOrder = 5

// countMonomials counts exponent vectors of length d with sum ≤ k by
// direct enumeration, independent of any binomial arithmetic.
func countMonomials(d, k int) int {
	if k < 0 {
		return 0
	}
	if d == 1 {
		return k + 1
	}
	n := 0
	for e := 0; e <= k; e++ {
		n += countMonomials(d-1, k-e)
	}
	return n
}

// SchemePropertySuite checks the algebraic identities of the index
// scheme exhaustively over all monomials of small order.
type SchemePropertySuite struct {
	suite.Suite
	schemes []*monomial.Scheme
}

func (s *SchemePropertySuite) SetupSuite() {
	for d := 1; d <= 6; d++ {
		sc, err := monomial.For(d)
		s.Require().NoError(err)
		s.schemes = append(s.schemes, sc)
	}
}

// eachMonomial runs fn for every index of order < maxTestOrder.
func (s *SchemePropertySuite) eachMonomial(fn func(sc *monomial.Scheme, alpha monomial.Index, k int)) {
	for _, sc := range s.schemes {
		for k := 0; k < maxTestOrder; k++ {
			lo, hi, err := sc.Block(k)
			s.Require().NoError(err)
			for alpha := lo; alpha < hi; alpha++ {
				fn(sc, alpha, k)
			}
		}
	}
}

func (s *SchemePropertySuite) TestSpaceDimCountsMonomials() {
	for _, sc := range s.schemes {
		for k := -1; k < maxTestOrder; k++ {
			n, err := sc.SpaceDim(k)
			s.Require().NoError(err)
			s.Equal(countMonomials(sc.Dim(), k), int(n), "d=%d k=%d", sc.Dim(), k)
		}
	}
}

func (s *SchemePropertySuite) TestOrderMatchesBlock() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, k int) {
		got, err := sc.Order(alpha)
		s.Require().NoError(err)
		s.Equal(k, got, "d=%d alpha=%d", sc.Dim(), alpha)
	})
}

func (s *SchemePropertySuite) TestExponentsSumToOrder() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, k int) {
		sum := 0
		for v := 0; v < sc.Dim(); v++ {
			e, err := sc.Exponent(alpha, v)
			s.Require().NoError(err)
			s.GreaterOrEqual(e, 0)
			sum += e
		}
		s.Equal(k, sum, "d=%d alpha=%d", sc.Dim(), alpha)

		exps, err := sc.Exponents(alpha)
		s.Require().NoError(err)
		for v, e := range exps {
			single, err := sc.Exponent(alpha, v)
			s.Require().NoError(err)
			s.Equal(single, e)
		}
	})
}

func (s *SchemePropertySuite) TestProductIdentityAndSentinel() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		p, err := sc.Product(monomial.One, alpha)
		s.Require().NoError(err)
		s.Equal(alpha, p)

		p, err = sc.Product(alpha, monomial.One)
		s.Require().NoError(err)
		s.Equal(alpha, p)

		p, err = sc.Product(monomial.Zero, alpha)
		s.Require().NoError(err)
		s.Equal(monomial.Zero, p)

		p, err = sc.Product(alpha, monomial.Zero)
		s.Require().NoError(err)
		s.Equal(monomial.Zero, p)
	})
}

func (s *SchemePropertySuite) TestProductAddsExponents() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		ea, err := sc.Exponents(alpha)
		s.Require().NoError(err)
		for beta := monomial.Index(0); beta < 10; beta++ {
			eb, err := sc.Exponents(beta)
			s.Require().NoError(err)

			ab, err := sc.Product(alpha, beta)
			s.Require().NoError(err)
			ba, err := sc.Product(beta, alpha)
			s.Require().NoError(err)
			s.Equal(ab, ba, "commutativity d=%d", sc.Dim())

			got, err := sc.Exponents(ab)
			s.Require().NoError(err)
			for v := range got {
				s.Equal(ea[v]+eb[v], got[v], "d=%d alpha=%d beta=%d v=%d", sc.Dim(), alpha, beta, v)
			}
		}
	})
}

func (s *SchemePropertySuite) TestReconstructionFromGenerators() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		acc := monomial.One
		for v := 0; v < sc.Dim(); v++ {
			e, err := sc.Exponent(alpha, v)
			s.Require().NoError(err)
			g, err := sc.Generator(v)
			s.Require().NoError(err)
			for i := 0; i < e; i++ {
				acc, err = sc.Product(acc, g)
				s.Require().NoError(err)
			}
		}
		s.Equal(alpha, acc, "d=%d", sc.Dim())
	})
}

func (s *SchemePropertySuite) TestDerivativeUndoesAntiderivative() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		for v := 0; v < sc.Dim(); v++ {
			ad, err := sc.Antiderivative(alpha, v)
			s.Require().NoError(err)
			back, err := sc.Derivative(ad, v)
			s.Require().NoError(err)
			s.Equal(alpha, back, "d=%d alpha=%d v=%d", sc.Dim(), alpha, v)
		}
	})
}

func (s *SchemePropertySuite) TestAntiderivativeIsProductWithGenerator() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		for v := 0; v < sc.Dim(); v++ {
			ad, err := sc.Antiderivative(alpha, v)
			s.Require().NoError(err)
			g, err := sc.Generator(v)
			s.Require().NoError(err)
			p, err := sc.Product(alpha, g)
			s.Require().NoError(err)
			s.Equal(p, ad, "d=%d alpha=%d v=%d", sc.Dim(), alpha, v)
		}
	})
}

func (s *SchemePropertySuite) TestDerivativeLowersOneExponent() {
	s.eachMonomial(func(sc *monomial.Scheme, alpha monomial.Index, _ int) {
		exps, err := sc.Exponents(alpha)
		s.Require().NoError(err)
		for v := 0; v < sc.Dim(); v++ {
			d, err := sc.Derivative(alpha, v)
			s.Require().NoError(err)
			if exps[v] == 0 {
				s.Equal(monomial.Zero, d, "d=%d alpha=%d v=%d", sc.Dim(), alpha, v)
				continue
			}
			got, err := sc.Exponents(d)
			s.Require().NoError(err)
			for w := range got {
				want := exps[w]
				if w == v {
					want--
				}
				s.Equal(want, got[w])
			}
		}
	})
}

func TestSchemePropertySuite(t *testing.T) {
	suite.Run(t, new(SchemePropertySuite))
}

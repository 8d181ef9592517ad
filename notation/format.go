// SPDX-License-Identifier: MIT
// Package: mnl/notation
//
// format.go - Monomial and Polynomial renderers.

package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/mnl/monomial"
	"github.com/katalvlaran/mnl/polynomial"
)

var shortNames = [...]string{"x", "y", "z"}

// Monomial renders alpha in s. The sentinel renders as "0", index 0 as "1".
// An index the scheme rejects renders as "%!(BADINDEX n)"; a nil s as "<nil>".
func Monomial(s *monomial.Scheme, alpha monomial.Index, opts ...Option) string {
	if s == nil {
		return "<nil>"
	}
	o := gatherOptions(opts...)
	return monomialString(s, alpha, variableNames(s.Dim(), o.names))
}

// Polynomial renders p as a sum of terms in ascending index order.
// The zero polynomial renders as "0"; a nil p as "<nil>".
func Polynomial(p *polynomial.Polynomial, opts ...Option) string {
	if p == nil {
		return "<nil>"
	}
	if p.IsZero() {
		return "0"
	}
	o := gatherOptions(opts...)
	names := variableNames(p.Dim(), o.names)

	var b strings.Builder
	for i, alpha := range p.Indices() {
		c := p.Coefficient(alpha)
		neg := math.Signbit(c)
		switch {
		case i == 0 && neg:
			b.WriteByte('-')
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		abs := math.Abs(c)
		if alpha == monomial.One {
			b.WriteString(strconv.FormatFloat(abs, 'g', o.precision, 64))
			continue
		}
		if abs != 1 {
			b.WriteString(strconv.FormatFloat(abs, 'g', o.precision, 64))
		}
		b.WriteString(monomialString(p.Scheme(), alpha, names))
	}

	return b.String()
}

func monomialString(s *monomial.Scheme, alpha monomial.Index, names []string) string {
	switch alpha {
	case monomial.Zero:
		return "0"
	case monomial.One:
		return "1"
	}
	exps, err := s.Exponents(alpha)
	if err != nil {
		return fmt.Sprintf("%%!(BADINDEX %d)", alpha)
	}

	sep := ""
	for _, n := range names {
		if utf8.RuneCountInString(n) > 1 {
			sep = "*"
			break
		}
	}

	factors := make([]string, 0, len(exps))
	for v, e := range exps {
		switch {
		case e == 0:
		case e == 1:
			factors = append(factors, names[v])
		default:
			factors = append(factors, names[v]+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(factors, sep)
}

// variableNames returns d names with custom overriding the defaults.
func variableNames(d int, custom []string) []string {
	names := make([]string, d)
	for v := range names {
		switch {
		case v < len(custom):
			names[v] = custom[v]
		case d <= len(shortNames):
			names[v] = shortNames[v]
		default:
			names[v] = "x" + strconv.Itoa(v)
		}
	}

	return names
}

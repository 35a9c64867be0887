// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package series implements the series-expansion facility spec.md §6 treats
// as an external collaborator of the limit engine: given an expression in a
// dummy variable w, produce its (Laurent-like, rational exponent) power
// series around w = 0, and report a pole when the expansion cannot proceed.
//
// The representation and the Add/Mul combinators are grounded on the
// teacher's generic polynomial abstraction in pkg/util/poly (a Polynomial is
// a sum of Terms, each a coefficient times a product of variables); here a
// Term is simpler — one variable (w) raised to a rational power — since a
// Laurent series in a single variable is exactly that shape.
package series

import (
	"errors"
	"math/big"

	"github.com/fagan2888/gruntz/pkg/expr"
)

// ErrPole is raised when a series expansion cannot proceed: a genuine pole,
// a logarithmic singularity this engine's fragment does not model, or an
// expansion that fails to converge within the bounded working order.
var ErrPole = errors.New("series: pole or unsupported singularity")

// Term is a single monomial coeff*w^Exp of a series. Coeff never contains w.
type Term struct {
	Exp   big.Rat
	Coeff expr.Expr
}

// Series is a truncated Laurent series, terms sorted ascending by exponent,
// with all-zero coefficients already dropped.
type Series struct {
	Terms []Term
}

// Leading returns the lowest-exponent term (c0, e0) of the series, and false
// if the series is identically zero within its working order.
func (s Series) Leading() (expr.Expr, *big.Rat, bool) {
	if len(s.Terms) == 0 {
		return expr.Expr{}, nil, false
	}
	e := new(big.Rat).Set(&s.Terms[0].Exp)
	return s.Terms[0].Coeff, e, true
}

func isZeroCoeff(e expr.Expr) bool {
	r, ok := e.AsRational()
	return ok && r.IsZero()
}

func single(exp *big.Rat, coeff expr.Expr) Series {
	if isZeroCoeff(coeff) {
		return Series{}
	}
	var e big.Rat
	e.Set(exp)
	return Series{[]Term{{e, coeff}}}
}

// Add merges two series, combining equal-exponent terms and dropping any
// whose combined coefficient cancels to zero.
func Add(a, b Series) Series {
	var out []Term
	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		c := a.Terms[i].Exp.Cmp(&b.Terms[j].Exp)
		switch {
		case c < 0:
			out = append(out, a.Terms[i])
			i++
		case c > 0:
			out = append(out, b.Terms[j])
			j++
		default:
			sum := expr.Sum(a.Terms[i].Coeff, b.Terms[j].Coeff)
			if !isZeroCoeff(sum) {
				out = append(out, Term{a.Terms[i].Exp, sum})
			}
			i++
			j++
		}
	}
	out = append(out, a.Terms[i:]...)
	out = append(out, b.Terms[j:]...)
	return Series{out}
}

// Mul computes the Cauchy product of a and b, dropping any term whose
// exponent exceeds cutoff (nil means no cutoff).
func Mul(a, b Series, cutoff *big.Rat) Series {
	acc := Series{}
	for _, ta := range a.Terms {
		for _, tb := range b.Terms {
			var e big.Rat
			e.Add(&ta.Exp, &tb.Exp)
			if cutoff != nil && e.Cmp(cutoff) > 0 {
				continue
			}
			coeff := expr.Product(ta.Coeff, tb.Coeff)
			acc = Add(acc, single(&e, coeff))
		}
	}
	return acc
}

func negate(s Series) Series {
	out := make([]Term, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = Term{t.Exp, expr.Product(expr.NewConst(-1, 1), t.Coeff)}
	}
	return Series{out}
}

func scaleRat(s Series, factor *big.Rat) Series {
	var out []Term
	for _, t := range s.Terms {
		c := expr.Product(expr.NewConstBig(factor), t.Coeff)
		if !isZeroCoeff(c) {
			out = append(out, Term{t.Exp, c})
		}
	}
	return Series{out}
}

func scaleExpr(s Series, factor expr.Expr) Series {
	var out []Term
	for _, t := range s.Terms {
		c := expr.Product(factor, t.Coeff)
		if !isZeroCoeff(c) {
			out = append(out, Term{t.Exp, c})
		}
	}
	return Series{out}
}

func negOf(r big.Rat) *big.Rat {
	var out big.Rat
	out.Neg(&r)
	return &out
}

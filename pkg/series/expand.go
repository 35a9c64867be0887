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
package series

import (
	"fmt"
	"math/big"

	"github.com/fagan2888/gruntz/pkg/expr"
)

// DefaultOrder is the highest power of w this package keeps: terms with a
// larger exponent are dropped, whatever the exponent of the leading term.
// It is generous relative to the
// cancellation depth the supported fragment's leadterm extraction needs in
// practice (spec.md §4.5/§4.6 never require more than a handful of terms to
// resolve a comparability class), and mirrors the bounded-recursion
// discipline pkg/limit applies everywhere else in this engine.
const DefaultOrder = 12

// convergenceBound caps the internal Taylor summation loops (exp, ln, series
// inversion) in case a pathological input never shrinks below the cutoff.
const convergenceBound = 64

// Expand computes the power series of e around w = 0, keeping terms up to
// exponent order (inclusive). Coefficients never themselves mention w.
func Expand(e expr.Expr, w *expr.Symbol, order int) (Series, error) {
	cutoff := big.NewRat(int64(order), 1)
	return expandTerm(e.Term, w, cutoff)
}

func expandTerm(t expr.Term, w *expr.Symbol, cutoff *big.Rat) (Series, error) {
	switch n := t.(type) {
	case expr.Rational:
		return single(big.NewRat(0, 1), expr.Expr{Term: n}), nil
	case *expr.Symbol:
		if n == w {
			return single(big.NewRat(1, 1), expr.One), nil
		}
		return single(big.NewRat(0, 1), expr.Expr{Term: n}), nil
	case expr.Inf:
		return Series{}, fmt.Errorf("%w: infinity has no series expansion", ErrPole)
	case *expr.Add:
		acc := Series{}
		for _, a := range n.Args {
			s, err := expandTerm(a, w, cutoff)
			if err != nil {
				return Series{}, err
			}
			acc = Add(acc, s)
		}
		return acc, nil
	case *expr.Mul:
		acc := single(big.NewRat(0, 1), expr.One)
		for _, a := range n.Args {
			s, err := expandTerm(a, w, cutoff)
			if err != nil {
				return Series{}, err
			}
			acc = Mul(acc, s, cutoff)
		}
		return acc, nil
	case *expr.Power:
		return expandPower(n, w, cutoff)
	case *expr.Exponential:
		return expandExp(n, w, cutoff)
	case *expr.Logarithm:
		return expandLn(n, w, cutoff)
	default:
		return Series{}, fmt.Errorf("%w: cannot expand %s in series", ErrPole, t.String())
	}
}

func expandPower(n *expr.Power, w *expr.Symbol, cutoff *big.Rat) (Series, error) {
	base, err := expandTerm(n.Base, w, cutoff)
	if err != nil {
		return Series{}, err
	}
	if len(base.Terms) == 0 {
		if n.Exponent.Sign() > 0 {
			return Series{}, nil
		}
		return Series{}, fmt.Errorf("%w: zero raised to a non-positive power", ErrPole)
	}
	if len(base.Terms) == 1 {
		// A pure monomial c*w^k raised to any rational power is exact.
		t := base.Terms[0]
		var newExp big.Rat
		newExp.Mul(&t.Exp, n.Exponent.Big())
		coeff := expr.Pow(t.Coeff, n.Exponent)
		return single(&newExp, coeff), nil
	}
	if !n.Exponent.IsInteger() {
		return Series{}, fmt.Errorf("%w: fractional power of a non-monomial series is unsupported", ErrPole)
	}
	k := n.Exponent.Big().Num().Int64()
	if k >= 0 {
		acc := single(big.NewRat(0, 1), expr.One)
		for i := int64(0); i < k; i++ {
			acc = Mul(acc, base, cutoff)
		}
		return acc, nil
	}
	inv, err := invert(base, cutoff)
	if err != nil {
		return Series{}, err
	}
	acc := single(big.NewRat(0, 1), expr.One)
	for i := int64(0); i < -k; i++ {
		acc = Mul(acc, inv, cutoff)
	}
	return acc, nil
}

// invert computes the reciprocal series of s, which must have at least one
// non-zero term. It factors out the leading monomial a0*w^e0, so that the
// remainder is 1 + T with T of strictly positive order, then sums the
// geometric series (1+T)^-1 = sum (-T)^k.
func invert(s Series, cutoff *big.Rat) (Series, error) {
	if len(s.Terms) == 0 {
		return Series{}, fmt.Errorf("%w: division by a series identically zero", ErrPole)
	}
	lead := s.Terms[0]
	invA0 := expr.Recip(lead.Coeff)
	var tTerms []Term
	for _, t := range s.Terms[1:] {
		var e big.Rat
		e.Sub(&t.Exp, &lead.Exp)
		tTerms = append(tTerms, Term{e, expr.Product(t.Coeff, invA0)})
	}
	T := Series{tTerms}
	negT := negate(T)
	sum := single(big.NewRat(0, 1), expr.One)
	term := single(big.NewRat(0, 1), expr.One)
	for k := 1; ; k++ {
		term = Mul(term, negT, cutoff)
		if len(term.Terms) == 0 {
			break
		}
		if term.Terms[0].Exp.Cmp(cutoff) > 0 {
			break
		}
		sum = Add(sum, term)
		if k > convergenceBound {
			return Series{}, fmt.Errorf("%w: series inversion did not converge within the working order", ErrPole)
		}
	}
	scale := single(negOf(lead.Exp), invA0)
	return Mul(scale, sum, cutoff), nil
}

func expandExp(n *expr.Exponential, w *expr.Symbol, cutoff *big.Rat) (Series, error) {
	arg, err := expandTerm(n.Arg, w, cutoff)
	if err != nil {
		return Series{}, err
	}
	a0 := expr.Zero
	var rTerms []Term
	for _, t := range arg.Terms {
		switch t.Exp.Sign() {
		case 0:
			a0 = t.Coeff
		case -1:
			return Series{}, fmt.Errorf("%w: exp argument diverges as w -> 0", ErrPole)
		default:
			rTerms = append(rTerms, t)
		}
	}
	R := Series{rTerms}
	sum := single(big.NewRat(0, 1), expr.One)
	term := single(big.NewRat(0, 1), expr.One)
	fact := int64(1)
	for k := int64(1); ; k++ {
		term = Mul(term, R, cutoff)
		if len(term.Terms) == 0 {
			break
		}
		if term.Terms[0].Exp.Cmp(cutoff) > 0 {
			break
		}
		fact *= k
		sum = Add(sum, scaleRat(term, big.NewRat(1, fact)))
		if k > convergenceBound {
			return Series{}, fmt.Errorf("%w: exp series did not converge within the working order", ErrPole)
		}
	}
	return scaleExpr(sum, expr.Exp(a0)), nil
}

func expandLn(n *expr.Logarithm, w *expr.Symbol, cutoff *big.Rat) (Series, error) {
	arg, err := expandTerm(n.Arg, w, cutoff)
	if err != nil {
		return Series{}, err
	}
	if len(arg.Terms) == 0 {
		return Series{}, fmt.Errorf("%w: ln of a series identically zero", ErrPole)
	}
	lead := arg.Terms[0]
	if lead.Exp.Sign() != 0 {
		return Series{}, fmt.Errorf("%w: ln introduces a w^%s logarithmic singularity this fragment does not model", ErrPole, lead.Exp.String())
	}
	invA0 := expr.Recip(lead.Coeff)
	var tTerms []Term
	for _, t := range arg.Terms[1:] {
		tTerms = append(tTerms, Term{t.Exp, expr.Product(t.Coeff, invA0)})
	}
	T := Series{tTerms}
	sum := Series{}
	term := single(big.NewRat(0, 1), expr.One)
	for k := int64(1); ; k++ {
		term = Mul(term, T, cutoff)
		if len(term.Terms) == 0 {
			break
		}
		if term.Terms[0].Exp.Cmp(cutoff) > 0 {
			break
		}
		sign := int64(1)
		if k%2 == 0 {
			sign = -1
		}
		sum = Add(sum, scaleRat(term, big.NewRat(sign, k)))
		if k > convergenceBound {
			return Series{}, fmt.Errorf("%w: ln series did not converge within the working order", ErrPole)
		}
	}
	constTerm := single(big.NewRat(0, 1), expr.Ln(lead.Coeff))
	return Add(constTerm, sum), nil
}

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
package expr

import "math/big"

// Expr wraps a Term and is the type callers outside this package construct
// and pass around. Every constructor below returns an already-canonical
// Expr, mirroring the teacher's Sum/Product/Subtract helpers in
// pkg/hir/expr.go.
type Expr struct {
	Term Term
}

// Zero is the constant expression 0.
var Zero = Expr{NewRational(0, 1)}

// One is the constant expression 1.
var One = Expr{NewRational(1, 1)}

// PosInfinity is the sentinel +infinity expression.
var PosInfinity = Expr{Inf{}}

// NegInfinity is the sentinel -infinity expression.
var NegInfinity = Expr{&Mul{[]Term{NewRational(-1, 1), Inf{}}}}

// NewConst constructs a rational constant expression p/q.
func NewConst(p, q int64) Expr { return Expr{NewRational(p, q)} }

// NewConstBig constructs a rational constant expression from a big.Rat.
func NewConstBig(v *big.Rat) Expr { return Expr{NewRationalFromBig(v)} }

// Var wraps a symbol as an expression.
func Var(s *Symbol) Expr { return Expr{s} }

// String renders this expression in prefix notation.
func (e Expr) String() string { return e.Term.String() }

// IsInfinite returns true iff this expression is +/- infinity.
func (e Expr) IsInfinite() bool {
	switch t := e.Term.(type) {
	case Inf:
		return true
	case *Mul:
		return len(t.Args) == 2 && isInfTerm(t.Args[1]) && isConstTerm(t.Args[0])
	}
	return false
}

func isInfTerm(t Term) bool { _, ok := t.(Inf); return ok }

func isConstTerm(t Term) bool { _, ok := t.(Rational); return ok }

// AsRational returns the rational value of this expression and true, if it
// is in fact a rational constant.
func (e Expr) AsRational() (Rational, bool) {
	r, ok := e.Term.(Rational)
	return r, ok
}

// Sum constructs the canonical sum of zero or more expressions.
func Sum(exprs ...Expr) Expr {
	return Expr{canonAdd(asTerms(exprs))}
}

// Product constructs the canonical product of zero or more expressions.
func Product(exprs ...Expr) Expr {
	return Expr{canonMul(asTerms(exprs))}
}

// Sub constructs a - b.
func Sub(a, b Expr) Expr {
	return Sum(a, Product(NewConst(-1, 1), b))
}

// Pow constructs base^exponent for a rational exponent.
func Pow(base Expr, exponent Rational) Expr {
	return Expr{canonPow(base.Term, exponent)}
}

// PowInt constructs base^n for an integer n.
func PowInt(base Expr, n int64) Expr {
	return Pow(base, NewRational(n, 1))
}

// Exp constructs exp(arg).
func Exp(arg Expr) Expr {
	return Expr{canonExp(arg.Term)}
}

// Ln constructs ln(arg).
func Ln(arg Expr) Expr {
	return Expr{canonLn(arg.Term)}
}

// Recip constructs 1/arg.
func Recip(arg Expr) Expr {
	return Pow(arg, NewRational(-1, 1))
}

func asTerms(exprs []Expr) []Term {
	terms := make([]Term, len(exprs))
	for i, e := range exprs {
		terms[i] = e.Term
	}
	return terms
}

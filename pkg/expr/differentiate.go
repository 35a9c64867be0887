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

// Differentiate computes d(e)/d(sym), canonicalised (spec.md §6).
func Differentiate(e Expr, sym *Symbol) Expr {
	return Expr{Canonicalize(differentiateTerm(e.Term, sym))}
}

func differentiateTerm(t Term, sym *Symbol) Term {
	switch n := t.(type) {
	case Rational, Inf:
		return NewRational(0, 1)
	case *Symbol:
		if n == sym {
			return NewRational(1, 1)
		}
		return NewRational(0, 1)
	case *Add:
		terms := make([]Term, len(n.Args))
		for i, a := range n.Args {
			terms[i] = differentiateTerm(a, sym)
		}
		return &Add{terms}
	case *Mul:
		// generalised product rule: d(prod a_i) = sum_i (da_i * prod_{j!=i} a_j)
		var terms []Term
		for i := range n.Args {
			factors := make([]Term, 0, len(n.Args))
			factors = append(factors, differentiateTerm(n.Args[i], sym))
			for j, a := range n.Args {
				if j != i {
					factors = append(factors, a)
				}
			}
			terms = append(terms, &Mul{factors})
		}
		return &Add{terms}
	case *Power:
		// d(base^c) = c * base^(c-1) * d(base)
		var cMinus1 big.Rat
		cMinus1.Sub(&n.Exponent.val, big.NewRat(1, 1))
		return &Mul{[]Term{
			NewRationalFromBig(&n.Exponent.val),
			canonPow(n.Base, NewRationalFromBig(&cMinus1)),
			differentiateTerm(n.Base, sym),
		}}
	case *Exponential:
		return &Mul{[]Term{n, differentiateTerm(n.Arg, sym)}}
	case *Logarithm:
		return &Mul{[]Term{differentiateTerm(n.Arg, sym), canonPow(n.Arg, NewRational(-1, 1))}}
	default:
		panic("expr: unknown term in Differentiate")
	}
}

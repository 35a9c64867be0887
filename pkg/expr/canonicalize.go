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

import (
	"math/big"
	"sort"
)

// Canonicalize enforces the invariants of spec.md §3 on an arbitrary,
// possibly non-canonical term: Add/Mul flattened and sorted with numerical
// factors combined, trivial identities eliminated, and the exp/ln
// identities applied. Every constructor in this package produces canonical
// terms directly; Canonicalize exists for callers (Substitute, the
// moveup/movedown transform) that rebuild a term from possibly-stale
// sub-terms.
func Canonicalize(t Term) Term {
	switch n := t.(type) {
	case Rational, *Symbol, Inf:
		return t
	case *Add:
		return canonAdd(canonicalizeAll(n.Args))
	case *Mul:
		return canonMul(canonicalizeAll(n.Args))
	case *Power:
		return canonPow(Canonicalize(n.Base), n.Exponent)
	case *Exponential:
		return canonExp(Canonicalize(n.Arg))
	case *Logarithm:
		return canonLn(Canonicalize(n.Arg))
	default:
		panic("expr: unknown term in Canonicalize")
	}
}

func canonicalizeAll(args []Term) []Term {
	out := make([]Term, len(args))
	for i, a := range args {
		out[i] = Canonicalize(a)
	}
	return out
}

// ----------------------------------------------------------------------------
// Add
// ----------------------------------------------------------------------------

func canonAdd(args []Term) Term {
	args = flattenKind(args, func(t Term) ([]Term, bool) {
		if a, ok := t.(*Add); ok {
			return a.Args, true
		}
		return nil, false
	})
	//
	var (
		coeff  big.Rat
		others []Term
	)
	for _, a := range args {
		if r, ok := a.(Rational); ok {
			coeff.Add(&coeff, &r.val)
			continue
		}
		others = append(others, a)
	}
	//
	sortCanonical(others)
	//
	if coeff.Sign() != 0 || len(others) == 0 {
		others = append([]Term{NewRationalFromBig(&coeff)}, others...)
	}
	//
	switch len(others) {
	case 0:
		return NewRational(0, 1)
	case 1:
		return others[0]
	default:
		return &Add{others}
	}
}

// ----------------------------------------------------------------------------
// Mul
// ----------------------------------------------------------------------------

func canonMul(args []Term) Term {
	args = flattenKind(args, func(t Term) ([]Term, bool) {
		if m, ok := t.(*Mul); ok {
			return m.Args, true
		}
		return nil, false
	})
	//
	var (
		coeff  = big.NewRat(1, 1)
		others []Term
	)
	for _, a := range args {
		if r, ok := a.(Rational); ok {
			if r.IsZero() {
				return NewRational(0, 1)
			}
			coeff.Mul(coeff, &r.val)
			continue
		}
		others = append(others, a)
	}
	//
	sortCanonical(others)
	//
	one := big.NewRat(1, 1)
	if coeff.Cmp(one) != 0 || len(others) == 0 {
		others = append([]Term{NewRationalFromBig(coeff)}, others...)
	}
	//
	switch len(others) {
	case 0:
		return NewRational(1, 1)
	case 1:
		return others[0]
	default:
		return &Mul{others}
	}
}

// ----------------------------------------------------------------------------
// Power
// ----------------------------------------------------------------------------

func canonPow(base Term, exponent Rational) Term {
	switch {
	case exponent.IsZero():
		return NewRational(1, 1)
	case exponent.IsOne():
		return base
	}
	// Constant-folding: a rational raised to an integer power is itself
	// rational.
	if r, ok := base.(Rational); ok && exponent.IsInteger() {
		n := exponent.val.Num().Int64()
		var out big.Rat
		out.SetInt64(1)
		inv := n < 0
		if inv {
			n = -n
		}
		for i := int64(0); i < n; i++ {
			out.Mul(&out, &r.val)
		}
		if inv {
			out.Inv(&out)
		}
		return NewRationalFromBig(&out)
	}
	// (a^m)^n = a^(m*n)
	if p, ok := base.(*Power); ok {
		var combined big.Rat
		combined.Mul(&p.Exponent.val, &exponent.val)
		return canonPow(p.Base, NewRationalFromBig(&combined))
	}
	return &Power{base, exponent}
}

// ----------------------------------------------------------------------------
// Exponential / Logarithm
// ----------------------------------------------------------------------------

func canonExp(arg Term) Term {
	// exp(ln(a)) -> a
	if l, ok := arg.(*Logarithm); ok {
		return l.Arg
	}
	if r, ok := arg.(Rational); ok && r.IsZero() {
		return NewRational(1, 1)
	}
	return &Exponential{arg}
}

func canonLn(arg Term) Term {
	// ln(exp(a)) -> a
	if e, ok := arg.(*Exponential); ok {
		return e.Arg
	}
	if r, ok := arg.(Rational); ok {
		if r.IsOne() {
			return NewRational(0, 1)
		}
	}
	// ln(a*b) -> ln(a) + ln(b)
	if m, ok := arg.(*Mul); ok {
		terms := make([]Term, len(m.Args))
		for i, a := range m.Args {
			terms[i] = canonLn(a)
		}
		return canonAdd(terms)
	}
	// ln(a^b) -> b*ln(a)
	if p, ok := arg.(*Power); ok {
		return canonMul([]Term{NewRationalFromBig(&p.Exponent.val), canonLn(p.Base)})
	}
	return &Logarithm{arg}
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func flattenKind(items []Term, match func(Term) ([]Term, bool)) []Term {
	var out []Term
	for _, t := range items {
		if inner, ok := match(t); ok {
			out = append(out, flattenKind(inner, match)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// sortCanonical orders a multiset of non-numeric terms deterministically.
// The ordering key is each term's own canonical string form. Like terms are
// not collected (x + -1*x stays (+ x (* -1 x)), and x * x^-1 stays a
// product), so two structurally different canonical forms can still be
// mathematically equal.
func sortCanonical(args []Term) {
	sort.SliceStable(args, func(i, j int) bool {
		return args[i].String() < args[j].String()
	})
}

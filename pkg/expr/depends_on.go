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

// DependsOn reports whether e contains sym as a free sub-term. The original
// Gruntz implementation this engine is ported from defines has(e, x)
// literally as differentiate(e, x) != 0; a direct structural scan is used
// here instead because it is total and cheap, whereas re-differentiating
// just to test for zero would recurse through the same tree twice.
// Canonicalisation only combines Rational coefficients and does not collect
// like terms, so the two tests can disagree: x - x, built as
// (+ x (* -1 x)), is reported as depending on x, while its derivative
// canonicalises to 0.
func DependsOn(e Expr, sym *Symbol) bool {
	return termDependsOn(e.Term, sym)
}

func termDependsOn(t Term, sym *Symbol) bool {
	switch n := t.(type) {
	case Rational, Inf:
		return false
	case *Symbol:
		return n == sym
	case *Add:
		return anyDependsOn(n.Args, sym)
	case *Mul:
		return anyDependsOn(n.Args, sym)
	case *Power:
		return termDependsOn(n.Base, sym)
	case *Exponential:
		return termDependsOn(n.Arg, sym)
	case *Logarithm:
		return termDependsOn(n.Arg, sym)
	default:
		panic("expr: unknown term in DependsOn")
	}
}

func anyDependsOn(args []Term, sym *Symbol) bool {
	for _, a := range args {
		if termDependsOn(a, sym) {
			return true
		}
	}
	return false
}

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

// Substitute replaces every occurrence of old with new within e and
// re-canonicalises the result (spec.md §6, §9 "substitute-and-canonicalise
// discipline"). Matching is structural (via Equals), not identity, except
// for *Symbol where identity and structural equality coincide.
func Substitute(e Expr, old, new Expr) Expr {
	return Expr{Canonicalize(substituteTerm(e.Term, old.Term, new.Term))}
}

func substituteTerm(t, old, new Term) Term {
	if equalTerm(t, old) {
		return new
	}
	//
	switch n := t.(type) {
	case Rational, *Symbol, Inf:
		return t
	case *Add:
		return &Add{substituteTerms(n.Args, old, new)}
	case *Mul:
		return &Mul{substituteTerms(n.Args, old, new)}
	case *Power:
		return &Power{substituteTerm(n.Base, old, new), n.Exponent}
	case *Exponential:
		return &Exponential{substituteTerm(n.Arg, old, new)}
	case *Logarithm:
		return &Logarithm{substituteTerm(n.Arg, old, new)}
	default:
		panic("expr: unknown term in Substitute")
	}
}

func substituteTerms(args []Term, old, new Term) []Term {
	out := make([]Term, len(args))
	for i, a := range args {
		out[i] = substituteTerm(a, old, new)
	}
	return out
}

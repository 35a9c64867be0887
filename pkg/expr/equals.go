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

// Equals returns true iff the canonical forms of a and b coincide
// (spec.md §6, "equals").
func Equals(a, b Expr) bool {
	return equalTerm(Canonicalize(a.Term), Canonicalize(b.Term))
}

func equalTerm(a, b Term) bool {
	switch x := a.(type) {
	case Rational:
		y, ok := b.(Rational)
		return ok && x.val.Cmp(&y.val) == 0
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x == y
	case Inf:
		_, ok := b.(Inf)
		return ok
	case *Add:
		y, ok := b.(*Add)
		return ok && equalTermSlice(x.Args, y.Args)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && equalTermSlice(x.Args, y.Args)
	case *Power:
		y, ok := b.(*Power)
		return ok && x.Exponent.val.Cmp(&y.Exponent.val) == 0 && equalTerm(x.Base, y.Base)
	case *Exponential:
		y, ok := b.(*Exponential)
		return ok && equalTerm(x.Arg, y.Arg)
	case *Logarithm:
		y, ok := b.(*Logarithm)
		return ok && equalTerm(x.Arg, y.Arg)
	default:
		panic("expr: unknown term in Equals")
	}
}

func equalTermSlice(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalTerm(a[i], b[i]) {
			return false
		}
	}
	return true
}

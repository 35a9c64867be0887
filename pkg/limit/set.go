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
package limit

import "github.com/fagan2888/gruntz/pkg/expr"

// Set is an MRV set: the (typically small) collection of sub-expressions
// sharing an expression's most-rapidly-varying comparability class.
// Membership is structural (expr.Equals), so this is a simple linear-scan
// set rather than the teacher's cmp.Ordered-keyed SortedSet in
// pkg/util/collection/set — expressions have no total order, only the
// partial order Compare supplies, so a sorted-set representation does not
// apply here.
type Set []expr.Expr

func (s Set) member(e expr.Expr) bool {
	for _, t := range s {
		if expr.Equals(t, e) {
			return true
		}
	}
	return false
}

func (s Set) containsVar(x *expr.Symbol) bool {
	return s.member(expr.Var(x))
}

func union(f, g Set) Set {
	out := append(Set{}, f...)
	for _, e := range g {
		if !out.member(e) {
			out = append(out, e)
		}
	}
	return out
}

func intersects(f, g Set) bool {
	for _, e := range f {
		if g.member(e) {
			return true
		}
	}
	return false
}

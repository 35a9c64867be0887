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

import (
	"fmt"
	"sort"

	"github.com/fagan2888/gruntz/pkg/expr"
)

// Rewrite expresses e in terms of the fresh dummy w, substituting every
// element of omega for a power of w (spec.md §4.4).
//
// The representative g is whichever element of omega has the smallest MRV
// set (ties broken deterministically by string form); every element f of
// omega, including g itself, is replaced by
//
//	exp(arg(f) - c*arg(g)) * wsym^c
//
// where c is the (necessarily rational, necessarily zero-exponent) leading
// coefficient of arg(f)/arg(g), and wsym is w itself or 1/w depending on the
// sign of arg(g): if g grows without bound (sign +1) the substitute is 1/w,
// since w itself is defined to tend to 0. This mirrors the reference
// implementation's local reassignment of its "wsym" variable rather than
// branching the formula itself — the same exponentiation is used in both
// cases, against whichever substitute was chosen.
func Rewrite(e expr.Expr, omega Set, x, w *expr.Symbol, depth int) (expr.Expr, error) {
	if len(omega) == 0 {
		return expr.Expr{}, fmt.Errorf("%w: empty mrv set", ErrClassMismatch)
	}
	args := make([]*expr.Exponential, len(omega))
	for i, t := range omega {
		exp, ok := t.Term.(*expr.Exponential)
		if !ok {
			return expr.Expr{}, fmt.Errorf("%w: mrv set element %s is not exp(...)", ErrClassMismatch, t.String())
		}
		args[i] = exp
	}

	order := make([]int, len(omega))
	for i := range order {
		order[i] = i
	}
	mrvSizes := make([]int, len(omega))
	for i, t := range omega {
		m, err := MRV(t, x, depth)
		if err != nil {
			return expr.Expr{}, err
		}
		mrvSizes[i] = len(m)
	}
	sort.SliceStable(order, func(i, j int) bool {
		oi, oj := order[i], order[j]
		if mrvSizes[oi] != mrvSizes[oj] {
			return mrvSizes[oi] > mrvSizes[oj]
		}
		return omega[oi].String() < omega[oj].String()
	})
	g := omega[order[len(order)-1]]
	gArg := expr.Expr{Term: args[order[len(order)-1]].Arg}

	sg, err := Sign(gArg, x, depth)
	if err != nil {
		return expr.Expr{}, err
	}
	var wsym expr.Expr
	if sg == 1 {
		wsym = expr.Recip(expr.Var(w))
	} else {
		wsym = expr.Var(w)
	}

	result := e
	for i, f := range omega {
		fArg := expr.Expr{Term: args[i].Arg}
		ratio := expr.Product(fArg, expr.Recip(gArg))
		c0, e0, err := MRVLeadTerm(ratio, x, nil, depth)
		if err != nil {
			return expr.Expr{}, err
		}
		if e0.Sign() != 0 {
			return expr.Expr{}, fmt.Errorf("%w: %s is not comparable to the dominant class %s", ErrClassMismatch, f.String(), g.String())
		}
		c, ok := c0.AsRational()
		if !ok {
			return expr.Expr{}, fmt.Errorf("%w: leading coefficient %s of %s/%s is not rational", ErrClassMismatch, c0.String(), f.String(), g.String())
		}
		residual := expr.Sub(fArg, expr.Product(c0, gArg))
		replacement := expr.Product(expr.Exp(residual), expr.Pow(wsym, c))
		result = expr.Substitute(result, f, replacement)
	}
	return result, nil
}

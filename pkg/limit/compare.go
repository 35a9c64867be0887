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

// Compare implements the comparability ordering of spec.md §4.2: it decides
// whether a grows strictly faster than b (">"), strictly slower ("<") or at
// the same asymptotic rate ("=") as x -> +infinity, via
// L = limitinf(ln(a)/ln(b), x).
func Compare(a, b expr.Expr, x *expr.Symbol, depth int) (string, error) {
	depth++
	if depth > MaxRecursionDepth {
		return "", ErrRecursionLimitExceeded
	}
	ratio := expr.Product(expr.Ln(a), expr.Recip(expr.Ln(b)))
	c, err := limitinf(ratio, x, depth)
	if err != nil {
		return "", err
	}
	if r, ok := c.AsRational(); ok && r.IsZero() {
		return "<", nil
	}
	if expr.Equals(c, expr.PosInfinity) || expr.Equals(c, expr.NegInfinity) {
		return ">", nil
	}
	return "=", nil
}

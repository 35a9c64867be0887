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

	"github.com/fagan2888/gruntz/pkg/expr"
)

// Sign implements the restricted sign oracle of spec.md §4.1: it decides the
// sign of e as x -> +infinity, using only the rules the algorithm actually
// needs (it is not a general real-analysis sign solver). Any case outside
// those rules is reported as ErrIndeterminateSign rather than guessed.
func Sign(e expr.Expr, x *expr.Symbol, depth int) (int, error) {
	depth++
	if depth > MaxRecursionDepth {
		return 0, ErrRecursionLimitExceeded
	}
	switch t := e.Term.(type) {
	case expr.Rational:
		return t.Sign(), nil
	case expr.Inf:
		return 1, nil
	case *expr.Symbol:
		if t == x {
			return 1, nil
		}
		return 0, fmt.Errorf("%w: free symbol %s other than the limit variable", ErrIndeterminateSign, t.String())
	case *expr.Mul:
		sign := 1
		for _, a := range t.Args {
			s, err := Sign(expr.Expr{Term: a}, x, depth)
			if err != nil {
				return 0, err
			}
			if s == 0 {
				return 0, nil
			}
			sign *= s
		}
		return sign, nil
	case *expr.Exponential:
		return 1, nil
	case *expr.Power:
		s, err := Sign(expr.Expr{Term: t.Base}, x, depth)
		if err != nil {
			return 0, err
		}
		if s == 1 {
			return 1, nil
		}
		return 0, fmt.Errorf("%w: base of %s is not known positive", ErrIndeterminateSign, e.String())
	default:
		return 0, fmt.Errorf("%w: %s", ErrIndeterminateSign, e.String())
	}
}

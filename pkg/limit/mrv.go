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

// MRV computes the most-rapidly-varying set of e with respect to x as
// x -> +infinity (spec.md §4.3). The Add/Mul rules are stated over a binary
// a*b / a+b in the algorithm this engine is ported from; here they are
// generalised to this package's flattened N-ary Add/Mul by folding maxSet
// left to right over the children, which is equivalent (maxSet is
// associative and commutative on comparability classes).
func MRV(e expr.Expr, x *expr.Symbol, depth int) (Set, error) {
	depth++
	if depth > MaxRecursionDepth {
		return nil, ErrRecursionLimitExceeded
	}
	if !expr.DependsOn(e, x) {
		return nil, nil
	}
	switch t := e.Term.(type) {
	case *expr.Symbol:
		if t == x {
			return Set{e}, nil
		}
		return nil, nil
	case *expr.Add:
		return mrvFold(t.Args, x, depth)
	case *expr.Mul:
		return mrvFold(t.Args, x, depth)
	case *expr.Power:
		return MRV(expr.Expr{Term: t.Base}, x, depth)
	case *expr.Logarithm:
		return MRV(expr.Expr{Term: t.Arg}, x, depth)
	case *expr.Exponential:
		arg := expr.Expr{Term: t.Arg}
		lim, err := limitinf(arg, x, depth)
		if err != nil {
			return nil, err
		}
		if expr.Equals(lim, expr.PosInfinity) {
			argMrv, err := MRV(arg, x, depth)
			if err != nil {
				return nil, err
			}
			return maxSet(Set{e}, argMrv, x, depth)
		}
		return MRV(arg, x, depth)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExpression, e.String())
	}
}

func mrvFold(args []expr.Term, x *expr.Symbol, depth int) (Set, error) {
	var running Set
	for _, a := range args {
		m, err := MRV(expr.Expr{Term: a}, x, depth)
		if err != nil {
			return nil, err
		}
		running, err = maxSet(running, m, x, depth)
		if err != nil {
			return nil, err
		}
	}
	return running, nil
}

// maxSet combines the MRV sets of two sub-expressions per spec.md §4.3's
// max(F, G, x): the faster-growing side wins outright, a shared
// comparability class unions the two sets, and ties involving the bare
// limit variable defer to whichever side does not mention it.
func maxSet(f, g Set, x *expr.Symbol, depth int) (Set, error) {
	switch {
	case len(f) == 0:
		return g, nil
	case len(g) == 0:
		return f, nil
	case intersects(f, g):
		return union(f, g), nil
	case f.containsVar(x):
		return g, nil
	case g.containsVar(x):
		return f, nil
	default:
		c, err := Compare(f[0], g[0], x, depth)
		if err != nil {
			return nil, err
		}
		switch c {
		case ">":
			return f, nil
		case "<":
			return g, nil
		default:
			return union(f, g), nil
		}
	}
}

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

	log "github.com/sirupsen/logrus"

	"github.com/fagan2888/gruntz/pkg/expr"
)

// Request describes a single limit computation: lim_{Var -> Point, along
// Dir} Expr. Dir is "+" (the only direction this engine supports) or the
// empty string, treated as "+".
type Request struct {
	Expr  expr.Expr
	Var   *expr.Symbol
	Point expr.Expr
	Dir   string
}

// Gruntz computes lim_{x -> +infinity} e, the core entry point spec.md §4.7
// builds everything else from.
func Gruntz(e expr.Expr, x *expr.Symbol) (expr.Expr, error) {
	return limitinf(e, x, 0)
}

// limitinf implements spec.md §4.7's limitinf(e, x): the mutually recursive
// driver over MRVLeadTerm, Rewrite and Sign.
func limitinf(e expr.Expr, x *expr.Symbol, depth int) (expr.Expr, error) {
	depth++
	if depth > MaxRecursionDepth {
		return expr.Expr{}, ErrRecursionLimitExceeded
	}
	e = expr.Expr{Term: expr.Canonicalize(e.Term)}
	if !expr.DependsOn(e, x) {
		return e, nil
	}
	c0, e0, err := MRVLeadTerm(e, x, nil, depth)
	if err != nil {
		return expr.Expr{}, err
	}
	log.WithFields(log.Fields{"expr": e.String(), "c0": c0.String(), "e0": e0.String()}).Debug("limit: leading term")
	switch e0.Sign() {
	case 1:
		return expr.Zero, nil
	case -1:
		cs, err := Sign(c0, x, depth)
		if err != nil {
			return expr.Expr{}, err
		}
		if cs >= 0 {
			return expr.PosInfinity, nil
		}
		return expr.NegInfinity, nil
	default:
		return limitinf(c0, x, depth)
	}
}

// Limit computes req, normalising a finite point z0 into a limit at
// +infinity by substituting Var = z0 + 1/x' for a fresh x' (spec.md §4.7),
// and a point of +infinity directly.
func Limit(req Request) (expr.Expr, error) {
	if req.Dir != "" && req.Dir != "+" {
		return expr.Expr{}, fmt.Errorf("limit: only the right-hand limit (dir \"+\") is supported, got %q", req.Dir)
	}
	fresh := expr.NewDummy(req.Var.Name())
	var substituted expr.Expr
	if expr.Equals(req.Point, expr.PosInfinity) {
		substituted = expr.Substitute(req.Expr, expr.Var(req.Var), expr.Var(fresh))
	} else if expr.Equals(req.Point, expr.NegInfinity) {
		return expr.Expr{}, fmt.Errorf("limit: limits at -infinity are unsupported, negate the variable instead")
	} else {
		substituted = expr.Substitute(req.Expr, expr.Var(req.Var), expr.Sum(req.Point, expr.Recip(expr.Var(fresh))))
	}
	return Gruntz(substituted, fresh)
}

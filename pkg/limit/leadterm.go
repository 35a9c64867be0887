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
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/fagan2888/gruntz/pkg/expr"
	"github.com/fagan2888/gruntz/pkg/series"
)

// seriesOrder bounds the Taylor order pkg/series expands to when extracting
// a leading term; see series.DefaultOrder.
const seriesOrder = series.DefaultOrder

// MRVLeadTerm computes the leading term (c0, e0) of e as x -> +infinity,
// i.e. the pair such that e ~ c0 * w^e0 for the w the rewrite step
// introduces (spec.md §4.5/§4.6). omega may be nil, in which case this
// function computes MRV(e, x) itself.
//
// The degenerate case where x itself is a member of its own MRV set is
// handled by moveup/movedown: substitute x -> exp(x) throughout (including
// omega), recurse, then substitute x -> ln(x) back into BOTH halves of the
// result pair — not just the coefficient — mirroring the reference
// implementation, where movedown is applied to the whole returned tuple.
func MRVLeadTerm(e expr.Expr, x *expr.Symbol, omega Set, depth int) (expr.Expr, *big.Rat, error) {
	depth++
	if depth > MaxRecursionDepth {
		return expr.Expr{}, nil, ErrRecursionLimitExceeded
	}
	e = expr.Expr{Term: expr.Canonicalize(e.Term)}
	if !expr.DependsOn(e, x) {
		return e, big.NewRat(0, 1), nil
	}
	if omega == nil {
		var err error
		omega, err = MRV(e, x, depth)
		if err != nil {
			return expr.Expr{}, nil, err
		}
	}
	if omega.containsVar(x) {
		log.WithField("expr", e.String()).Debug("limit: mrv set contains the limit variable, moving up")
		expx := expr.Exp(expr.Var(x))
		e2 := expr.Substitute(e, expr.Var(x), expx)
		omega2 := make(Set, len(omega))
		for i, t := range omega {
			omega2[i] = expr.Substitute(t, expr.Var(x), expx)
		}
		c0, e0, err := MRVLeadTerm(e2, x, omega2, depth)
		if err != nil {
			return expr.Expr{}, nil, err
		}
		lnx := expr.Ln(expr.Var(x))
		c0down := expr.Substitute(c0, expr.Var(x), lnx)
		e0expr := expr.Substitute(expr.NewConstBig(e0), expr.Var(x), lnx)
		e0down, ok := e0expr.AsRational()
		if !ok {
			return expr.Expr{}, nil, fmt.Errorf("%w: exponent %s became non-constant after moving down", ErrClassMismatch, e0expr.String())
		}
		return c0down, e0down.Big(), nil
	}
	w := expr.NewDummy("w")
	f, err := Rewrite(e, omega, x, w, depth)
	if err != nil {
		return expr.Expr{}, nil, err
	}
	return LeadTerm(f, w)
}

// LeadTerm extracts the leading term of an expression already written
// purely in terms of the dummy w, by expanding it as a power series around
// w = 0 and reporting its lowest-order term (spec.md §4.5).
func LeadTerm(f expr.Expr, w *expr.Symbol) (expr.Expr, *big.Rat, error) {
	s, err := series.Expand(f, w, seriesOrder)
	if err != nil {
		return expr.Expr{}, nil, err
	}
	c0, e0, ok := s.Leading()
	if !ok {
		return expr.Expr{}, nil, fmt.Errorf("%w: series expansion of %s vanishes identically", ErrPole, f.String())
	}
	return c0, e0, nil
}

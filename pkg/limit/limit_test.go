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
package limit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fagan2888/gruntz/pkg/expr"
	. "github.com/fagan2888/gruntz/pkg/limit"
)

// lim x -> oo of x is oo.
func TestLimitOfXAtInfinity(t *testing.T) {
	x := expr.NewSymbol("x")
	got, err := Limit(Request{Expr: expr.Var(x), Var: x, Point: expr.PosInfinity})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.PosInfinity))
}

// lim x -> oo of 1/x is 0.
func TestLimitOfReciprocalAtInfinity(t *testing.T) {
	x := expr.NewSymbol("x")
	got, err := Limit(Request{Expr: expr.Recip(expr.Var(x)), Var: x, Point: expr.PosInfinity})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.Zero))
}

// lim x -> oo of exp(x) + x is oo.
func TestLimitOfExpPlusXAtInfinity(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.Sum(expr.Exp(expr.Var(x)), expr.Var(x))
	got, err := Limit(Request{Expr: e, Var: x, Point: expr.PosInfinity})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.PosInfinity))
}

// lim x -> 0 of (exp(x) - 1) / x is 1: this is the scenario that forces a
// genuine Taylor expansion of exp, not just algebraic monomial bookkeeping.
func TestLimitOfExpMinusOneOverXAtZero(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.Product(expr.Sub(expr.Exp(expr.Var(x)), expr.One), expr.Recip(expr.Var(x)))
	got, err := Limit(Request{Expr: e, Var: x, Point: expr.Zero})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.One))
}

// lim x -> oo of ln(x)/x is 0.
func TestLimitOfLnOverXAtInfinity(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.Product(expr.Ln(expr.Var(x)), expr.Recip(expr.Var(x)))
	got, err := Limit(Request{Expr: e, Var: x, Point: expr.PosInfinity})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.Zero))
}

// lim x -> oo of exp(x)*ln(x)/exp(x+1) is 0: exercises the two-element MRV
// set and the Compare-driven tiebreak between them.
func TestLimitOfExpTimesLnOverExpShiftedAtInfinity(t *testing.T) {
	x := expr.NewSymbol("x")
	num := expr.Product(expr.Exp(expr.Var(x)), expr.Ln(expr.Var(x)))
	den := expr.Exp(expr.Sum(expr.Var(x), expr.One))
	e := expr.Product(num, expr.Recip(den))
	got, err := Limit(Request{Expr: e, Var: x, Point: expr.PosInfinity})
	require.NoError(t, err)
	assert.True(t, expr.Equals(got, expr.Zero))
}

func TestLimitRejectsNegativeInfinityPoint(t *testing.T) {
	x := expr.NewSymbol("x")
	_, err := Limit(Request{Expr: expr.Var(x), Var: x, Point: expr.NegInfinity})
	assert.Error(t, err)
}

func TestLimitRejectsLeftDirection(t *testing.T) {
	x := expr.NewSymbol("x")
	_, err := Limit(Request{Expr: expr.Var(x), Var: x, Point: expr.PosInfinity, Dir: "-"})
	assert.Error(t, err)
}

func TestSignOfPositiveConstant(t *testing.T) {
	x := expr.NewSymbol("x")
	s, err := Sign(expr.NewConst(5, 1), x, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s)
}

func TestCompareXDominatesLnX(t *testing.T) {
	x := expr.NewSymbol("x")
	cls, err := Compare(expr.Var(x), expr.Ln(expr.Var(x)), x, 0)
	require.NoError(t, err)
	assert.Equal(t, ">", cls)
}

func TestMRVOfExpX(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.Exp(expr.Var(x))
	omega, err := MRV(e, x, 0)
	require.NoError(t, err)
	require.Len(t, omega, 1)
	assert.True(t, expr.Equals(omega[0], e))
}

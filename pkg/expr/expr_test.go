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
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fagan2888/gruntz/pkg/expr"
)

func TestCanonicalFormIsIdempotent(t *testing.T) {
	x := NewSymbol("x")
	e := Sum(Var(x), Var(x), NewConst(3, 1), Product(NewConst(2, 1), Var(x)))
	once := Expr{Canonicalize(e.Term)}
	twice := Expr{Canonicalize(once.Term)}
	assert.True(t, Equals(once, twice))
}

func TestEqualsReflexive(t *testing.T) {
	x := NewSymbol("x")
	e := Sum(Exp(Var(x)), Product(Var(x), Var(x)))
	assert.True(t, Equals(e, e))
	assert.False(t, Equals(e, Zero))
}

func TestSubstituteRecanonicalizes(t *testing.T) {
	x := NewSymbol("x")
	e := Sum(Var(x), NewConst(1, 1))
	got := Substitute(e, Var(x), NewConst(2, 1))
	assert.True(t, Equals(got, NewConst(3, 1)))
}

func TestDependsOn(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	e := Sum(Exp(Var(x)), Var(y))
	assert.True(t, DependsOn(e, x))
	assert.True(t, DependsOn(e, y))
	assert.False(t, DependsOn(NewConst(5, 1), x))
}

func TestDifferentiatePowerRule(t *testing.T) {
	x := NewSymbol("x")
	e := Pow(Var(x), NewRational(3, 1))
	d := Differentiate(e, x)
	want := Product(NewConst(3, 1), Pow(Var(x), NewRational(2, 1)))
	assert.True(t, Equals(d, want))
}

func TestAsRational(t *testing.T) {
	r, ok := NewConst(3, 2).AsRational()
	require.True(t, ok)
	assert.Equal(t, "3/2", r.String())

	_, ok = Var(NewSymbol("x")).AsRational()
	assert.False(t, ok)
}

func TestParseSExpMatchesConstructors(t *testing.T) {
	x := NewSymbol("x")
	vars := map[string]*Symbol{"x": x}
	e, err := ParseSExp("(+ (exp x) (* 2 x))", vars)
	require.NoError(t, err)
	want := Sum(Exp(Var(x)), Product(NewConst(2, 1), Var(x)))
	assert.True(t, Equals(e, want))
}

func TestParseSExpInfinity(t *testing.T) {
	e, err := ParseSExp("oo", nil)
	require.NoError(t, err)
	assert.True(t, Equals(e, PosInfinity))
}

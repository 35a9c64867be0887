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
package series_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fagan2888/gruntz/pkg/expr"
	. "github.com/fagan2888/gruntz/pkg/series"
)

func TestExpandMonomial(t *testing.T) {
	w := expr.NewSymbol("w")
	e := expr.Product(expr.NewConst(3, 1), expr.PowInt(expr.Var(w), 2))
	s, err := Expand(e, w, DefaultOrder)
	require.NoError(t, err)
	c0, e0, ok := s.Leading()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(2, 1).String(), e0.String())
	assert.True(t, expr.Equals(c0, expr.NewConst(3, 1)))
}

func TestExpandExpOfW(t *testing.T) {
	w := expr.NewSymbol("w")
	e := expr.Exp(expr.Var(w))
	s, err := Expand(e, w, 4)
	require.NoError(t, err)
	c0, e0, ok := s.Leading()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(0, 1).String(), e0.String())
	assert.True(t, expr.Equals(c0, expr.One))
}

// (exp(w) - 1) / w has leading term 1 at w = 0; this is the series that
// spec.md §8's third scenario (lim (exp(x)-1)/x as x -> 0) reduces to after
// normalisation.
func TestExpandExpMinusOneOverW(t *testing.T) {
	w := expr.NewSymbol("w")
	e := expr.Product(
		expr.Sub(expr.Exp(expr.Var(w)), expr.One),
		expr.Recip(expr.Var(w)),
	)
	s, err := Expand(e, w, 6)
	require.NoError(t, err)
	c0, e0, ok := s.Leading()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(0, 1).String(), e0.String())
	assert.True(t, expr.Equals(c0, expr.One))
}

func TestExpandLnRequiresZeroLeadingExponent(t *testing.T) {
	w := expr.NewSymbol("w")
	_, err := Expand(expr.Ln(expr.Var(w)), w, DefaultOrder)
	assert.ErrorIs(t, err, ErrPole)
}

func TestExpandNegativeIntegerPower(t *testing.T) {
	w := expr.NewSymbol("w")
	e := expr.Recip(expr.Sum(expr.One, expr.Var(w)))
	s, err := Expand(e, w, 4)
	require.NoError(t, err)
	c0, e0, ok := s.Leading()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(0, 1).String(), e0.String())
	assert.True(t, expr.Equals(c0, expr.One))
}

func TestAddCancelsToZero(t *testing.T) {
	w := expr.NewSymbol("w")
	e := expr.Sub(expr.Var(w), expr.Var(w))
	s, err := Expand(e, w, DefaultOrder)
	require.NoError(t, err)
	_, _, ok := s.Leading()
	assert.False(t, ok)
}

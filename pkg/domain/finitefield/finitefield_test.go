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
package finitefield_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fagan2888/gruntz/pkg/domain/finitefield"
)

func TestFromRatInverts(t *testing.T) {
	r := big.NewRat(3, 7)
	e, err := FromRat(r)
	require.NoError(t, err)
	seven, err := FromRat(big.NewRat(7, 1))
	require.NoError(t, err)
	three := FromBigInt(big.NewInt(3))
	assert.True(t, e.Mul(seven).Equal(three))
}

func TestZeroAndOne(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, One().IsZero())
	assert.True(t, Zero().Add(One()).Equal(One()))
}

func TestInverseRoundTrips(t *testing.T) {
	e := FromBigInt(big.NewInt(42))
	assert.True(t, e.Mul(e.Inverse()).Equal(One()))
}

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
package integerring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fagan2888/gruntz/pkg/domain/integerring"
)

func TestGCD(t *testing.T) {
	a := FromInt64(24)
	b := FromInt64(36)
	assert.Equal(t, "12", a.GCD(b).String())
}

func TestArithmetic(t *testing.T) {
	a := FromInt64(7)
	b := FromInt64(3)
	assert.Equal(t, "10", a.Add(b).String())
	assert.Equal(t, "4", a.Sub(b).String())
	assert.Equal(t, "21", a.Mul(b).String())
	assert.Equal(t, 1, a.Sign())
	assert.True(t, FromInt64(0).IsZero())
}

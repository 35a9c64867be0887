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

// Package integerring provides Z, the integer-ring collaborator SPEC_FULL.md
// names alongside finitefield: exact arbitrary-precision integer arithmetic
// (Add, Sub, Mul, GCD, Sign) over math/big.Int. No other package of this
// module imports it; pkg/expr's Rational and pkg/domain/finitefield work on
// math/big values directly.
//
// Grounded on the teacher's InfInt (pkg/util/math/biginf.go), which wraps
// math/big.Int to add a signed-infinity sentinel on top of exact integer
// arithmetic; Z keeps only the exact-arithmetic half of that shape: it has
// no infinite value, and none of its operations returns an error.
package integerring

import "math/big"

// Z is an arbitrary-precision integer, exact and totally ordered.
type Z struct{ v big.Int }

// FromInt64 constructs an element of Z from a machine integer.
func FromInt64(n int64) Z {
	var z Z
	z.v.SetInt64(n)
	return z
}

// FromBigInt constructs an element of Z from a math/big.Int, copying it so
// the result is independent of any further mutation of n.
func FromBigInt(n *big.Int) Z {
	var z Z
	z.v.Set(n)
	return z
}

// Add returns x + y.
func (x Z) Add(y Z) Z {
	var z Z
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub returns x - y.
func (x Z) Sub(y Z) Z {
	var z Z
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul returns x * y.
func (x Z) Mul(y Z) Z {
	var z Z
	z.v.Mul(&x.v, &y.v)
	return z
}

// GCD returns the non-negative greatest common divisor of x and y.
func (x Z) GCD(y Z) Z {
	var z Z
	z.v.GCD(nil, nil, new(big.Int).Abs(&x.v), new(big.Int).Abs(&y.v))
	return z
}

// Sign returns -1, 0 or +1.
func (x Z) Sign() int { return x.v.Sign() }

// IsZero reports whether x is zero.
func (x Z) IsZero() bool { return x.v.Sign() == 0 }

// BigInt returns the value as a math/big.Int, safe for the caller to mutate.
func (x Z) BigInt() *big.Int { return new(big.Int).Set(&x.v) }

func (x Z) String() string { return x.v.String() }

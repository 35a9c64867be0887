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

// Package finitefield provides GF(p), the prime-field collaborator
// SPEC_FULL.md's domain layer names alongside the expression kernel: a
// ground domain a rational constant can be reduced into to certify, by
// randomised evaluation at a handful of sample points, that two
// expressions the canonicaliser could not itself prove equal really are
// equal (or are not), the way a Schwartz-Zippel style check would.
//
// It is adapted from the teacher's field package: field.Element[Operand] is
// kept as the arithmetic contract and bls12-377's fr.Element (the
// teacher's only concrete instantiation) supplies the implementation, but
// this layer adds the one thing the teacher's narrow, trace-value-oriented
// constructor (AddUint32) does not offer: reducing an arbitrary
// math/big.Rat, not just a uint32, into the field.
package finitefield

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	field "github.com/fagan2888/gruntz/field"
	bls12377 "github.com/fagan2888/gruntz/field/bls12-377"
)

// Modulus is the characteristic of the field this package instantiates.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Elem is a single residue modulo Modulus().
type Elem struct {
	v bls12377.Element
}

func wrap(e *fr.Element) Elem { return Elem{bls12377.Element{Element: e}} }

// Zero is the additive identity.
func Zero() Elem { return wrap(new(fr.Element)) }

// One is the multiplicative identity.
func One() Elem { return wrap(new(fr.Element).SetOne()) }

// FromBigInt reduces an arbitrary integer into the field.
func FromBigInt(n *big.Int) Elem {
	return wrap(new(fr.Element).SetBigInt(n))
}

// FromRat reduces a rational p/q into the field as p * q^-1. It returns an
// error if q reduces to zero mod Modulus(), which happens exactly when q is
// a multiple of Modulus().
func FromRat(r *big.Rat) (Elem, error) {
	den := FromBigInt(r.Denom())
	if den.v.Element.IsZero() {
		return Elem{}, fmt.Errorf("finitefield: denominator %s is not invertible mod %s", r.Denom(), Modulus())
	}
	num := FromBigInt(r.Num())
	return Elem{num.v.Mul(den.v.Inverse())}, nil
}

// Add returns x + y.
func (x Elem) Add(y Elem) Elem { return Elem{x.v.Add(y.v)} }

// Sub returns x - y.
func (x Elem) Sub(y Elem) Elem { return Elem{x.v.Sub(y.v)} }

// Mul returns x * y.
func (x Elem) Mul(y Elem) Elem { return Elem{x.v.Mul(y.v)} }

// Inverse returns x^-1, or 0 if x = 0.
func (x Elem) Inverse() Elem { return Elem{x.v.Inverse()} }

// IsZero reports whether x is the additive identity.
func (x Elem) IsZero() bool { return x.v.Element.IsZero() }

// Equal reports whether x and y denote the same residue.
func (x Elem) Equal(y Elem) bool { return x.v.Cmp(y.v) == 0 }

func (x Elem) String() string { return x.v.String() }

// field.Element[bls12377.Element] is the arithmetic contract Elem's
// underlying representation satisfies; asserted here so a future
// implementation swap (e.g. a different curve's scalar field) is caught at
// compile time rather than only at first use.
var _ field.Element[bls12377.Element] = bls12377.Element{}

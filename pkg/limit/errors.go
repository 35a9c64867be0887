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

// Package limit implements Gruntz's algorithm for computing limits of
// elementary real expressions: comparability ordering, the most-rapidly-
// varying (MRV) set, the rewrite-into-w transformation and leading-term
// extraction, driving a single top-level Limit/Gruntz entry point.
package limit

import (
	"errors"

	"github.com/fagan2888/gruntz/pkg/series"
)

// The error taxonomy is closed and sentinel-based, in the style of
// pkg/hir/substitute.go's recoverable-contract-violation errors: callers
// match with errors.Is. Most of these are raised wrapped in a short,
// specific message via fmt.Errorf("...: %w", ...);
// ErrRecursionLimitExceeded is returned as is.
var (
	// ErrUnsupportedExpression is raised when an expression uses a
	// construct this engine's type switches do not cover in a given
	// position (MRV raises it for a term kind its type switch has no case
	// for; an MRV set element that is not an exp(...) node is reported by
	// Rewrite as ErrClassMismatch instead).
	ErrUnsupportedExpression = errors.New("limit: unsupported expression")

	// ErrIndeterminateSign is raised when the sign oracle (spec.md §4.1)
	// cannot decide the sign of an expression from its restricted rule
	// set.
	ErrIndeterminateSign = errors.New("limit: indeterminate sign")

	// ErrPole is raised when series expansion cannot proceed. It is the
	// same sentinel pkg/series raises, re-exported here so callers only
	// import pkg/limit's error taxonomy.
	ErrPole = series.ErrPole

	// ErrClassMismatch is raised when rewrite discovers its MRV set
	// elements are not, after all, mutually comparable at the same
	// asymptotic class (an internal consistency check, spec.md §4.4).
	ErrClassMismatch = errors.New("limit: mrv set elements are not in the same comparability class")

	// ErrRecursionLimitExceeded is raised once the mutually recursive
	// limitinf/mrv/rewrite/mrvleadterm call chain exceeds MaxRecursionDepth
	// (spec.md §5).
	ErrRecursionLimitExceeded = errors.New("limit: recursion limit exceeded")
)

// MaxRecursionDepth bounds the combined depth of the mutually recursive
// limitinf -> mrvleadterm -> rewrite -> mrvleadterm -> ... call chain.
const MaxRecursionDepth = 256

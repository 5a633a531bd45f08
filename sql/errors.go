// Copyright 2022 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidClass is raised by Column.Convert when a caller-supplied
	// Value cannot be coerced to the column's declared type.
	ErrInvalidClass = errors.NewKind("invalid value class for column %s: %v")

	// ErrInternal indicates an index-condition invariant was violated,
	// almost always an unrecognized CompareType reaching Mask or SQL.
	// It signals a planner bug, never a data problem.
	ErrInternal = errors.NewKind("internal index-condition error: %s")

	// ErrEvaluationFailure is the kind an Expression or Query
	// implementation wraps its own evaluation failure in (see GetField).
	// IndexCondition propagates collaborator errors unchanged, never
	// transformed.
	ErrEvaluationFailure = errors.NewKind("failed to evaluate expression")

	// ErrCancelled is returned when a Context's session has been
	// cancelled before an evaluation could begin.
	ErrCancelled = errors.NewKind("session cancelled")
)

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

// Result is a subquery's row stream. It intentionally does not promise
// uniform column types, distinctness, or ordering: those guarantees are
// exclusive to IN_LIST's CurrentValueList, never to IN_QUERY's
// CurrentResult.
type Result interface {
	// Next returns the next row, or (nil, io.EOF) when exhausted.
	Next() (Row, error)
	Close() error
}

// Row is a single result row; each element may be any Value kind,
// independent of its neighbors.
type Row []Value

// Query is the opaque subquery handle consumed from the subquery-executor
// layer for IN_QUERY index conditions (spec.md §3, §6).
type Query interface {
	// Execute runs the subquery and returns its result. maxRows == 0
	// means unbounded, the only mode CurrentResult uses.
	Execute(ctx *Context, maxRows int) (Result, error)

	// PlanSQL renders the subquery's plan for EXPLAIN text.
	PlanSQL() string

	// IsEverything reports whether the subquery satisfies the property
	// named by v (e.g. EVALUATABLE).
	IsEverything(v Visitor) bool
}

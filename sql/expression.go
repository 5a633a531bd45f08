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

// Visitor names a property an Expression or Query may be asked about via
// IsEverything. EVALUATABLE is the only one this module consumes, but the
// type is kept open so the expression layer can add more without
// changing this module's interface.
type Visitor string

// EVALUATABLE asks whether every leaf of an expression tree is either a
// constant, a bound parameter, or a correlated outer reference that has
// already been materialized -- i.e. whether it can be evaluated right now
// without further binding.
const EVALUATABLE Visitor = "EVALUATABLE"

// Expression is the opaque scalar node this module consumes from the
// expression-tree layer (spec.md §3, §6). The IC core never inspects an
// Expression's shape; it only evaluates it, serializes it, and asks
// whether it is everything a given Visitor requires.
type Expression interface {
	// Evaluate computes the expression's value under ctx.
	Evaluate(ctx *Context) (Value, error)

	// SQL renders the expression as it would appear in a reconstructed
	// WHERE clause. It need not round-trip through a parser, but must be
	// stable for a given Expression.
	SQL() string

	// IsEverything reports whether every leaf of this expression
	// satisfies the property named by v.
	IsEverything(v Visitor) bool
}

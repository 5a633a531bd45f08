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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IndexCondition binds a single table column to a scalar expression, an
// IN-list of scalar expressions, or an IN-subquery, via one comparison
// operator. It is the atomic predicate the planner pushes down to index
// access. An IndexCondition is immutable after construction.
type IndexCondition struct {
	compareType CompareType
	column      Column

	expression      Expression   // scalar RHS; empty for IN-variants and FALSE
	expressionList  []Expression // populated iff compareType == IN_LIST
	expressionQuery Query        // populated iff compareType == IN_QUERY

	// queryID is the id an IN_QUERY condition was constructed with. It is
	// exposed through QueryID only; SQL, EXPLAIN and tracing do not use it.
	queryID uuid.UUID
}

// NewIndexCondition builds a scalar IndexCondition for one of EQUAL,
// EQUAL_NULL_SAFE, BIGGER, BIGGER_EQUAL, SMALLER, SMALLER_EQUAL, or
// FALSE. For FALSE, column and rhs are both nil/zero and ignored.
//
// This is a pure data constructor: it performs no evaluation and no
// value coercion.
func NewIndexCondition(op CompareType, column Column, rhs Expression) IndexCondition {
	if op == FALSE {
		return IndexCondition{compareType: FALSE}
	}
	return IndexCondition{compareType: op, column: column, expression: rhs}
}

// NewFalseCondition returns the FALSE singleton shape: a contradiction
// with no column and no payload.
func NewFalseCondition() IndexCondition {
	return IndexCondition{compareType: FALSE}
}

// NewInListCondition builds an IN_LIST IndexCondition over column.
func NewInListCondition(column Column, list []Expression) IndexCondition {
	return IndexCondition{compareType: IN_LIST, column: column, expressionList: list}
}

// NewInQueryCondition builds an IN_QUERY IndexCondition over column.
func NewInQueryCondition(column Column, subquery Query, id uuid.UUID) IndexCondition {
	return IndexCondition{compareType: IN_QUERY, column: column, expressionQuery: subquery, queryID: id}
}

// CompareType returns the condition's operator.
func (ic IndexCondition) CompareType() CompareType { return ic.compareType }

// Column returns the condition's target column, or nil for FALSE.
func (ic IndexCondition) Column() Column { return ic.column }

// QueryID returns the correlation id attached to an IN_QUERY condition at
// construction. Nothing in this module writes it into EXPLAIN text or
// tracing spans. It is the zero UUID for every other CompareType.
func (ic IndexCondition) QueryID() uuid.UUID { return ic.queryID }

// IsAlwaysFalse reports whether this condition is the FALSE singleton.
func (ic IndexCondition) IsAlwaysFalse() bool { return ic.compareType == FALSE }

// IsStart reports whether this condition can contribute a lower bound:
// true for EQUAL, EQUAL_NULL_SAFE, BIGGER, BIGGER_EQUAL.
func (ic IndexCondition) IsStart() bool {
	switch ic.compareType {
	case EQUAL, EQUAL_NULL_SAFE, BIGGER, BIGGER_EQUAL:
		return true
	default:
		return false
	}
}

// IsEnd reports whether this condition can contribute an upper bound:
// true for EQUAL, EQUAL_NULL_SAFE, SMALLER, SMALLER_EQUAL.
func (ic IndexCondition) IsEnd() bool {
	switch ic.compareType {
	case EQUAL, EQUAL_NULL_SAFE, SMALLER, SMALLER_EQUAL:
		return true
	default:
		return false
	}
}

// Mask computes the access mask (spec.md §4.3) this condition contributes
// given the full set of peer conditions under consideration for the same
// index (peers includes ic itself).
//
// The peer rule for IN_LIST/IN_QUERY considers only peer *count* and the
// owning table's kind, not which column each peer binds -- this mirrors
// the source behavior spec.md §9 flags as possibly imprecise. It is kept
// verbatim rather than guessed at.
func (ic IndexCondition) Mask(peers []IndexCondition) AccessMask {
	switch ic.compareType {
	case FALSE:
		return ALWAYS_FALSE
	case EQUAL, EQUAL_NULL_SAFE:
		return EQUALITY
	case BIGGER, BIGGER_EQUAL:
		return START
	case SMALLER, SMALLER_EQUAL:
		return END
	case IN_LIST, IN_QUERY:
		if len(peers) == 1 {
			return EQUALITY
		}
		if ic.column != nil && ic.column.Table() != nil && ic.column.Table().Kind() == TableRegular {
			return EQUALITY
		}
		return 0
	default:
		panic(fmt.Sprintf("unrecognized compare type %d reached Mask", ic.compareType))
	}
}

// IsEvaluatable reports whether this condition can be evaluated right
// now, without raising: scalar conditions delegate to their expression,
// IN_LIST requires every list element to be evaluatable, and IN_QUERY
// delegates to the subquery. It never raises; unevaluatable conditions
// simply remain residual filters.
func (ic IndexCondition) IsEvaluatable() bool {
	switch ic.compareType {
	case FALSE:
		return true
	case IN_LIST:
		for _, e := range ic.expressionList {
			if !e.IsEverything(EVALUATABLE) {
				return false
			}
		}
		return true
	case IN_QUERY:
		return ic.expressionQuery.IsEverything(EVALUATABLE)
	default:
		if ic.expression == nil {
			return false
		}
		return ic.expression.IsEverything(EVALUATABLE)
	}
}

// CurrentValue evaluates the scalar RHS of a scalar-operator condition.
// It is only defined for scalar comparisons; calling it on an IN_LIST,
// IN_QUERY, or FALSE condition is a programmer error and panics, the same
// way asking a sum type for the wrong variant would.
//
// Coercion to the column's type is NOT performed here; callers that need
// a coerced value must separately invoke column.Convert.
func (ic IndexCondition) CurrentValue(ctx *Context) (Value, error) {
	if ic.expression == nil {
		panic("CurrentValue called on a non-scalar IndexCondition")
	}
	if ctx.Cancelled() {
		return Value{}, ErrCancelled.New()
	}
	v, err := ic.expression.Evaluate(ctx)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// CurrentValueList evaluates, coerces, sorts, and deduplicates an
// IN_LIST condition's expressions, per spec.md §4.4:
//  1. evaluate each expression
//  2. coerce each result via column.Convert
//  3. sort ascending under the session's CompareMode
//  4. drop each value equal (CompareMode-aware) to the one kept before it
//
// The returned slice is distinct and fully ordered; ties under the
// active collation collapse to one representative.
func (ic IndexCondition) CurrentValueList(ctx *Context) ([]Value, error) {
	if ic.compareType != IN_LIST {
		panic("CurrentValueList called on a non-IN_LIST IndexCondition")
	}
	if ctx.Cancelled() {
		return nil, ErrCancelled.New()
	}

	values := make([]Value, 0, len(ic.expressionList))
	for _, e := range ic.expressionList {
		v, err := e.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		cv, err := ic.column.Convert(v)
		if err != nil {
			return nil, err
		}
		values = append(values, cv)
	}

	mode := ctx.Database().CompareMode()
	sort.SliceStable(values, func(i, j int) bool {
		order, _ := values[i].CompareTo(values[j], mode, EqualNullSafe)
		return order == Less
	})

	deduped := values[:0:0]
	for i, v := range values {
		if i == 0 {
			deduped = append(deduped, v)
			continue
		}
		order, _ := v.CompareTo(deduped[len(deduped)-1], mode, EqualNullSafe)
		if order != Equal {
			deduped = append(deduped, v)
		}
	}
	return deduped, nil
}

// CurrentResult executes an IN_QUERY condition's subquery at maxRows=0
// (unbounded). Unlike CurrentValueList, the result's rows may not be of
// uniform column type and callers must not assume distinctness or
// ordering.
func (ic IndexCondition) CurrentResult(ctx *Context) (Result, error) {
	if ic.compareType != IN_QUERY {
		panic("CurrentResult called on a non-IN_QUERY IndexCondition")
	}
	if ctx.Cancelled() {
		return nil, ErrCancelled.New()
	}
	res, err := ic.expressionQuery.Execute(ctx, 0)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SQL reconstructs a human-readable predicate for EXPLAIN text (spec.md
// §4.7). It is stable for a given IndexCondition but need not round-trip
// through a parser bit-exactly.
func (ic IndexCondition) SQL() string {
	switch ic.compareType {
	case FALSE:
		return "FALSE"
	case EQUAL, EQUAL_NULL_SAFE, BIGGER, BIGGER_EQUAL, SMALLER, SMALLER_EQUAL:
		return ic.column.SQL() + " " + ic.compareType.Symbol() + " " + ic.expression.SQL()
	case IN_LIST:
		parts := make([]string, len(ic.expressionList))
		for i, e := range ic.expressionList {
			parts[i] = e.SQL()
		}
		return ic.column.SQL() + " IN(" + strings.Join(parts, ", ") + ")"
	case IN_QUERY:
		return ic.column.SQL() + " IN(" + ic.expressionQuery.PlanSQL() + ")"
	default:
		panic(fmt.Sprintf("unrecognized compare type %d reached SQL", ic.compareType))
	}
}

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

// Package condition implements the collector and fold described in
// spec.md §4.8: given the set of index conditions bound to the columns of
// one candidate index, it produces a per-column access summary and an
// index-level access mask. It is the consumer of sql.IndexCondition, not
// a replacement for it.
package condition

import (
	"fmt"

	gosql "github.com/sqlcore/indexcond/sql"
)

// Bound is one side of a range constraint on a column.
type Bound struct {
	Value     gosql.Value
	Inclusive bool
}

// InSource is the single IN constraint, if any, contributing to a
// column's summary. Exactly one of List or Query is populated.
type InSource struct {
	List  []gosql.Value
	Query gosql.Query
}

// ColumnSummary is the fold's output for one column of a candidate
// index: the concatenation of its equality constraints, the tightest
// lower/upper bound, and at most one IN source.
type ColumnSummary struct {
	Column      gosql.Column
	Equalities  []gosql.Value
	Lower       *Bound
	Upper       *Bound
	In          *InSource
	AlwaysFalse bool
}

// Mask derives this column's contribution to the combined access mask,
// independent of any other column in the index.
func (s ColumnSummary) Mask() gosql.AccessMask {
	if s.AlwaysFalse {
		return gosql.ALWAYS_FALSE
	}
	var mask gosql.AccessMask
	if len(s.Equalities) > 0 || s.In != nil {
		mask |= gosql.EQUALITY
	}
	if s.Lower != nil {
		mask |= gosql.START
	}
	if s.Upper != nil {
		mask |= gosql.END
	}
	return mask
}

// Collector accumulates IndexCondition values grouped by column and folds
// each group into a ColumnSummary. A Collector is not safe for concurrent
// use; each planning decision should build its own.
type Collector struct {
	mode gosql.CompareMode
	log  logger
}

type logger interface {
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...interface{}) {}

// NewCollector returns a Collector that totally orders values under mode.
// If log is nil, downgrade decisions are not logged.
func NewCollector(mode gosql.CompareMode, log logger) *Collector {
	if log == nil {
		log = noopLogger{}
	}
	return &Collector{mode: mode, log: log}
}

// Fold groups conditions by column and reduces each group to a
// ColumnSummary, in the order columns first appear across conditions.
// peers for the IN-peer mask rule (spec.md §4.3 rule 5) is the full
// conditions slice, matching the "peerConditions" the spec hands to
// mask: only its length and the table kind are consulted, not which
// column each peer binds (see the "peer-aware mask" Open Question in
// DESIGN.md -- preserved verbatim, not guessed at).
func (c *Collector) Fold(ctx *gosql.Context, conditions []gosql.IndexCondition) ([]ColumnSummary, error) {
	order := make([]gosql.Column, 0, len(conditions))
	byColumn := map[gosql.Column][]gosql.IndexCondition{}

	for _, ic := range conditions {
		if ic.IsAlwaysFalse() {
			// FALSE has no column; it poisons the whole fold.
			return []ColumnSummary{{AlwaysFalse: true}}, nil
		}
		col := ic.Column()
		if _, ok := byColumn[col]; !ok {
			order = append(order, col)
		}
		byColumn[col] = append(byColumn[col], ic)
	}

	summaries := make([]ColumnSummary, 0, len(order))
	for _, col := range order {
		summary, err := c.foldColumn(ctx, col, byColumn[col], conditions)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (c *Collector) foldColumn(ctx *gosql.Context, col gosql.Column, ics []gosql.IndexCondition, peers []gosql.IndexCondition) (ColumnSummary, error) {
	summary := ColumnSummary{Column: col}

	var equalities []gosql.Value
	var inListICs []gosql.IndexCondition
	var inQueryIC *gosql.IndexCondition

	for i := range ics {
		ic := ics[i]
		mask := ic.Mask(peers)
		if mask == 0 {
			// IN downgraded to a residual filter; contributes nothing.
			c.log.Warnf("index condition on %s dropped from index access: peer-aware IN downgrade", col.SQL())
			continue
		}

		switch ic.CompareType() {
		case gosql.EQUAL, gosql.EQUAL_NULL_SAFE:
			v, err := ic.CurrentValue(ctx)
			if err != nil {
				return ColumnSummary{}, err
			}
			cv, err := col.Convert(v)
			if err != nil {
				return ColumnSummary{}, err
			}
			equalities = append(equalities, cv)
		case gosql.BIGGER, gosql.BIGGER_EQUAL:
			v, err := ic.CurrentValue(ctx)
			if err != nil {
				return ColumnSummary{}, err
			}
			cv, err := col.Convert(v)
			if err != nil {
				return ColumnSummary{}, err
			}
			b := Bound{Value: cv, Inclusive: ic.CompareType() == gosql.BIGGER_EQUAL}
			summary.Lower = tightestLower(summary.Lower, &b, c.mode)
		case gosql.SMALLER, gosql.SMALLER_EQUAL:
			v, err := ic.CurrentValue(ctx)
			if err != nil {
				return ColumnSummary{}, err
			}
			cv, err := col.Convert(v)
			if err != nil {
				return ColumnSummary{}, err
			}
			b := Bound{Value: cv, Inclusive: ic.CompareType() == gosql.SMALLER_EQUAL}
			summary.Upper = tightestUpper(summary.Upper, &b, c.mode)
		case gosql.IN_LIST:
			inListICs = append(inListICs, ic)
		case gosql.IN_QUERY:
			icCopy := ic
			inQueryIC = &icCopy
		default:
			panic(fmt.Sprintf("unrecognized compare type %d reached Collector.Fold", ic.CompareType()))
		}
	}

	if ok, contradictory := foldEqualities(equalities, c.mode); contradictory {
		summary.AlwaysFalse = true
		summary.Equalities = nil
	} else {
		summary.Equalities = ok
	}

	in, err := c.foldIn(ctx, col, inListICs, inQueryIC)
	if err != nil {
		return ColumnSummary{}, err
	}
	summary.In = in

	return summary, nil
}

// foldEqualities concatenates distinct equality values and reports
// contradictory=true if two incompatible equalities appear (e.g.
// c = 1 AND c = 2), per spec.md §4.8.
func foldEqualities(values []gosql.Value, mode gosql.CompareMode) ([]gosql.Value, bool) {
	if len(values) == 0 {
		return nil, false
	}
	distinct := make([]gosql.Value, 0, len(values))
	for _, v := range values {
		found := false
		for _, d := range distinct {
			if order, ok := v.CompareTo(d, mode, gosql.EqualNullSafe); ok && order == gosql.Equal {
				found = true
				break
			}
		}
		if !found {
			distinct = append(distinct, v)
		}
	}
	if len(distinct) > 1 {
		return nil, true
	}
	return distinct, false
}

func tightestLower(existing, candidate *Bound, mode gosql.CompareMode) *Bound {
	if existing == nil {
		return candidate
	}
	order, ok := candidate.Value.CompareTo(existing.Value, mode, gosql.EqualNullSafe)
	if !ok {
		return existing
	}
	switch order {
	case gosql.Greater:
		return candidate
	case gosql.Equal:
		if !candidate.Inclusive {
			return candidate
		}
		return existing
	default:
		return existing
	}
}

func tightestUpper(existing, candidate *Bound, mode gosql.CompareMode) *Bound {
	if existing == nil {
		return candidate
	}
	order, ok := candidate.Value.CompareTo(existing.Value, mode, gosql.EqualNullSafe)
	if !ok {
		return existing
	}
	switch order {
	case gosql.Less:
		return candidate
	case gosql.Equal:
		if !candidate.Inclusive {
			return candidate
		}
		return existing
	default:
		return existing
	}
}

// foldIn applies the "prefer IN_LIST over IN_QUERY; intersect two
// IN_LISTs" rule from spec.md §4.8. Every IN_LIST condition bound to col
// is evaluated and the results are reduced to their intersection via
// IntersectInLists, so `A IN (1,2,3) AND A IN (2,3,4)` folds to [2,3]
// rather than letting the last IC silently shadow the others.
func (c *Collector) foldIn(ctx *gosql.Context, col gosql.Column, lists []gosql.IndexCondition, query *gosql.IndexCondition) (*InSource, error) {
	switch {
	case len(lists) > 0:
		values, err := lists[0].CurrentValueList(ctx)
		if err != nil {
			return nil, err
		}
		for _, ic := range lists[1:] {
			next, err := ic.CurrentValueList(ctx)
			if err != nil {
				return nil, err
			}
			values = IntersectInLists(values, next, c.mode)
		}
		return &InSource{List: values}, nil
	case query != nil:
		res, err := query.CurrentResult(ctx)
		if err != nil {
			return nil, err
		}
		return &InSource{Query: queryHandle{col: col, result: res}}, nil
	default:
		return nil, nil
	}
}

// queryHandle adapts an already-executed Result back into something that
// satisfies the narrow surface InSource.Query callers need for EXPLAIN;
// it is not meant to be re-executed.
type queryHandle struct {
	col    gosql.Column
	result gosql.Result
}

func (q queryHandle) Execute(*gosql.Context, int) (gosql.Result, error) { return q.result, nil }
func (q queryHandle) PlanSQL() string                                   { return q.col.SQL() + " subquery" }
func (q queryHandle) IsEverything(gosql.Visitor) bool                   { return true }

// IntersectInLists intersects two already-sorted, deduplicated value
// lists under mode, preserving ascending order.
func IntersectInLists(a, b []gosql.Value, mode gosql.CompareMode) []gosql.Value {
	var out []gosql.Value
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		order, ok := a[i].CompareTo(b[j], mode, gosql.EqualNullSafe)
		if !ok {
			i++
			continue
		}
		switch order {
		case gosql.Equal:
			out = append(out, a[i])
			i++
			j++
		case gosql.Less:
			i++
		default:
			j++
		}
	}
	return out
}

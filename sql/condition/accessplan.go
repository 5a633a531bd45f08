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

package condition

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	gosql "github.com/sqlcore/indexcond/sql"
)

var tracer = otel.Tracer("github.com/sqlcore/indexcond/sql/condition")

// PlannerIndex is the minimal index descriptor the fold operates
// against: an ordered list of columns and the table that owns them. It
// carries no storage-engine detail; that belongs to the index-access
// layer this module hands its output to (spec.md §2).
type PlannerIndex struct {
	Columns []gosql.Column
	Table   gosql.Table
}

// AccessPlan is the ranked (lower-bound, upper-bound, equality-set)
// output of folding a set of index conditions against one candidate
// index, plus the usable-prefix length spec.md §4.8 defines: the longest
// p such that columns 0..p-1 all carry EQUALITY, extended by at most one
// column contributing START and/or END.
type AccessPlan struct {
	Index        PlannerIndex
	Columns      []ColumnSummary
	UsablePrefix int
	Mask         gosql.AccessMask
}

// BuildAccessPlan restricts conditions to the columns of index, folds
// them, and computes the usable prefix and combined mask. Conditions on
// columns outside the index are ignored; a full predicate analyzer is
// expected to call this once per candidate index.
func BuildAccessPlan(ctx *gosql.Context, collector *Collector, index PlannerIndex, conditions []gosql.IndexCondition) (plan AccessPlan, err error) {
	spanCtx, span := tracer.Start(ctx, "BuildAccessPlan",
		trace.WithAttributes(
			attribute.String("index", indexName(index)),
			attribute.Int("conditions", len(conditions)),
		))
	defer span.End()
	ctx = ctx.WithContext(spanCtx)

	defer func() {
		if r := recover(); r != nil {
			err = gosql.ErrInternal.New(fmt.Sprintf("%v", r))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("usable_prefix", plan.UsablePrefix),
				attribute.String("mask", maskString(plan.Mask)),
			)
		}
	}()

	indexCols := map[gosql.Column]int{}
	for i, c := range index.Columns {
		indexCols[c] = i
	}

	var relevant []gosql.IndexCondition
	for _, ic := range conditions {
		if ic.IsAlwaysFalse() {
			relevant = append(relevant, ic)
			continue
		}
		if _, ok := indexCols[ic.Column()]; ok {
			relevant = append(relevant, ic)
		}
	}

	summaries, err := collector.Fold(ctx, relevant)
	if err != nil {
		return AccessPlan{}, err
	}

	if len(summaries) == 1 && summaries[0].AlwaysFalse && summaries[0].Column == nil {
		return AccessPlan{Index: index, Columns: summaries, Mask: gosql.ALWAYS_FALSE}, nil
	}

	byColumn := map[gosql.Column]ColumnSummary{}
	for _, s := range summaries {
		byColumn[s.Column] = s
	}

	ordered := make([]ColumnSummary, 0, len(index.Columns))
	usablePrefix := 0
	sawBoundColumn := false
	var mask gosql.AccessMask

prefixLoop:
	for _, col := range index.Columns {
		summary, ok := byColumn[col]
		if !ok {
			break
		}
		ordered = append(ordered, summary)

		if summary.AlwaysFalse {
			mask = gosql.ALWAYS_FALSE
			usablePrefix++
			break
		}

		colMask := summary.Mask()
		switch {
		case colMask&gosql.EQUALITY != 0 && !sawBoundColumn:
			usablePrefix++
			mask |= gosql.EQUALITY
		case (colMask&gosql.START != 0 || colMask&gosql.END != 0) && !sawBoundColumn:
			usablePrefix++
			sawBoundColumn = true
			mask |= colMask & (gosql.START | gosql.END)
			break prefixLoop
		default:
			break prefixLoop
		}
	}

	return AccessPlan{Index: index, Columns: ordered, UsablePrefix: usablePrefix, Mask: mask}, nil
}

// ExplainFold renders plan as stable, human-readable EXPLAIN text: one
// line per column contributing to the usable prefix, naming its
// equality/range/IN summary and the combined mask. It is EXPLAIN-only
// output and is never round-tripped through a parser.
func ExplainFold(plan AccessPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "index %s prefix=%d mask=%s\n", indexName(plan.Index), plan.UsablePrefix, maskString(plan.Mask))

	for i, summary := range plan.Columns {
		if i >= plan.UsablePrefix && !summary.AlwaysFalse {
			break
		}
		b.WriteString("  ")
		b.WriteString(explainColumn(summary))
		b.WriteString("\n")
	}
	return b.String()
}

func indexName(idx PlannerIndex) string {
	names := make([]string, len(idx.Columns))
	for i, c := range idx.Columns {
		names[i] = c.SQL()
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func explainColumn(s ColumnSummary) string {
	if s.AlwaysFalse {
		return "FALSE"
	}
	var parts []string
	if len(s.Equalities) == 1 {
		parts = append(parts, fmt.Sprintf("%s = %s", s.Column.SQL(), s.Equalities[0].String()))
	}
	if s.Lower != nil {
		op := ">"
		if s.Lower.Inclusive {
			op = ">="
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", s.Column.SQL(), op, s.Lower.Value.String()))
	}
	if s.Upper != nil {
		op := "<"
		if s.Upper.Inclusive {
			op = "<="
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", s.Column.SQL(), op, s.Upper.Value.String()))
	}
	if s.In != nil {
		if s.In.Query != nil {
			parts = append(parts, fmt.Sprintf("%s IN(%s)", s.Column.SQL(), s.In.Query.PlanSQL()))
		} else {
			vals := make([]string, len(s.In.List))
			for i, v := range s.In.List {
				vals[i] = v.String()
			}
			parts = append(parts, fmt.Sprintf("%s IN(%s)", s.Column.SQL(), strings.Join(vals, ", ")))
		}
	}
	if len(parts) == 0 {
		return s.Column.SQL() + " <no access>"
	}
	return strings.Join(parts, " AND ")
}

func maskString(m gosql.AccessMask) string {
	switch {
	case m == gosql.ALWAYS_FALSE:
		return "ALWAYS_FALSE"
	case m == gosql.RANGE:
		return "RANGE"
	case m&gosql.EQUALITY != 0 && m&gosql.RANGE == 0:
		return "EQUALITY"
	case m&gosql.START != 0 && m&gosql.END == 0:
		return "START"
	case m&gosql.END != 0 && m&gosql.START == 0:
		return "END"
	case m == 0:
		return "NONE"
	default:
		return fmt.Sprintf("%d", m)
	}
}

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

package memory

import (
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	gosql "github.com/sqlcore/indexcond/sql"
)

var tracer = otel.Tracer("github.com/sqlcore/indexcond/memory")

// Subquery is a fixture sql.Query backed by a fixed set of rows, standing
// in for a planned subquery's execution.
type Subquery struct {
	plan        string
	rows        []gosql.Row
	evaluatable bool
}

// NewSubquery returns a fixture subquery whose Execute yields rows (the
// first maxRows of them when maxRows > 0), or ErrCancelled when ctx is
// cancelled.
func NewSubquery(plan string, rows []gosql.Row, evaluatable bool) *Subquery {
	return &Subquery{plan: plan, rows: rows, evaluatable: evaluatable}
}

// Execute is the one genuine suspension point in the subsystem -- a
// subquery handle may do real I/O -- so it is the only operation here
// wrapped in its own trace span, created lazily from ctx.
func (s *Subquery) Execute(ctx *gosql.Context, maxRows int) (res gosql.Result, err error) {
	spanCtx, span := tracer.Start(ctx, "Subquery.Execute",
		trace.WithAttributes(
			attribute.String("plan", s.plan),
			attribute.Int("max_rows", maxRows),
		))
	defer span.End()
	ctx = ctx.WithContext(spanCtx)

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if ctx.Cancelled() {
		return nil, gosql.ErrCancelled.New()
	}
	rows := s.rows
	if maxRows > 0 && maxRows < len(rows) {
		rows = rows[:maxRows]
	}
	return &sliceResult{rows: rows}, nil
}

func (s *Subquery) PlanSQL() string { return s.plan }

func (s *Subquery) IsEverything(v gosql.Visitor) bool {
	return v == gosql.EVALUATABLE && s.evaluatable
}

type sliceResult struct {
	rows []gosql.Row
	pos  int
}

func (r *sliceResult) Next() (gosql.Row, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func (r *sliceResult) Close() error { return nil }

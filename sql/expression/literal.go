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

// Package expression provides concrete sql.Expression implementations:
// constants and correlated references. The IC core never imports this
// package; it consumes expressions only through the sql.Expression
// interface (spec.md §6), exactly the way the teacher's planner consumes
// expression.NewGetField/NewLiteral through sql.Expression.
package expression

import (
	"fmt"

	gosql "github.com/sqlcore/indexcond/sql"
)

// Literal is a constant scalar. It is always EVALUATABLE.
type Literal struct {
	value gosql.Value
}

// NewLiteral wraps a constant Value as an Expression.
func NewLiteral(v gosql.Value) *Literal {
	return &Literal{value: v}
}

func (l *Literal) Evaluate(*gosql.Context) (gosql.Value, error) {
	return l.value, nil
}

func (l *Literal) SQL() string {
	if l.value.Kind == gosql.KindString {
		return "'" + l.value.String() + "'"
	}
	return l.value.String()
}

func (l *Literal) IsEverything(v gosql.Visitor) bool {
	return v == gosql.EVALUATABLE
}

// GetField reads the correlated value of an outer row already
// materialized by the enclosing query -- a parameter in spirit, not a
// live row scan. It is EVALUATABLE once bound.
type GetField struct {
	name  string
	bound bool
	value gosql.Value
}

// NewGetField constructs a correlated field reference. It is not
// EVALUATABLE until Bind is called with the outer row's current value.
func NewGetField(name string) *GetField {
	return &GetField{name: name}
}

// Bind materializes this field's current value, making it EVALUATABLE.
func (g *GetField) Bind(v gosql.Value) {
	g.bound = true
	g.value = v
}

func (g *GetField) Evaluate(ctx *gosql.Context) (gosql.Value, error) {
	if !g.bound {
		return gosql.Value{}, gosql.ErrEvaluationFailure.Wrap(fmt.Errorf("field %s is not bound", g.name))
	}
	return g.value, nil
}

func (g *GetField) SQL() string { return g.name }

func (g *GetField) IsEverything(v gosql.Visitor) bool {
	return v == gosql.EVALUATABLE && g.bound
}

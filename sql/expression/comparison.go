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

package expression

import (
	gosql "github.com/sqlcore/indexcond/sql"
)

// Equals is a general boolean predicate built from two scalar
// expressions. It exists for residual-filter evaluation -- predicates the
// collector could not push into index access -- and plays no role in IC
// construction itself, which binds a column directly to an operator.
type Equals struct {
	left, right gosql.Expression
	mode        gosql.CompareMode
}

// NewEquals builds a left = right predicate.
func NewEquals(left, right gosql.Expression, mode gosql.CompareMode) *Equals {
	return &Equals{left: left, right: right, mode: mode}
}

func (e *Equals) Evaluate(ctx *gosql.Context) (gosql.Value, error) {
	lv, err := e.left.Evaluate(ctx)
	if err != nil {
		return gosql.Value{}, err
	}
	rv, err := e.right.Evaluate(ctx)
	if err != nil {
		return gosql.Value{}, err
	}
	order, ok := lv.CompareTo(rv, e.mode, gosql.EqualStandard)
	if !ok {
		return gosql.NullValue, nil
	}
	return gosql.BoolValue(order == gosql.Equal), nil
}

func (e *Equals) SQL() string {
	return e.left.SQL() + " = " + e.right.SQL()
}

func (e *Equals) IsEverything(v gosql.Visitor) bool {
	return e.left.IsEverything(v) && e.right.IsEverything(v)
}

// Not negates a boolean-valued expression.
type Not struct {
	child gosql.Expression
}

// NewNot builds NOT child.
func NewNot(child gosql.Expression) *Not {
	return &Not{child: child}
}

func (n *Not) Evaluate(ctx *gosql.Context) (gosql.Value, error) {
	v, err := n.child.Evaluate(ctx)
	if err != nil {
		return gosql.Value{}, err
	}
	if v.IsNull() {
		return gosql.NullValue, nil
	}
	b, _ := v.CompareTo(gosql.BoolValue(true), gosql.DefaultCompareMode, gosql.EqualStandard)
	return gosql.BoolValue(b != gosql.Equal), nil
}

func (n *Not) SQL() string {
	return "NOT(" + n.child.SQL() + ")"
}

func (n *Not) IsEverything(v gosql.Visitor) bool {
	return n.child.IsEverything(v)
}

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
	"github.com/shopspring/decimal"

	gosql "github.com/sqlcore/indexcond/sql"
)

// Column is a fixture sql.Column with a declared ValueKind. Convert
// coerces within a type family (numeric<->numeric) and passes through an
// exact Kind match; anything else fails with ErrInvalidClass, mirroring
// the teacher's column.convert contract (spec.md §3).
type Column struct {
	table     *Table
	name      string
	kind      gosql.ValueKind
	collation gosql.CollationID
}

// NewColumn declares a column of kind owned by table.
func NewColumn(table *Table, name string, kind gosql.ValueKind) *Column {
	return &Column{table: table, name: name, kind: kind}
}

// NewStringColumn declares a STRING column with an explicit collation.
func NewStringColumn(table *Table, name string, collation gosql.CollationID) *Column {
	return &Column{table: table, name: name, kind: gosql.KindString, collation: collation}
}

func (c *Column) SQL() string {
	return c.table.Name() + "." + c.name
}

func (c *Column) Table() gosql.Table { return c.table }

func (c *Column) Convert(v gosql.Value) (gosql.Value, error) {
	if v.IsNull() {
		return gosql.NullValue, nil
	}
	if v.Kind == c.kind {
		if c.kind == gosql.KindString {
			return gosql.StringValue(v.String(), c.collation), nil
		}
		return v, nil
	}
	if c.kind.IsNumeric() && v.Kind.IsNumeric() {
		return convertNumeric(v, c.kind)
	}
	return gosql.Value{}, gosql.ErrInvalidClass.New(c.SQL(), v.Kind)
}

func convertNumeric(v gosql.Value, target gosql.ValueKind) (gosql.Value, error) {
	switch target {
	case gosql.KindInt64:
		return gosql.Int64Value(int64(v.Float())), nil
	case gosql.KindUint64:
		f := v.Float()
		if f < 0 {
			return gosql.Value{}, gosql.ErrInvalidClass.New("column", v.Kind)
		}
		return gosql.Uint64Value(uint64(f)), nil
	case gosql.KindFloat64:
		return gosql.Float64Value(v.Float()), nil
	case gosql.KindDecimal:
		return gosql.DecimalValue(decimal.NewFromFloat(v.Float())), nil
	case gosql.KindYear:
		return gosql.YearValue(int64(v.Float())), nil
	default:
		return gosql.Value{}, gosql.ErrInvalidClass.New("column", v.Kind)
	}
}

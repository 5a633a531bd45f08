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

// TableKind classifies the table a Column belongs to. Only REGULAR tables
// permit certain IN combinations to drive index access; see
// IndexCondition.Mask.
type TableKind uint8

const (
	TableRegular TableKind = iota
	TableView
	TableFunctionTable
	TableSystemTable
	TableExternal
)

func (k TableKind) String() string {
	switch k {
	case TableRegular:
		return "REGULAR"
	case TableView:
		return "VIEW"
	case TableFunctionTable:
		return "FUNCTION_TABLE"
	case TableSystemTable:
		return "SYSTEM_TABLE"
	case TableExternal:
		return "EXTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Table is the minimal table identity an index condition's Column needs:
// a name (for SQL rendering) and a kind (for the IN-peer mask rule).
type Table interface {
	Name() string
	Kind() TableKind
}

// Column is the narrow interface this module consumes from the
// catalog/type layer (see spec.md §6). ICs never construct or mutate a
// Column; they only read identity and ask it to convert a Value.
type Column interface {
	// SQL renders the column's identifier for EXPLAIN text, e.g. "t.a".
	SQL() string

	// Convert coerces an arbitrary Value to this column's declared type,
	// or fails with ErrInvalidClass when the coercion is unsupported.
	Convert(Value) (Value, error)

	// Table returns the table that owns this column.
	Table() Table
}

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

// Package memory provides in-memory Table/Column/Query fixtures that
// satisfy the sql package's narrow collaborator interfaces, in the style
// of the teacher's mem and test_util packages: just enough of a catalog
// and expression tree to exercise the index-condition core end to end,
// never a real storage engine.
package memory

import (
	gosql "github.com/sqlcore/indexcond/sql"
)

// Table is a fixture sql.Table.
type Table struct {
	name string
	kind gosql.TableKind
}

// NewTable returns a fixture table of the given kind.
func NewTable(name string, kind gosql.TableKind) *Table {
	return &Table{name: name, kind: kind}
}

func (t *Table) Name() string          { return t.name }
func (t *Table) Kind() gosql.TableKind { return t.kind }

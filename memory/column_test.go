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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore/indexcond/memory"
	gosql "github.com/sqlcore/indexcond/sql"
)

func TestConvertSameKindPassthrough(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	col := memory.NewColumn(table, "a", gosql.KindInt64)

	v, err := col.Convert(gosql.Int64Value(5))
	require.NoError(t, err)
	assert.Equal(t, gosql.Int64Value(5), v)
}

func TestConvertNullAlwaysAllowed(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	col := memory.NewColumn(table, "a", gosql.KindInt64)

	v, err := col.Convert(gosql.NullValue)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestConvertNumericFamily(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	col := memory.NewColumn(table, "a", gosql.KindFloat64)

	v, err := col.Convert(gosql.Int64Value(5))
	require.NoError(t, err)
	assert.Equal(t, gosql.KindFloat64, v.Kind)
}

func TestConvertInvalidClass(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	col := memory.NewColumn(table, "a", gosql.KindInt64)

	_, err := col.Convert(gosql.StringValue("not a number", gosql.Collation_Default))
	require.Error(t, err)
	assert.True(t, gosql.ErrInvalidClass.Is(err))
}

func TestTableKindString(t *testing.T) {
	assert.Equal(t, "REGULAR", gosql.TableRegular.String())
	assert.Equal(t, "VIEW", gosql.TableView.String())
}

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

package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore/indexcond/memory"
	gosql "github.com/sqlcore/indexcond/sql"
	"github.com/sqlcore/indexcond/sql/condition"
	"github.com/sqlcore/indexcond/sql/expression"
)

func lit(i int64) gosql.Expression { return expression.NewLiteral(gosql.Int64Value(i)) }

// Worked example 2 from spec.md §4.8: a lower and an upper bound fold to
// separate Lower/Upper on one column.
func TestFoldRangeBounds(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	colA := memory.NewColumn(table, "a", gosql.KindInt64)

	ic1 := gosql.NewIndexCondition(gosql.BIGGER_EQUAL, colA, lit(10))
	ic2 := gosql.NewIndexCondition(gosql.SMALLER, colA, lit(20))

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	c := condition.NewCollector(gosql.DefaultCompareMode, nil)
	summaries, err := c.Fold(ctx, []gosql.IndexCondition{ic1, ic2})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	require.NotNil(t, s.Lower)
	require.NotNil(t, s.Upper)
	assert.Equal(t, "10", s.Lower.Value.String())
	assert.True(t, s.Lower.Inclusive)
	assert.Equal(t, "20", s.Upper.Value.String())
	assert.False(t, s.Upper.Inclusive)
	assert.Equal(t, gosql.RANGE, s.Mask())
}

// Worked example 3: contradictory equalities fold to ALWAYS_FALSE.
func TestFoldContradictoryEqualities(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	colA := memory.NewColumn(table, "a", gosql.KindInt64)

	ic1 := gosql.NewIndexCondition(gosql.EQUAL, colA, lit(1))
	ic2 := gosql.NewIndexCondition(gosql.EQUAL, colA, lit(2))

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	c := condition.NewCollector(gosql.DefaultCompareMode, nil)
	summaries, err := c.Fold(ctx, []gosql.IndexCondition{ic1, ic2})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].AlwaysFalse)
	assert.Equal(t, gosql.ALWAYS_FALSE, summaries[0].Mask())
}

// A tighter bound on the same side wins.
func TestFoldTightensBounds(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	colA := memory.NewColumn(table, "a", gosql.KindInt64)

	ic1 := gosql.NewIndexCondition(gosql.BIGGER, colA, lit(5))
	ic2 := gosql.NewIndexCondition(gosql.BIGGER_EQUAL, colA, lit(10))
	ic3 := gosql.NewIndexCondition(gosql.SMALLER_EQUAL, colA, lit(30))
	ic4 := gosql.NewIndexCondition(gosql.SMALLER, colA, lit(25))

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	c := condition.NewCollector(gosql.DefaultCompareMode, nil)
	summaries, err := c.Fold(ctx, []gosql.IndexCondition{ic1, ic2, ic3, ic4})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "10", s.Lower.Value.String())
	assert.True(t, s.Lower.Inclusive)
	assert.Equal(t, "25", s.Upper.Value.String())
	assert.False(t, s.Upper.Inclusive)
}

func TestFoldAlwaysFalsePredicate(t *testing.T) {
	ctx := memory.NewContext(gosql.DefaultCompareMode)
	c := condition.NewCollector(gosql.DefaultCompareMode, nil)
	summaries, err := c.Fold(ctx, []gosql.IndexCondition{gosql.NewFalseCondition()})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].AlwaysFalse)
	assert.Nil(t, summaries[0].Column)
}

// Two IN_LIST conditions on the same column fold to their intersection,
// not to whichever one happens to be folded last.
func TestFoldIntersectsRepeatedInList(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	colA := memory.NewColumn(table, "a", gosql.KindInt64)

	ic1 := gosql.NewInListCondition(colA, []gosql.Expression{lit(1), lit(2), lit(3)})
	ic2 := gosql.NewInListCondition(colA, []gosql.Expression{lit(2), lit(3), lit(4)})

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	c := condition.NewCollector(gosql.DefaultCompareMode, nil)
	summaries, err := c.Fold(ctx, []gosql.IndexCondition{ic1, ic2})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	require.NotNil(t, summaries[0].In)
	require.Len(t, summaries[0].In.List, 2)
	assert.Equal(t, "2", summaries[0].In.List[0].String())
	assert.Equal(t, "3", summaries[0].In.List[1].String())
}

func TestIntersectInLists(t *testing.T) {
	mode := gosql.DefaultCompareMode
	a := []gosql.Value{gosql.Int64Value(1), gosql.Int64Value(2), gosql.Int64Value(3)}
	b := []gosql.Value{gosql.Int64Value(2), gosql.Int64Value(3), gosql.Int64Value(4)}
	out := condition.IntersectInLists(a, b, mode)
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[0].String())
	assert.Equal(t, "3", out[1].String())
}

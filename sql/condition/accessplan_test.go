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
)

// P8: a composite index with two leading equalities and a trailing range
// column reports the expected usable prefix.
func TestBuildAccessPlanUsablePrefix(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	c0 := memory.NewColumn(table, "c0", gosql.KindInt64)
	c1 := memory.NewColumn(table, "c1", gosql.KindInt64)
	c2 := memory.NewColumn(table, "c2", gosql.KindInt64)

	index := condition.PlannerIndex{Columns: []gosql.Column{c0, c1, c2}, Table: table}

	conditions := []gosql.IndexCondition{
		gosql.NewIndexCondition(gosql.EQUAL, c0, lit(1)),
		gosql.NewIndexCondition(gosql.EQUAL, c1, lit(2)),
		gosql.NewIndexCondition(gosql.BIGGER, c2, lit(3)),
	}

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	collector := condition.NewCollector(gosql.DefaultCompareMode, nil)
	plan, err := condition.BuildAccessPlan(ctx, collector, index, conditions)
	require.NoError(t, err)

	assert.Equal(t, 3, plan.UsablePrefix)
	assert.Equal(t, gosql.EQUALITY|gosql.START, plan.Mask)
}

// A gap in the column prefix stops usable-prefix growth at the gap.
func TestBuildAccessPlanStopsAtGap(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	c0 := memory.NewColumn(table, "c0", gosql.KindInt64)
	c1 := memory.NewColumn(table, "c1", gosql.KindInt64)
	c2 := memory.NewColumn(table, "c2", gosql.KindInt64)

	index := condition.PlannerIndex{Columns: []gosql.Column{c0, c1, c2}, Table: table}
	conditions := []gosql.IndexCondition{
		gosql.NewIndexCondition(gosql.EQUAL, c0, lit(1)),
		gosql.NewIndexCondition(gosql.EQUAL, c2, lit(3)),
	}

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	collector := condition.NewCollector(gosql.DefaultCompareMode, nil)
	plan, err := condition.BuildAccessPlan(ctx, collector, index, conditions)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.UsablePrefix)
}

func TestBuildAccessPlanAlwaysFalse(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	c0 := memory.NewColumn(table, "c0", gosql.KindInt64)
	index := condition.PlannerIndex{Columns: []gosql.Column{c0}, Table: table}

	conditions := []gosql.IndexCondition{
		gosql.NewIndexCondition(gosql.EQUAL, c0, lit(1)),
		gosql.NewIndexCondition(gosql.EQUAL, c0, lit(2)),
	}

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	collector := condition.NewCollector(gosql.DefaultCompareMode, nil)
	plan, err := condition.BuildAccessPlan(ctx, collector, index, conditions)
	require.NoError(t, err)
	assert.Equal(t, gosql.ALWAYS_FALSE, plan.Mask)
}

// P9: EXPLAIN output is stable across repeated calls.
func TestExplainFoldStable(t *testing.T) {
	table := memory.NewTable("t", gosql.TableRegular)
	c0 := memory.NewColumn(table, "c0", gosql.KindInt64)
	index := condition.PlannerIndex{Columns: []gosql.Column{c0}, Table: table}
	conditions := []gosql.IndexCondition{gosql.NewIndexCondition(gosql.EQUAL, c0, lit(1))}

	ctx := memory.NewContext(gosql.DefaultCompareMode)
	collector := condition.NewCollector(gosql.DefaultCompareMode, nil)
	plan, err := condition.BuildAccessPlan(ctx, collector, index, conditions)
	require.NoError(t, err)

	assert.Equal(t, condition.ExplainFold(plan), condition.ExplainFold(plan))
	assert.Contains(t, condition.ExplainFold(plan), "t.c0 = 1")
}

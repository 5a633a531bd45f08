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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gosql "github.com/sqlcore/indexcond/sql"
)

func TestNullComparisonUnderEqual(t *testing.T) {
	_, ok := gosql.NullValue.CompareTo(gosql.Int64Value(1), gosql.DefaultCompareMode, gosql.EqualStandard)
	assert.False(t, ok)
}

func TestNullComparisonUnderEqualNullSafe(t *testing.T) {
	order, ok := gosql.NullValue.CompareTo(gosql.NullValue, gosql.DefaultCompareMode, gosql.EqualNullSafe)
	assert.True(t, ok)
	assert.Equal(t, gosql.Equal, order)
}

func TestStringCollationCaseInsensitive(t *testing.T) {
	a := gosql.StringValue("ABC", gosql.Collation_utf8mb4_general_ci)
	b := gosql.StringValue("abc", gosql.Collation_utf8mb4_general_ci)
	order, ok := a.CompareTo(b, gosql.DefaultCompareMode, gosql.EqualStandard)
	assert.True(t, ok)
	assert.Equal(t, gosql.Equal, order)
}

func TestStringCollationCaseSensitiveBinary(t *testing.T) {
	a := gosql.StringValue("ABC", gosql.Collation_utf8mb4_bin)
	b := gosql.StringValue("abc", gosql.Collation_utf8mb4_bin)
	order, ok := a.CompareTo(b, gosql.DefaultCompareMode, gosql.EqualStandard)
	assert.True(t, ok)
	assert.NotEqual(t, gosql.Equal, order)
}

func TestCrossFamilyNumericComparison(t *testing.T) {
	order, ok := gosql.Int64Value(5).CompareTo(gosql.Float64Value(5.0), gosql.DefaultCompareMode, gosql.EqualStandard)
	assert.True(t, ok)
	assert.Equal(t, gosql.Equal, order)
}

func TestStrengthOverridesCaseInsensitiveCollation(t *testing.T) {
	a := gosql.StringValue("ABC", gosql.Collation_utf8mb4_general_ci)
	b := gosql.StringValue("abc", gosql.Collation_utf8mb4_general_ci)

	mode := gosql.DefaultCompareMode
	mode.Strength = 3
	order, ok := a.CompareTo(b, mode, gosql.EqualStandard)
	assert.True(t, ok)
	assert.NotEqual(t, gosql.Equal, order)
}

func TestStrengthDoesNotWeakenBinaryCollation(t *testing.T) {
	a := gosql.StringValue("ABC", gosql.Collation_utf8mb4_bin)
	b := gosql.StringValue("abc", gosql.Collation_utf8mb4_bin)

	mode := gosql.DefaultCompareMode
	mode.Strength = 1
	order, ok := a.CompareTo(b, mode, gosql.EqualStandard)
	assert.True(t, ok)
	assert.NotEqual(t, gosql.Equal, order)
}

func TestBinaryUnsignedControlsByteOrdering(t *testing.T) {
	a := gosql.BytesValue([]byte{0x80})
	b := gosql.BytesValue([]byte{0x7F})

	unsigned := gosql.DefaultCompareMode
	unsigned.BinaryUnsigned = true
	order, ok := a.CompareTo(b, unsigned, gosql.EqualStandard)
	assert.True(t, ok)
	assert.Equal(t, gosql.Greater, order, "0x80 > 0x7F as unsigned octets")

	signed := gosql.DefaultCompareMode
	signed.BinaryUnsigned = false
	order, ok = a.CompareTo(b, signed, gosql.EqualStandard)
	assert.True(t, ok)
	assert.Equal(t, gosql.Less, order, "0x80 < 0x7F once treated as signed int8 (-128 < 127)")
}

func TestCrossFamilyOrderIsStable(t *testing.T) {
	order1, _ := gosql.BoolValue(true).CompareTo(gosql.StringValue("x", gosql.Collation_Default), gosql.DefaultCompareMode, gosql.EqualStandard)
	order2, _ := gosql.BoolValue(true).CompareTo(gosql.StringValue("x", gosql.Collation_Default), gosql.DefaultCompareMode, gosql.EqualStandard)
	assert.Equal(t, order1, order2)
}

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

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind tags the variant held by a Value. Value is a closed sum: every
// Kind below is produced only by this package's own constructors, which
// removes the foreign-subtype attack surface the teacher's JDBC layer has
// to defend against at class-load time (see the InvalidClass design note
// in DESIGN.md).
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindBool
	KindInt64
	KindUint64
	KindDecimal
	KindFloat64
	KindString
	KindBytes
	KindDate
	KindDatetime
	KindTime
	KindYear
)

// CompareOrder is the result of comparing two Values: negative, zero, or
// positive, in the usual strcmp convention.
type CompareOrder int

const (
	Less    CompareOrder = -1
	Equal   CompareOrder = 0
	Greater CompareOrder = 1
)

// Value is a tagged SQL scalar. Exactly one of the typed fields below is
// meaningful, selected by Kind; the zero Value is SQL NULL.
type Value struct {
	Kind ValueKind

	boolVal  bool
	intVal   int64
	uintVal  uint64
	decVal   decimal.Decimal
	floatVal float64
	strVal   string
	collate  CollationID
	bytesVal []byte
	timeVal  time.Time
}

var valueKindNames = map[ValueKind]string{
	KindNull:     "NULL",
	KindBool:     "BOOL",
	KindInt64:    "INT64",
	KindUint64:   "UINT64",
	KindDecimal:  "DECIMAL",
	KindFloat64:  "FLOAT64",
	KindString:   "STRING",
	KindBytes:    "BYTES",
	KindDate:     "DATE",
	KindDatetime: "DATETIME",
	KindTime:     "TIME",
	KindYear:     "YEAR",
}

func (k ValueKind) String() string { return valueKindNames[k] }

// NullValue is the canonical SQL NULL.
var NullValue = Value{Kind: KindNull}

func BoolValue(b bool) Value   { return Value{Kind: KindBool, boolVal: b} }
func Int64Value(i int64) Value { return Value{Kind: KindInt64, intVal: i} }
func Uint64Value(u uint64) Value { return Value{Kind: KindUint64, uintVal: u} }
func DecimalValue(d decimal.Decimal) Value { return Value{Kind: KindDecimal, decVal: d} }
func Float64Value(f float64) Value { return Value{Kind: KindFloat64, floatVal: f} }
func BytesValue(b []byte) Value { return Value{Kind: KindBytes, bytesVal: b} }
func DateValue(t time.Time) Value     { return Value{Kind: KindDate, timeVal: t} }
func DatetimeValue(t time.Time) Value { return Value{Kind: KindDatetime, timeVal: t} }
func TimeValue(t time.Time) Value     { return Value{Kind: KindTime, timeVal: t} }
func YearValue(y int64) Value         { return Value{Kind: KindYear, intVal: y} }

// StringValue builds a collation-aware STRING value.
func StringValue(s string, collation CollationID) Value {
	return Value{Kind: KindString, strVal: s, collate: collation}
}

// IsNull reports whether the Value is SQL NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return fmt.Sprintf("%t", v.boolVal)
	case KindInt64:
		return fmt.Sprintf("%d", v.intVal)
	case KindUint64:
		return fmt.Sprintf("%d", v.uintVal)
	case KindDecimal:
		return v.decVal.String()
	case KindFloat64:
		return fmt.Sprintf("%v", v.floatVal)
	case KindString:
		return v.strVal
	case KindBytes:
		return fmt.Sprintf("%x", v.bytesVal)
	case KindDate, KindDatetime, KindTime:
		return v.timeVal.String()
	case KindYear:
		return fmt.Sprintf("%d", v.intVal)
	default:
		return "?"
	}
}

// familyRank orders the type families for cross-family comparisons. The
// ordering need only be stable, not semantically meaningful: NULL sorts
// lowest, then booleans, numerics, strings/bytes, then temporal kinds.
func (k ValueKind) familyRank() int {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt64, KindUint64, KindDecimal, KindFloat64, KindYear:
		return 2
	case KindString, KindBytes:
		return 3
	case KindDate, KindDatetime, KindTime:
		return 4
	default:
		return 5
	}
}

func (k ValueKind) isNumeric() bool {
	switch k {
	case KindInt64, KindUint64, KindDecimal, KindFloat64, KindYear:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of this Kind participate in
// cross-family numeric comparison and conversion.
func (k ValueKind) IsNumeric() bool { return k.isNumeric() }

// Float returns the value as a float64, for numeric Kinds only. It is
// intended for coercion helpers outside this package (e.g. a Column's
// Convert), not for comparison, which must stay collation/precision
// aware and goes through CompareTo.
func (v Value) Float() float64 { return v.numeric() }

func (v Value) numeric() float64 {
	switch v.Kind {
	case KindInt64, KindYear:
		return float64(v.intVal)
	case KindUint64:
		return float64(v.uintVal)
	case KindDecimal:
		f, _ := v.decVal.Float64()
		return f
	case KindFloat64:
		return v.floatVal
	default:
		return 0
	}
}

// CompareEqualMode selects how NULL participates in equality comparisons,
// mirroring the EQUAL vs EQUAL_NULL_SAFE distinction in the comparison
// operator algebra (C4).
type CompareEqualMode int

const (
	// EqualStandard: NULL is unordered and never equal to anything,
	// including another NULL (standard SQL EQUAL).
	EqualStandard CompareEqualMode = iota
	// EqualNullSafe: NULL compares equal to NULL (EQUAL_NULL_SAFE / IS).
	EqualNullSafe
)

// CompareTo totally orders two Values within a type family, and
// deterministically (if not meaningfully) across families, under the
// given CompareMode. It returns ok=false only under EqualStandard when
// either side is NULL, since that comparison is not a total order -- NULL
// is simply unordered against everything, including itself.
func (v Value) CompareTo(other Value, mode CompareMode, eqMode CompareEqualMode) (order CompareOrder, ok bool) {
	if v.Kind == KindNull || other.Kind == KindNull {
		if eqMode == EqualNullSafe {
			switch {
			case v.Kind == KindNull && other.Kind == KindNull:
				return Equal, true
			case v.Kind == KindNull:
				return Less, true
			default:
				return Greater, true
			}
		}
		if v.Kind == KindNull && other.Kind == KindNull {
			// Stable, but not a meaningful order: NULL = NULL answers
			// "unknown" under EQUAL, not "equal". Report Equal so the
			// order stays deterministic, while still returning ok=false
			// to callers asking about SQL equality.
			return Equal, false
		}
		if v.Kind == KindNull {
			return Less, false
		}
		return Greater, false
	}

	if v.Kind == other.Kind {
		o := v.compareSameKind(other, mode)
		return o, true
	}

	if v.Kind.isNumeric() && other.Kind.isNumeric() {
		a, b := v.numeric(), other.numeric()
		switch {
		case a < b:
			return Less, true
		case a > b:
			return Greater, true
		default:
			return Equal, true
		}
	}

	fr, or := v.Kind.familyRank(), other.Kind.familyRank()
	switch {
	case fr < or:
		return Less, true
	case fr > or:
		return Greater, true
	default:
		return Equal, true
	}
}

func (v Value) compareSameKind(other Value, mode CompareMode) CompareOrder {
	switch v.Kind {
	case KindBool:
		return boolOrder(v.boolVal, other.boolVal)
	case KindInt64, KindYear:
		return intOrder(v.intVal, other.intVal)
	case KindUint64:
		return uintOrder(v.uintVal, other.uintVal)
	case KindDecimal:
		return CompareOrder(v.decVal.Cmp(other.decVal))
	case KindFloat64:
		return floatOrder(v.floatVal, other.floatVal)
	case KindString:
		a := v.collate.sortKey(v.strVal, mode.Strength)
		b := other.collate.sortKey(other.strVal, mode.Strength)
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	case KindBytes:
		if mode.BinaryUnsigned {
			return CompareOrder(bytes.Compare(v.bytesVal, other.bytesVal))
		}
		return compareBytesSigned(v.bytesVal, other.bytesVal)
	case KindDate, KindDatetime, KindTime:
		switch {
		case v.timeVal.Before(other.timeVal):
			return Less
		case v.timeVal.After(other.timeVal):
			return Greater
		default:
			return Equal
		}
	default:
		return Equal
	}
}

func boolOrder(a, b bool) CompareOrder {
	if a == b {
		return Equal
	}
	if !a && b {
		return Less
	}
	return Greater
}

func intOrder(a, b int64) CompareOrder {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func uintOrder(a, b uint64) CompareOrder {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// compareBytesSigned orders two byte strings the way BinaryUnsigned ==
// false asks for: each byte compared as a signed int8 rather than as an
// unsigned octet, the way bytes.Compare effectively treats them. The two
// orderings only disagree when a byte's high bit is set, i.e. values
// 0x80-0xFF sort before 0x00-0x7F here instead of after.
func compareBytesSigned(a, b []byte) CompareOrder {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, bi := int8(a[i]), int8(b[i])
		switch {
		case ai < bi:
			return Less
		case ai > bi:
			return Greater
		}
	}
	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	default:
		return Equal
	}
}

func floatOrder(a, b float64) CompareOrder {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

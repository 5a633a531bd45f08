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

import "strings"

// CollationID names a string collation known to this module. It is a
// deliberately small catalog -- just enough to total-order STRING values
// the way a real collation engine would -- not a reimplementation of
// MySQL's ~300-entry collation table, which belongs to the type/charset
// subsystem this module does not own.
type CollationID uint16

const (
	Collation_Unspecified CollationID = iota
	Collation_binary
	Collation_utf8mb4_bin
	Collation_utf8mb4_general_ci
	Collation_utf8mb4_unicode_ci
	Collation_ascii_general_ci
)

// Collation_Default is used whenever a Value carries no explicit collation.
const Collation_Default = Collation_utf8mb4_general_ci

var collationNames = map[CollationID]string{
	Collation_Unspecified:        "",
	Collation_binary:             "binary",
	Collation_utf8mb4_bin:        "utf8mb4_bin",
	Collation_utf8mb4_general_ci: "utf8mb4_general_ci",
	Collation_utf8mb4_unicode_ci: "utf8mb4_unicode_ci",
	Collation_ascii_general_ci:   "ascii_general_ci",
}

func (c CollationID) String() string {
	return collationNames[c]
}

// CaseSensitive reports whether two strings that differ only in case are
// distinct under this collation.
func (c CollationID) CaseSensitive() bool {
	switch c {
	case Collation_binary, Collation_utf8mb4_bin:
		return true
	default:
		return false
	}
}

// sortKey returns the string this collation should compare under the
// given Strength, normalized so that plain byte comparison reproduces
// the collation's order. This is intentionally simple (case-folding
// only); it is not a Unicode collation algorithm implementation.
func (c CollationID) sortKey(s string, strength int) string {
	if c.effectiveCaseSensitive(strength) {
		return s
	}
	return strings.ToLower(s)
}

// effectiveCaseSensitive folds a CompareMode's Strength into this
// collation's own case sensitivity. A binary collation (binary,
// utf8mb4_bin) is always case-sensitive regardless of Strength -- it has
// no notion of a weaker comparison level. A case-insensitive collation
// (the _ci family) honors Strength as an ICU-style override: Strength 3
// (tertiary, case-sensitive) forces exact comparison even under a _ci
// collation; anything below that keeps the collation's own
// case-insensitive behavior.
func (c CollationID) effectiveCaseSensitive(strength int) bool {
	if c.CaseSensitive() {
		return true
	}
	return strength >= 3
}

// CompareMode is the value-level configuration governing how two Values
// are totally ordered: a collation identifier (Value.CompareTo does not
// consult it; each STRING Value is compared under its own collation), a
// Strength overriding how strictly collations honor case (see
// CollationID.effectiveCaseSensitive), and a flag controlling whether
// byte-string (BYTES) comparison treats the bytes as unsigned octets or
// as signed int8s. CompareMode is immutable for the lifetime of a
// database.
type CompareMode struct {
	Collation      CollationID
	Strength       int
	BinaryUnsigned bool
}

// DefaultCompareMode is the CompareMode used by fixtures and tests that
// don't care about collation specifics.
var DefaultCompareMode = CompareMode{
	Collation:      Collation_Default,
	Strength:       1,
	BinaryUnsigned: true,
}

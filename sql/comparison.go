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

// CompareType names the comparison operator an IndexCondition binds its
// column with. See spec.md §4.1 for the full operator/access-class table.
type CompareType int

const (
	EQUAL CompareType = iota
	EQUAL_NULL_SAFE
	BIGGER
	BIGGER_EQUAL
	SMALLER
	SMALLER_EQUAL
	IN_LIST
	IN_QUERY
	FALSE
)

var compareTypeNames = map[CompareType]string{
	EQUAL:           "=",
	EQUAL_NULL_SAFE: "IS",
	BIGGER:          ">",
	BIGGER_EQUAL:    ">=",
	SMALLER:         "<",
	SMALLER_EQUAL:   "<=",
	IN_LIST:         "IN",
	IN_QUERY:        "IN",
	FALSE:           "FALSE",
}

// Symbol returns the operator's SQL rendering, used by IndexCondition.SQL.
// IN_LIST and IN_QUERY are rendered with their own "col IN(...)" forms,
// not through this symbol table, but it is included here for
// completeness and for callers outside this package building their own
// explain output.
func (t CompareType) Symbol() string {
	return compareTypeNames[t]
}

// AccessMask bits describe how an IndexCondition can drive index access.
type AccessMask int

const (
	EQUALITY     AccessMask = 1
	START        AccessMask = 2
	END          AccessMask = 4
	ALWAYS_FALSE AccessMask = 8
)

// RANGE is the combination of both bound directions.
const RANGE = START | END

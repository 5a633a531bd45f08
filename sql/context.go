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
	"context"

	"github.com/sirupsen/logrus"
)

// Database is the narrow per-connection view of the catalog this module
// needs: the CompareMode in effect for value ordering.
type Database interface {
	CompareMode() CompareMode
}

type staticDatabase struct {
	mode CompareMode
}

func (d staticDatabase) CompareMode() CompareMode { return d.mode }

// NewStaticDatabase returns a Database reporting a fixed CompareMode,
// useful for tests and for callers that don't need per-database
// collation overrides.
func NewStaticDatabase(mode CompareMode) Database {
	return staticDatabase{mode: mode}
}

// Context is the per-connection execution context an IC's
// CurrentValue/CurrentValueList/CurrentResult methods are handed. It owns
// exactly one execution thread for the duration of a query: ICs
// themselves are immutable and read-only shareable, but Context is not.
type Context struct {
	context.Context

	db     Database
	logger *logrus.Entry
}

// NewContext wraps a standard context.Context with the database handle
// and logger an index-condition evaluation needs. Cancellation is
// inherited entirely from the wrapped context.Context: there is no
// separate cancel flag.
func NewContext(ctx context.Context, db Database, logger *logrus.Entry) *Context {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Context{Context: ctx, db: db, logger: logger}
}

// Database returns the database handle carrying this session's
// CompareMode.
func (c *Context) Database() Database { return c.db }

// Logger returns the structured logger for this session.
func (c *Context) Logger() *logrus.Entry { return c.logger }

// WithContext returns a shallow copy of c carrying a different
// context.Context, e.g. one enriched with a tracing span. The database
// handle and logger are unchanged.
func (c *Context) WithContext(ctx context.Context) *Context {
	cp := *c
	cp.Context = ctx
	return &cp
}

// Cancelled reports whether the session's execution has been cancelled.
// IndexCondition's CurrentValue, CurrentValueList and CurrentResult check
// it before calling into an Expression or Query, and memory.Subquery's
// Execute checks it at entry.
func (c *Context) Cancelled() bool {
	select {
	case <-c.Done():
		return true
	default:
		return false
	}
}

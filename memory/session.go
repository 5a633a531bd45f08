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

package memory

import (
	"context"

	"github.com/sirupsen/logrus"

	gosql "github.com/sqlcore/indexcond/sql"
)

// NewContext returns a sql.Context suitable for tests and fixtures: the
// given CompareMode, a background context.Context, and a silenced
// logger.
func NewContext(mode gosql.CompareMode) *gosql.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return gosql.NewContext(context.Background(), gosql.NewStaticDatabase(mode), logger.WithField("component", "fixture"))
}

// NewCancelledContext returns a sql.Context whose embedded context.Context
// is already cancelled, for exercising the cancellation-propagation path.
func NewCancelledContext(mode gosql.CompareMode) *gosql.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return gosql.NewContext(ctx, gosql.NewStaticDatabase(mode), logger.WithField("component", "fixture"))
}

/*
 * Copyright 2026 the bedrock authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"sync"

	"github.com/uptrace/bun"
)

var (
	defaultManager     *ConnectionManager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide connection manager, creating it on first
// use. Applications that need more than one database should construct their
// own managers with NewConnectionManager.
func Default() *ConnectionManager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewConnectionManager()
	})
	return defaultManager
}

// Init initializes the default manager's engine.
func Init(config *ConnectionConfig) error {
	return Default().Init(config)
}

// Engine returns the default manager's bun engine.
func Engine() (*bun.DB, error) {
	return Default().Engine()
}

// GetSession checks out a session from the default manager.
func GetSession(ctx context.Context) (*Session, error) {
	return Default().GetSession(ctx)
}

// ScopedSession runs fn in a managed session on the default manager.
func ScopedSession(ctx context.Context, fn func(ctx context.Context, sess *Session) error) error {
	return Default().ScopedSession(ctx, fn)
}

// HealthCheck probes the default manager's database.
func HealthCheck(ctx context.Context) bool {
	return Default().HealthCheck(ctx)
}

// Close shuts down the default manager's engine.
func Close() error {
	return Default().Close()
}

// Stats returns pool statistics for the default manager.
func Stats() *DBStats {
	return Default().Stats()
}

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
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"bedrock/errs"
)

// ConnectionManager owns a database engine and hands out sessions bound to
// dedicated connections. It is safe for concurrent use; Init is idempotent,
// so callers may race on first use without coordination.
type ConnectionManager struct {
	mu     sync.RWMutex
	config *ConnectionConfig
	db     *bun.DB
	sqlDB  *sql.DB
	logger Logger
}

// NewConnectionManager returns an unconnected manager. The engine is created
// by the first call to Init.
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{logger: GetLogger()}
}

// Init creates the engine for the given configuration. Subsequent calls are
// no-ops even with a different configuration; Close first to reconfigure.
// The engine is created without touching the network, so Init succeeding does
// not prove the database is reachable. Use HealthCheck for that.
func (m *ConnectionManager) Init(config *ConnectionConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return nil
	}
	if config == nil {
		config = DefaultConnectionConfig()
	}

	sqlDB, db, err := m.openEngine(config)
	if err != nil {
		return fmt.Errorf("failed to create database engine: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	m.config = config
	m.sqlDB = sqlDB
	m.db = db

	m.logger.Info("Database engine initialized:", "type", config.Type, "host", config.Host)
	return nil
}

func (m *ConnectionManager) openEngine(config *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	var sqlDB *sql.DB
	var db *bun.DB
	var err error

	switch config.Type {
	case "mysql":
		sqlDB, err = sql.Open("mysql", config.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, mysqldialect.New())
		}
	case "postgres", "postgresql":
		sqlDB, err = sql.Open("postgres", config.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, pgdialect.New())
		}
	case "sqlite", "sqlite3":
		sqlDB, err = sql.Open(sqliteshim.ShimName, config.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, sqlitedialect.New())
		}
	default:
		return nil, nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}
	if err != nil {
		return nil, nil, err
	}

	// bundebug stays dormant unless the env variable enables it; Echo turns
	// on the module's own colorized statement log.
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))
	if config.Echo {
		db.AddQueryHook(NewQueryHook("BEDROCK_SQL"))
	}
	if config.SlowQueryTime > 0 {
		db.AddQueryHook(&slowQueryHook{
			slowTime: config.SlowQueryTime,
			logger:   m.logger,
		})
	}

	return sqlDB, db, nil
}

// Engine returns the shared bun engine, or ErrNotInitialized when Init has
// not been called.
func (m *ConnectionManager) Engine() (*bun.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, errs.ErrNotInitialized
	}
	return m.db, nil
}

// SQLDB returns the raw database/sql handle behind the engine.
func (m *ConnectionManager) SQLDB() (*sql.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sqlDB == nil {
		return nil, errs.ErrNotInitialized
	}
	return m.sqlDB, nil
}

// GetSession checks out a dedicated connection from the pool and wraps it in
// a Session. The caller owns the session and must Close it.
func (m *ConnectionManager) GetSession(ctx context.Context) (*Session, error) {
	db, err := m.Engine()
	if err != nil {
		return nil, err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return newSession(conn), nil
}

// ScopedSession runs fn with a session whose lifecycle is managed here: on
// error any open transaction is rolled back, and the session is always
// closed. A transaction left open by fn on the success path is rolled back
// by Close, so fn must Commit explicitly if it started one.
func (m *ConnectionManager) ScopedSession(ctx context.Context, fn func(ctx context.Context, sess *Session) error) error {
	sess, err := m.GetSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	if err := fn(ctx, sess); err != nil {
		if rbErr := sess.Rollback(); rbErr != nil {
			m.logger.Error("Session rollback failed", "error", rbErr)
		}
		return err
	}
	return nil
}

// HealthCheck reports whether the database answers a trivial query within
// five seconds. It never panics or returns an error; any failure is logged
// and reported as false.
func (m *ConnectionManager) HealthCheck(ctx context.Context) bool {
	db, err := m.Engine()
	if err != nil {
		return false
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	var one int
	if err := db.QueryRowContext(ctxTimeout, "SELECT 1").Scan(&one); err != nil {
		m.logger.Warn("Database health check failed", "error", err)
		return false
	}
	return true
}

// Stats returns pool statistics, zero-valued when uninitialized.
func (m *ConnectionManager) Stats() *DBStats {
	m.mu.RLock()
	sqlDB := m.sqlDB
	m.mu.RUnlock()

	if sqlDB == nil {
		return &DBStats{}
	}

	stats := sqlDB.Stats()
	return &DBStats{
		MaxOpenConns:      stats.MaxOpenConnections,
		OpenConns:         stats.OpenConnections,
		InUse:             stats.InUse,
		Idle:              stats.Idle,
		WaitCount:         stats.WaitCount,
		WaitDuration:      stats.WaitDuration,
		MaxIdleClosed:     stats.MaxIdleClosed,
		MaxIdleTimeClosed: stats.MaxIdleTimeClosed,
		MaxLifetimeClosed: stats.MaxLifetimeClosed,
	}
}

// Close tears down the engine and its pool. Closing an uninitialized or
// already closed manager is a no-op; after Close the manager may be
// re-initialized with a new configuration.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	err := m.db.Close()
	m.db = nil
	m.sqlDB = nil
	m.config = nil

	if err != nil {
		m.logger.Error("Failed to close database engine", "error", err)
		return err
	}
	m.logger.Info("Database engine closed")
	return nil
}

// SetLogger replaces the manager's logger. Hooks installed by a prior Init
// keep the logger they were created with.
func (m *ConnectionManager) SetLogger(logger Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if logger != nil {
		m.logger = logger
	}
}

type slowQueryHook struct {
	slowTime time.Duration
	logger   Logger
}

func (h *slowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *slowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if event.Err != nil {
		return
	}

	duration := time.Since(event.StartTime)
	if duration > h.slowTime && h.logger != nil {
		h.logger.Warn("Database slow query detected:",
			"duration", duration,
			"slow_threshold", h.slowTime,
			"query", event.Query,
		)
	}
}

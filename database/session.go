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

	"github.com/uptrace/bun"
)

// Session wraps a dedicated database connection, optionally carrying an
// explicit transaction. Statements issued through DB() run against the open
// transaction when one exists, or autocommit on the connection otherwise.
//
// A Session is not safe for concurrent use.
type Session struct {
	conn   bun.Conn
	tx     bun.Tx
	inTx   bool
	closed bool
}

func newSession(conn bun.Conn) *Session {
	return &Session{conn: conn}
}

// DB returns the handle queries should run on: the open transaction when one
// has been started, otherwise the underlying connection.
func (s *Session) DB() bun.IDB {
	if s.inTx {
		return s.tx
	}
	return s.conn
}

// InTx reports whether an explicit transaction is open.
func (s *Session) InTx() bool {
	return s.inTx
}

// Begin starts an explicit transaction on the session's connection. Calling
// Begin while a transaction is already open is a no-op.
func (s *Session) Begin(ctx context.Context) error {
	if s.inTx {
		return nil
	}
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	s.tx = tx
	s.inTx = true
	return nil
}

// Commit commits the open transaction. Without an open transaction it is a
// no-op: autocommit statements are already durable.
func (s *Session) Commit() error {
	if !s.inTx {
		return nil
	}
	s.inTx = false
	return s.tx.Commit()
}

// Rollback aborts the open transaction. Without an open transaction it is a
// no-op.
func (s *Session) Rollback() error {
	if !s.inTx {
		return nil
	}
	s.inTx = false
	return s.tx.Rollback()
}

// Close rolls back any open transaction and returns the connection to the
// pool. Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.inTx {
		s.inTx = false
		_ = s.tx.Rollback()
	}
	return s.conn.Close()
}

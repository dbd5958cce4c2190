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

package errs

import (
	"fmt"
	"net/http"
)

// Kind identifies an expected, caller-recoverable failure condition. Storage
// errors are never assigned a kind; they propagate as-is.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotInitialized: the connection manager was used before Init.
	KindNotInitialized
	// KindEmptySession: a repository was constructed without a session.
	KindEmptySession
	// KindNoModel: a repository was constructed for a type that is not an entity.
	KindNoModel
	// KindNotFound: a lookup by id or uuid matched no row.
	KindNotFound
	// KindNoUUIDSupport: a uuid operation on an entity type without the capability.
	KindNoUUIDSupport
	// KindNoPrimaryKey: an update payload carried neither id nor uuid.
	KindNoPrimaryKey
	// KindDeactivationNotSupported: toggle on an entity type without the capability.
	KindDeactivationNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindNotInitialized:
		return "not_initialized"
	case KindEmptySession:
		return "empty_session"
	case KindNoModel:
		return "no_model"
	case KindNotFound:
		return "not_found"
	case KindNoUUIDSupport:
		return "no_uuid_support"
	case KindNoPrimaryKey:
		return "no_primary_key"
	case KindDeactivationNotSupported:
		return "deactivation_not_supported"
	default:
		return "unknown"
	}
}

// Error carries a stable machine-readable kind plus a human-readable message.
// Callers map kinds to their own external representation; HTTPStatus provides
// the conventional mapping.
type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Message }

// Is matches by kind, so errors.Is(err, errs.ErrNotFound) holds for any
// not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// HTTPStatus maps the kind to an HTTP-like status code. Precondition and
// capability violations are client errors; wiring mistakes are server errors.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindNoUUIDSupport, KindNoPrimaryKey, KindDeactivationNotSupported:
		return http.StatusBadRequest
	case KindNotInitialized, KindEmptySession, KindNoModel:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Sentinel instances for errors.Is checks.
var (
	ErrNotInitialized           = New(KindNotInitialized, "database connection manager is not initialized")
	ErrEmptySession             = New(KindEmptySession, "repository requires a database session")
	ErrNoModel                  = New(KindNoModel, "repository requires an entity model")
	ErrNotFound                 = New(KindNotFound, "entity not found")
	ErrNoUUIDSupport            = New(KindNoUUIDSupport, "entity type does not support uuid lookup")
	ErrNoPrimaryKey             = New(KindNoPrimaryKey, "payload must contain either id or uuid")
	ErrDeactivationNotSupported = New(KindDeactivationNotSupported, "entity type does not support deactivation")
)

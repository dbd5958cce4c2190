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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := Newf(KindNotFound, "widget %d not found", 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrNoModel)
	assert.Equal(t, "widget 42 not found", err.Error())

	// Matching survives wrapping.
	wrapped := fmt.Errorf("lookup failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	assert.NotErrorIs(t, errors.New("widget 42 not found"), ErrNotFound)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrNoPrimaryKey.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrNoUUIDSupport.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrDeactivationNotSupported.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrNotInitialized.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrEmptySession.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrNoModel.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, New(KindUnknown, "x").HTTPStatus())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "no_primary_key", KindNoPrimaryKey.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

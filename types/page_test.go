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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationDefaults(t *testing.T) {
	var nav *Navigation
	assert.Equal(t, DefaultLimit, nav.GetLimit())
	assert.Equal(t, 0, nav.GetOffset())

	nav = &Navigation{Limit: -5, Offset: -3}
	assert.Equal(t, DefaultLimit, nav.GetLimit())
	assert.Equal(t, 0, nav.GetOffset())

	nav = &Navigation{Limit: 25, Offset: 50}
	assert.Equal(t, 25, nav.GetLimit())
	assert.Equal(t, 50, nav.GetOffset())
}

func TestSort(t *testing.T) {
	var sort *Sort
	assert.True(t, sort.IsZero())
	assert.True(t, (&Sort{}).IsZero())
	assert.False(t, (&Sort{Field: "name"}).IsZero())

	assert.Equal(t, "name ASC", (&Sort{Field: "name"}).OrderExpr("name"))
	assert.Equal(t, "name ASC", (&Sort{Field: "name", Direction: SortAsc}).OrderExpr("name"))
	assert.Equal(t, "name DESC", (&Sort{Field: "name", Direction: SortDesc}).OrderExpr("name"))
	assert.Equal(t, "name DESC", (&Sort{Field: "name", Direction: "DESC"}).OrderExpr("name"))
}

func TestPageRequest(t *testing.T) {
	req := NewPageRequest(3, 20, nil)
	assert.Equal(t, 3, req.GetPage())
	assert.Equal(t, 20, req.GetPageSize())
	assert.Equal(t, 40, req.GetOffset())
	assert.Nil(t, req.GetSort())

	// Out-of-range values fall back to page 1, size 10.
	req = NewDefaultPageRequest(0, -1)
	assert.Equal(t, 1, req.GetPage())
	assert.Equal(t, 10, req.GetPageSize())
	assert.Equal(t, 0, req.GetOffset())
}

func TestNewDefaultPagination(t *testing.T) {
	p := NewDefaultPagination[int](2, 10)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Total)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

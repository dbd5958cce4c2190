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

import "strings"

// DefaultLimit caps list results when the caller does not ask for a specific
// window. No upper bound is enforced on caller-supplied limits here.
const DefaultLimit = 100

// Navigation is a limit/offset window applied after filters and sorting.
type Navigation struct {
	Limit  int
	Offset int
}

// GetLimit returns the requested limit, falling back to DefaultLimit when
// unset or non-positive.
func (n *Navigation) GetLimit() int {
	if n == nil || n.Limit < 1 {
		return DefaultLimit
	}
	return n.Limit
}

// GetOffset returns the requested offset, never negative.
func (n *Navigation) GetOffset() int {
	if n == nil || n.Offset < 0 {
		return 0
	}
	return n.Offset
}

// SortDirection is the order applied to a single sort field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort names a single field and direction. A zero Sort leaves row order to
// the backing store.
type Sort struct {
	Field     string
	Direction SortDirection
}

// IsZero reports whether no sort was requested.
func (s *Sort) IsZero() bool {
	return s == nil || s.Field == ""
}

// OrderExpr renders the sort as a SQL order expression for the given column
// name. Any direction other than desc is treated as ascending.
func (s *Sort) OrderExpr(column string) string {
	dir := "ASC"
	if strings.EqualFold(string(s.Direction), string(SortDesc)) {
		dir = "DESC"
	}
	return column + " " + dir
}

// PageRequest describes page-number-based pagination for Page queries.
type PageRequest struct {
	page     int
	pageSize int
	sort     *Sort
}

// NewPageRequest constructs a PageRequest with an optional sort.
func NewPageRequest(page int, pageSize int, sort *Sort) *PageRequest {
	return &PageRequest{page: page, pageSize: pageSize, sort: sort}
}

// NewDefaultPageRequest constructs a PageRequest without sorting.
func NewDefaultPageRequest(page int, pageSize int) *PageRequest {
	return NewPageRequest(page, pageSize, nil)
}

func (p *PageRequest) GetPage() int {
	if p.page < 1 {
		p.page = 1
	}
	return p.page
}

func (p *PageRequest) GetPageSize() int {
	if p.pageSize < 1 {
		p.pageSize = 10
	}
	return p.pageSize
}

func (p *PageRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

func (p *PageRequest) GetSort() *Sort { return p.sort }

// Pagination holds one page of results along with the total match count.
type Pagination[T any] struct {
	Page     int
	PageSize int
	Total    int
	Items    []*T
}

// NewDefaultPagination constructs an empty pagination container.
func NewDefaultPagination[T any](page int, pageSize int) *Pagination[T] {
	return &Pagination[T]{Page: page, PageSize: pageSize, Items: make([]*T, 0)}
}

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

package repository

import (
	"context"

	"github.com/google/uuid"

	"bedrock/types"
)

// Payload carries loosely typed field values for create and update
// operations. Keys are column names; keys that do not map to a column of the
// target model are silently ignored.
type Payload map[string]any

// Filters narrows List, Count and Page results.
//
// Soft-deleted and deactivated rows are hidden by default. WithDeleted and
// WithDeactivated include them alongside visible rows; OnlyDeleted and
// OnlyDeactivated restrict the result to hidden rows and take precedence
// over their With counterparts.
type Filters struct {
	IDs             []int64
	UUIDs           []uuid.UUID
	OnlyDeleted     bool
	WithDeleted     bool
	OnlyDeactivated bool
	WithDeactivated bool
}

// Repository provides generic persistence operations for one model type,
// bound to a single session.
type Repository[T any] interface {
	// Create inserts a new row built from the payload and returns the stored
	// entity. Models with a uuid column receive a generated uuid and models
	// with timestamps receive identical created_at and updated_at values,
	// in both cases only when the payload did not supply them. Lifecycle
	// columns (deleted_at, deactivated_at) are ignored: rows are born
	// visible.
	Create(ctx context.Context, payload Payload) (*T, error)

	// Get returns the entity with the given primary id.
	Get(ctx context.Context, id int64) (*T, error)

	// GetByUUID returns the entity with the given uuid. The model must carry
	// a uuid column.
	GetByUUID(ctx context.Context, id uuid.UUID) (*T, error)

	// Update locates the row named by the payload's "id" or "uuid" key,
	// applies the remaining fields and returns the stored entity. When the
	// payload mentions "updated_at" the stored value is the server's current
	// time, regardless of the payload value.
	Update(ctx context.Context, payload Payload) (*T, error)

	// Delete removes the row with the given id. Models with a deleted_at
	// column are soft deleted first; deleting an already soft-deleted row
	// removes it physically. Models without the column are removed
	// physically at once.
	Delete(ctx context.Context, id int64) error

	// DeleteByUUID behaves like Delete, addressing the row by uuid.
	DeleteByUUID(ctx context.Context, id uuid.UUID) error

	// ToggleDeactivate flips the row's deactivation state and returns the
	// stored entity. The model must carry a deactivated_at column.
	ToggleDeactivate(ctx context.Context, id int64) (*T, error)

	// List returns entities matching the filters, sorted and windowed.
	// A nil sort leaves row order to the store; a nil navigation applies the
	// default limit. A sort naming an unknown field is ignored.
	List(ctx context.Context, filters *Filters, sort *types.Sort, nav *types.Navigation) ([]*T, error)

	// Count returns the number of entities matching the filters.
	Count(ctx context.Context, filters *Filters) (int, error)

	// Page returns one page of entities matching the filters.
	Page(ctx context.Context, filters *Filters, req *types.PageRequest) (*types.Pagination[T], error)
}

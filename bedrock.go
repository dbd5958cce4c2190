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

// Package bedrock provides a session-per-call facade over the generic
// repository. Each operation checks out a managed session from the
// connection manager, runs the repository call, and releases the session.
package bedrock

import (
	"context"

	"github.com/google/uuid"

	"bedrock/database"
	"bedrock/repository"
	"bedrock/types"
)

type Service[T any] interface {
	// Create inserts a new entity built from the payload.
	Create(ctx context.Context, payload repository.Payload) (*T, error)

	// Get returns a single entity by its primary id.
	Get(ctx context.Context, id int64) (*T, error)

	// GetByUUID returns a single entity by its uuid.
	GetByUUID(ctx context.Context, id uuid.UUID) (*T, error)

	// Update applies the payload to the entity it names.
	Update(ctx context.Context, payload repository.Payload) (*T, error)

	// Delete removes an entity by id, soft deleting first when supported.
	Delete(ctx context.Context, id int64) error

	// DeleteByUUID removes an entity by uuid.
	DeleteByUUID(ctx context.Context, id uuid.UUID) error

	// ToggleDeactivate flips the entity's deactivation state.
	ToggleDeactivate(ctx context.Context, id int64) (*T, error)

	// List returns entities matching the filters.
	List(ctx context.Context, filters *repository.Filters, sort *types.Sort, nav *types.Navigation) ([]*T, error)

	// Count returns the number of entities matching the filters.
	Count(ctx context.Context, filters *repository.Filters) (int, error)

	// Page returns a paginated list of entities matching the filters.
	Page(ctx context.Context, filters *repository.Filters, req *types.PageRequest) (*types.Pagination[T], error)
}

type baseService[T any] struct {
	manager *database.ConnectionManager
}

// NewService returns a Service backed by the default connection manager.
func NewService[T any]() Service[T] {
	return NewServiceWith[T](database.Default())
}

// NewServiceWith returns a Service backed by the given connection manager.
func NewServiceWith[T any](manager *database.ConnectionManager) Service[T] {
	return &baseService[T]{manager: manager}
}

// scoped runs fn with a fresh repository inside a managed session.
func (s *baseService[T]) scoped(ctx context.Context, fn func(repo repository.Repository[T]) error) error {
	return s.manager.ScopedSession(ctx, func(ctx context.Context, sess *database.Session) error {
		repo, err := repository.New[T](sess)
		if err != nil {
			return err
		}
		return fn(repo)
	})
}

func (s *baseService[T]) Create(ctx context.Context, payload repository.Payload) (*T, error) {
	var entity *T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entity, err = repo.Create(ctx, payload)
		return err
	})
	return entity, err
}

func (s *baseService[T]) Get(ctx context.Context, id int64) (*T, error) {
	var entity *T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entity, err = repo.Get(ctx, id)
		return err
	})
	return entity, err
}

func (s *baseService[T]) GetByUUID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity *T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entity, err = repo.GetByUUID(ctx, id)
		return err
	})
	return entity, err
}

func (s *baseService[T]) Update(ctx context.Context, payload repository.Payload) (*T, error) {
	var entity *T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entity, err = repo.Update(ctx, payload)
		return err
	})
	return entity, err
}

func (s *baseService[T]) Delete(ctx context.Context, id int64) error {
	return s.scoped(ctx, func(repo repository.Repository[T]) error {
		return repo.Delete(ctx, id)
	})
}

func (s *baseService[T]) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	return s.scoped(ctx, func(repo repository.Repository[T]) error {
		return repo.DeleteByUUID(ctx, id)
	})
}

func (s *baseService[T]) ToggleDeactivate(ctx context.Context, id int64) (*T, error) {
	var entity *T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entity, err = repo.ToggleDeactivate(ctx, id)
		return err
	})
	return entity, err
}

func (s *baseService[T]) List(ctx context.Context, filters *repository.Filters, sort *types.Sort, nav *types.Navigation) ([]*T, error) {
	var entities []*T
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		entities, err = repo.List(ctx, filters, sort, nav)
		return err
	})
	return entities, err
}

func (s *baseService[T]) Count(ctx context.Context, filters *repository.Filters) (int, error) {
	var count int
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		count, err = repo.Count(ctx, filters)
		return err
	})
	return count, err
}

func (s *baseService[T]) Page(ctx context.Context, filters *repository.Filters, req *types.PageRequest) (*types.Pagination[T], error) {
	var page *types.Pagination[T]
	err := s.scoped(ctx, func(repo repository.Repository[T]) error {
		var err error
		page, err = repo.Page(ctx, filters, req)
		return err
	})
	return page, err
}

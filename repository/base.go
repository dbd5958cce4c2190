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
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"bedrock/database"
	"bedrock/errs"
	"bedrock/model"
	"bedrock/types"
)

type baseRepository[T any] struct {
	sess *database.Session
	caps model.Capabilities
	cols map[string][]int
}

// New returns a repository for T bound to the session. T must be a model:
// a struct whose pointer implements model.Entity.
func New[T any](sess *database.Session) (Repository[T], error) {
	if sess == nil {
		return nil, errs.ErrEmptySession
	}
	if !model.IsEntity[T]() {
		return nil, errs.ErrNoModel
	}
	return &baseRepository[T]{
		sess: sess,
		caps: model.CapabilitiesOf[T](),
		cols: columnsOf(reflect.TypeOf((*T)(nil)).Elem()),
	}, nil
}

func (r *baseRepository[T]) db() bun.IDB { return r.sess.DB() }

// applyPayload copies payload values onto the entity, skipping the listed
// columns and any key that does not name a column of T.
func (r *baseRepository[T]) applyPayload(entity *T, payload Payload, skip ...string) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	v := reflect.ValueOf(entity).Elem()
	for key, value := range payload {
		if skipped[key] {
			continue
		}
		path, ok := r.cols[key]
		if !ok {
			continue
		}
		setColumn(v, path, value)
	}
}

// beforeCreate stamps server-controlled columns the payload left unset. A
// uuid is generated unless one was supplied; created_at and updated_at each
// default to the same instant, so a fresh row with neither supplied is
// recognizable by their equality.
func (r *baseRepository[T]) beforeCreate(entity *T) {
	if r.caps.UUID {
		m := any(entity).(model.WithUUID)
		if m.GetUUID() == uuid.Nil {
			m.SetUUID(uuid.New())
		}
	}
	if r.caps.Timestamps {
		m := any(entity).(model.WithTimestamps)
		now := time.Now()
		if m.GetCreatedAt().IsZero() {
			m.SetCreatedAt(now)
		}
		if m.GetUpdatedAt().IsZero() {
			m.SetUpdatedAt(now)
		}
	}
}

func (r *baseRepository[T]) Create(ctx context.Context, payload Payload) (*T, error) {
	entity := new(T)
	r.applyPayload(entity, payload, "id", "deleted_at", "deactivated_at")
	r.beforeCreate(entity)

	if _, err := r.db().NewInsert().Model(entity).Exec(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	entity := new(T)
	err := r.db().NewSelect().Model(entity).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.Newf(errs.KindNotFound, "record with id %d not found", id)
		}
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T]) GetByUUID(ctx context.Context, id uuid.UUID) (*T, error) {
	if !r.caps.UUID {
		return nil, errs.ErrNoUUIDSupport
	}
	entity := new(T)
	err := r.db().NewSelect().Model(entity).Where("uuid = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.Newf(errs.KindNotFound, "record with uuid %s not found", id)
		}
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T]) Update(ctx context.Context, payload Payload) (*T, error) {
	id, hasID := payloadID(payload)
	uid, hasUUID := payloadUUID(payload)
	if !hasID && !hasUUID {
		return nil, errs.ErrNoPrimaryKey
	}

	var entity *T
	var err error
	if hasID {
		entity, err = r.Get(ctx, id)
	} else {
		entity, err = r.GetByUUID(ctx, uid)
	}
	if err != nil {
		return nil, err
	}

	r.applyPayload(entity, payload, "id", "uuid", "created_at", "updated_at", "deleted_at", "deactivated_at")

	// updated_at is server controlled: mentioning the key requests a touch,
	// the payload value itself is discarded.
	if _, touch := payload["updated_at"]; touch && r.caps.Timestamps {
		any(entity).(model.WithTimestamps).SetUpdatedAt(time.Now())
	}

	if _, err := r.db().NewUpdate().Model(entity).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id int64) error {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return r.deleteEntity(ctx, entity)
}

func (r *baseRepository[T]) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	entity, err := r.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	return r.deleteEntity(ctx, entity)
}

// deleteEntity soft deletes on the first call and removes the row physically
// on the next, for models that carry a deleted_at column. Other models are
// removed physically at once.
func (r *baseRepository[T]) deleteEntity(ctx context.Context, entity *T) error {
	if r.caps.SoftDelete {
		m := any(entity).(model.SoftDeletable)
		if !m.IsDeleted() {
			now := time.Now()
			m.SetDeletedAt(&now)
			_, err := r.db().NewUpdate().Model(entity).WherePK().Exec(ctx)
			return err
		}
	}
	_, err := r.db().NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepository[T]) ToggleDeactivate(ctx context.Context, id int64) (*T, error) {
	if !r.caps.Deactivate {
		return nil, errs.ErrDeactivationNotSupported
	}
	entity, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m := any(entity).(model.Deactivatable)
	if m.IsDeactivated() {
		m.SetDeactivatedAt(nil)
	} else {
		now := time.Now()
		m.SetDeactivatedAt(&now)
	}

	if _, err := r.db().NewUpdate().Model(entity).WherePK().Column("deactivated_at").Exec(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepository[T]) List(ctx context.Context, filters *Filters, sort *types.Sort, nav *types.Navigation) ([]*T, error) {
	var entities []*T
	query := r.db().NewSelect().Model(&entities)
	query = r.applyFilters(query, filters)

	if !sort.IsZero() {
		if _, known := r.cols[sort.Field]; known {
			query = query.OrderExpr(sort.OrderExpr(sort.Field))
		}
	}

	query = query.Limit(nav.GetLimit()).Offset(nav.GetOffset())
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepository[T]) Count(ctx context.Context, filters *Filters) (int, error) {
	query := r.db().NewSelect().Model((*T)(nil))
	query = r.applyFilters(query, filters)
	return query.Count(ctx)
}

func (r *baseRepository[T]) Page(ctx context.Context, filters *Filters, req *types.PageRequest) (*types.Pagination[T], error) {
	if req == nil {
		req = types.NewDefaultPageRequest(1, types.DefaultLimit)
	}

	var entities []*T
	query := r.db().NewSelect().Model(&entities)
	query = r.applyFilters(query, filters)

	pagination := types.NewDefaultPagination[T](req.GetPage(), req.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}

	if sort := req.GetSort(); !sort.IsZero() {
		if _, known := r.cols[sort.Field]; known {
			query = query.OrderExpr(sort.OrderExpr(sort.Field))
		}
	}

	err = query.
		Offset(req.GetOffset()).
		Limit(req.GetPageSize()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

// applyFilters narrows the query. Visibility rules always apply: rows hidden
// by soft delete or deactivation stay out of results unless the filters ask
// for them, and the Only variants win over With.
func (r *baseRepository[T]) applyFilters(query *bun.SelectQuery, filters *Filters) *bun.SelectQuery {
	f := filters
	if f == nil {
		f = &Filters{}
	}

	if len(f.IDs) > 0 {
		query = query.Where("id IN (?)", bun.In(f.IDs))
	}
	if len(f.UUIDs) > 0 && r.caps.UUID {
		query = query.Where("uuid IN (?)", bun.In(f.UUIDs))
	}

	if r.caps.SoftDelete {
		switch {
		case f.OnlyDeleted:
			query = query.Where("deleted_at IS NOT NULL")
		case !f.WithDeleted:
			query = query.Where("deleted_at IS NULL")
		}
	}
	if r.caps.Deactivate {
		switch {
		case f.OnlyDeactivated:
			query = query.Where("deactivated_at IS NOT NULL")
		case !f.WithDeactivated:
			query = query.Where("deactivated_at IS NULL")
		}
	}
	return query
}

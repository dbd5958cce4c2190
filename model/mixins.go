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

package model

import (
	"time"

	"github.com/google/uuid"
)

// WithUUID marks an entity type as supporting uuid-based lookup. The value is
// generated at creation and never changes afterwards.
type WithUUID interface {
	GetUUID() uuid.UUID
	SetUUID(u uuid.UUID)
}

// WithTimestamps marks an entity type as carrying created_at/updated_at.
type WithTimestamps interface {
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	GetUpdatedAt() time.Time
	SetUpdatedAt(t time.Time)
}

// SoftDeletable marks an entity type as supporting soft deletion. A nil
// deleted_at means the row is active.
type SoftDeletable interface {
	GetDeletedAt() *time.Time
	SetDeletedAt(t *time.Time)
	IsDeleted() bool
}

// Deactivatable marks an entity type as supporting administrative
// deactivation, independent of soft deletion.
type Deactivatable interface {
	GetDeactivatedAt() *time.Time
	SetDeactivatedAt(t *time.Time)
	IsDeactivated() bool
}

// UUIDMixin adds a unique, immutable uuid column.
type UUIDMixin struct {
	UUID uuid.UUID `bun:"uuid,type:varchar(36),unique,nullzero" json:"uuid"`
}

func (m *UUIDMixin) GetUUID() uuid.UUID  { return m.UUID }
func (m *UUIDMixin) SetUUID(u uuid.UUID) { m.UUID = u }

// TimestampsMixin adds created_at and updated_at columns. created_at is set
// once at creation; updated_at moves on every mutating write.
type TimestampsMixin struct {
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

func (m *TimestampsMixin) GetCreatedAt() time.Time  { return m.CreatedAt }
func (m *TimestampsMixin) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *TimestampsMixin) GetUpdatedAt() time.Time  { return m.UpdatedAt }
func (m *TimestampsMixin) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// IsCreated reports whether the row has never been modified since creation,
// which holds exactly when both timestamps are equal.
func (m *TimestampsMixin) IsCreated() bool {
	return m.CreatedAt.Equal(m.UpdatedAt)
}

// SoftDeleteMixin adds a nullable deleted_at column.
type SoftDeleteMixin struct {
	DeletedAt *time.Time `bun:"deleted_at" json:"deleted_at,omitempty"`
}

func (m *SoftDeleteMixin) GetDeletedAt() *time.Time  { return m.DeletedAt }
func (m *SoftDeleteMixin) SetDeletedAt(t *time.Time) { m.DeletedAt = t }

// IsDeleted reports whether the row is soft-deleted.
func (m *SoftDeleteMixin) IsDeleted() bool { return m.DeletedAt != nil }

// DeactivateMixin adds a nullable deactivated_at column.
type DeactivateMixin struct {
	DeactivatedAt *time.Time `bun:"deactivated_at" json:"deactivated_at,omitempty"`
}

func (m *DeactivateMixin) GetDeactivatedAt() *time.Time  { return m.DeactivatedAt }
func (m *DeactivateMixin) SetDeactivatedAt(t *time.Time) { m.DeactivatedAt = t }

// IsDeactivated reports whether the row is administratively deactivated.
func (m *DeactivateMixin) IsDeactivated() bool { return m.DeactivatedAt != nil }

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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
)

type fullEntity struct {
	bun.BaseModel `bun:"table:full"`
	Model
	UUIDMixin
	TimestampsMixin
	SoftDeleteMixin
	DeactivateMixin
}

type bareEntity struct {
	bun.BaseModel `bun:"table:bare"`
	Model
}

type timestampedEntity struct {
	bun.BaseModel `bun:"table:stamped"`
	Model
	TimestampsMixin
}

type notAnEntity struct {
	Name string
}

func TestCapabilitiesOf(t *testing.T) {
	assert.Equal(t, Capabilities{UUID: true, Timestamps: true, SoftDelete: true, Deactivate: true},
		CapabilitiesOf[fullEntity]())
	assert.Equal(t, Capabilities{}, CapabilitiesOf[bareEntity]())
	assert.Equal(t, Capabilities{Timestamps: true}, CapabilitiesOf[timestampedEntity]())
}

func TestIsEntity(t *testing.T) {
	assert.True(t, IsEntity[fullEntity]())
	assert.True(t, IsEntity[bareEntity]())
	assert.False(t, IsEntity[notAnEntity]())
	assert.False(t, IsEntity[int]())
}

func TestMixinPredicates(t *testing.T) {
	e := &fullEntity{}

	now := time.Now()
	e.SetCreatedAt(now)
	e.SetUpdatedAt(now)
	assert.True(t, e.IsCreated())
	e.SetUpdatedAt(now.Add(time.Second))
	assert.False(t, e.IsCreated())

	assert.False(t, e.IsDeleted())
	e.SetDeletedAt(&now)
	assert.True(t, e.IsDeleted())
	e.SetDeletedAt(nil)
	assert.False(t, e.IsDeleted())

	assert.False(t, e.IsDeactivated())
	e.SetDeactivatedAt(&now)
	assert.True(t, e.IsDeactivated())
}

func TestModelIdentity(t *testing.T) {
	e := &bareEntity{}
	assert.Equal(t, int64(0), e.GetID())
	e.SetID(7)
	assert.Equal(t, int64(7), e.GetID())
}

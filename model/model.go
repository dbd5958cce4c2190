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

// Entity is the minimal contract every persisted type satisfies: an integer
// primary key assigned by the server. Embed Model to get it.
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// Model is the base for all persisted types. The id column is the primary
// key, auto-incremented by the backing store.
type Model struct {
	ID int64 `bun:"id,pk,autoincrement" json:"id"`
}

func (m *Model) GetID() int64   { return m.ID }
func (m *Model) SetID(id int64) { m.ID = id }

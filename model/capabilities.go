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

// Capabilities describes which optional lifecycle features an entity type
// declares. The set is fixed at type definition time: a type gains a
// capability by embedding the matching mixin, and the repository resolves the
// set once at construction.
type Capabilities struct {
	UUID       bool
	Timestamps bool
	SoftDelete bool
	Deactivate bool
}

// CapabilitiesOf resolves the capability set of T by checking which mixin
// interfaces *T implements. Pure and side-effect free.
func CapabilitiesOf[T any]() Capabilities {
	var probe any = new(T)
	_, hasUUID := probe.(WithUUID)
	_, hasTimestamps := probe.(WithTimestamps)
	_, hasSoftDelete := probe.(SoftDeletable)
	_, hasDeactivate := probe.(Deactivatable)
	return Capabilities{
		UUID:       hasUUID,
		Timestamps: hasTimestamps,
		SoftDelete: hasSoftDelete,
		Deactivate: hasDeactivate,
	}
}

// IsEntity reports whether *T satisfies the Entity contract.
func IsEntity[T any]() bool {
	var probe any = new(T)
	_, ok := probe.(Entity)
	return ok
}

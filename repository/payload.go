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
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"bedrock/utils"
)

var (
	baseModelType = reflect.TypeOf(bun.BaseModel{})
	timeType      = reflect.TypeOf(time.Time{})
	uuidType      = reflect.TypeOf(uuid.UUID{})
)

// columnsOf maps column names to struct field index paths for the model
// type. Columns come from bun tags; untagged fields use the snake_case form
// of the field name. Embedded structs are flattened; relation fields and
// fields tagged "-" are skipped.
func columnsOf(t reflect.Type) map[string][]int {
	cols := make(map[string][]int)
	collectColumns(t, nil, cols)
	return cols
}

func collectColumns(t reflect.Type, path []int, cols map[string][]int) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type == baseModelType {
			continue
		}
		fieldPath := append(append([]int(nil), path...), i)
		if field.Anonymous {
			collectColumns(field.Type, fieldPath, cols)
			continue
		}
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("bun")
		if tag == "-" || strings.Contains(tag, "rel:") || strings.Contains(tag, "join:") {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = utils.CamelToSnake(field.Name)
		}
		if _, exists := cols[name]; !exists {
			cols[name] = fieldPath
		}
	}
}

// setColumn assigns value to the entity field that backs the column,
// converting where the types allow it. Unknown columns and inconvertible
// values are ignored.
func setColumn(entity reflect.Value, path []int, value any) {
	field := entity
	for _, i := range path {
		for field.Kind() == reflect.Ptr {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			field = field.Elem()
		}
		field = field.Field(i)
	}
	if !field.CanSet() {
		return
	}

	if value == nil {
		if field.Kind() == reflect.Ptr {
			field.Set(reflect.Zero(field.Type()))
		}
		return
	}

	v := reflect.ValueOf(value)
	target := field.Type()

	// Pointer targets receive the converted element value. A zero result
	// from a non-zero source means the conversion failed; leave the field
	// untouched rather than storing a bogus non-nil pointer.
	if target.Kind() == reflect.Ptr {
		elem := reflect.New(target.Elem())
		setScalar(elem.Elem(), v)
		if elem.Elem().IsZero() && !v.IsZero() {
			return
		}
		field.Set(elem)
		return
	}
	setScalar(field, v)
}

func setScalar(field reflect.Value, v reflect.Value) {
	target := field.Type()

	if v.Type().AssignableTo(target) {
		field.Set(v)
		return
	}

	if v.Kind() == reflect.String {
		if assignString(field, v.String()) {
			return
		}
	}
	if v.Type().ConvertibleTo(target) {
		field.Set(v.Convert(target))
	}
}

// assignString handles the string encodings of uuid and time columns.
func assignString(field reflect.Value, s string) bool {
	switch field.Type() {
	case uuidType:
		if id, err := uuid.Parse(s); err == nil {
			field.Set(reflect.ValueOf(id))
		}
		return true
	case timeType:
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			field.Set(reflect.ValueOf(t))
		}
		return true
	}
	return false
}

// payloadID extracts the "id" key as an int64. Missing, malformed or zero
// values report absent.
func payloadID(payload Payload) (int64, bool) {
	raw, ok := payload["id"]
	if !ok || raw == nil {
		return 0, false
	}
	var id int64
	switch v := raw.(type) {
	case int64:
		id = v
	case int:
		id = int64(v)
	case int32:
		id = int64(v)
	case uint64:
		id = int64(v)
	case float64:
		// JSON numbers arrive as float64; a fractional value names no row.
		if v != math.Trunc(v) {
			return 0, false
		}
		id = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		id = parsed
	default:
		return 0, false
	}
	if id == 0 {
		return 0, false
	}
	return id, true
}

// payloadUUID extracts the "uuid" key. Missing, malformed or zero values
// report absent.
func payloadUUID(payload Payload) (uuid.UUID, bool) {
	raw, ok := payload["uuid"]
	if !ok || raw == nil {
		return uuid.Nil, false
	}
	var id uuid.UUID
	switch v := raw.(type) {
	case uuid.UUID:
		id = v
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		id = parsed
	default:
		return uuid.Nil, false
	}
	if id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

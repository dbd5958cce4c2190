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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	for in, want := range map[string]string{
		"Name":       "name",
		"CreatedAt":  "created_at",
		"APIKey":     "api_key",
		"HTTPServer": "http_server",
		"ID":         "id",
		"UserID":     "user_id",
		"name":       "name",
		"":           "",
	} {
		assert.Equal(t, want, CamelToSnake(in), in)
	}
}

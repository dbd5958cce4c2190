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
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerRegistry(t *testing.T) {
	a := NewLogger("TEST_A")
	b := NewLogger("TEST_A")
	assert.Same(t, a, b)

	c := NewLogger("TEST_B")
	assert.NotSame(t, a, c)
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("TEST_LEVEL")
	assert.True(t, SetLoggerLevel("TEST_LEVEL", "debug"))
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	assert.False(t, SetLoggerLevel("TEST_MISSING", "debug"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel("nonsense"))
}

func TestNamedFormatter(t *testing.T) {
	l := NewLogger("TEST_FMT")
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.WithFields(logrus.Fields{"zebra": 2, "alpha": 1}).Info("hello")

	out := buf.String()
	assert.Contains(t, out, "[TEST_FMT]")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "hello")
	// Fields render in lexical order for stable output.
	assert.Contains(t, out, "alpha=1 zebra=2")
}

func TestEnvDefaultString(t *testing.T) {
	t.Setenv("BEDROCK_TEST_KEY", "set")
	assert.Equal(t, "set", EnvDefaultString("BEDROCK_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvDefaultString("BEDROCK_TEST_MISSING", "fallback"))
}

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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BEDROCK_APP__NAME", "inventory")
	t.Setenv("BEDROCK_APP__ENV", "test")
	t.Setenv("BEDROCK_DATABASE__TYPE", "postgres")
	t.Setenv("BEDROCK_DATABASE__HOST", "db.internal")
	t.Setenv("BEDROCK_DATABASE__PORT", "5432")
	t.Setenv("BEDROCK_DATABASE__USERNAME", "svc")
	t.Setenv("BEDROCK_DATABASE__PASSWORD", "secret")
	t.Setenv("BEDROCK_DATABASE__DBNAME", "inventory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "inventory", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadSqliteNeedsNoNetworkFields(t *testing.T) {
	t.Setenv("BEDROCK_APP__NAME", "inventory")
	t.Setenv("BEDROCK_DATABASE__TYPE", "sqlite")
	t.Setenv("BEDROCK_DATABASE__DBNAME", "inventory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}

func TestLoadValidationFailures(t *testing.T) {
	t.Setenv("BEDROCK_APP__NAME", "inventory")
	t.Setenv("BEDROCK_DATABASE__TYPE", "postgres")
	t.Setenv("BEDROCK_DATABASE__DBNAME", "inventory")
	// Missing host/port/username for a network dialect.
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("BEDROCK_DATABASE__TYPE", "sqlite")
	t.Setenv("BEDROCK_APP__ENV", "staging") // not one of dev/test/prod
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  name: inventory
  env: dev
  version: "2026.8.1"
database:
  type: sqlite
  dbname: inventory
  echo: true
  slow_query_time: 1500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "inventory", cfg.App.Name)
	assert.Equal(t, "2026.8.1", cfg.App.Version)
	assert.True(t, cfg.Database.Echo)

	conn := cfg.Database.ConnectionConfig()
	assert.Equal(t, "sqlite", conn.Type)
	assert.Equal(t, 1500*time.Millisecond, conn.SlowQueryTime)
	assert.Equal(t, "inventory.db", cfg.Database.ConnectionURL())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  name: inventory
database:
  type: sqlite
  dbname: inventory
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("BEDROCK_DATABASE__DBNAME", "overridden")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "overridden", cfg.Database.DBName)
	assert.Equal(t, "inventory", cfg.App.Name)
}

func TestValidVersion(t *testing.T) {
	year := time.Now().Year()

	assert.True(t, ValidVersion("2026.8.1"))
	assert.True(t, ValidVersion("2020.12.0"))
	assert.False(t, ValidVersion("2019.1.0"))
	assert.False(t, ValidVersion("2026.13.0"))
	assert.False(t, ValidVersion("2026.0.0"))
	assert.False(t, ValidVersion("1.2.3"))
	assert.False(t, ValidVersion("2026.8"))
	assert.False(t, ValidVersion("v2026.8.1"))
	assert.False(t, ValidVersion(""))

	// Next year's versions are allowed for pre-releases, two years out not.
	assert.True(t, ValidVersion(formatVersion(year+1)))
	assert.False(t, ValidVersion(formatVersion(year+2)))
}

func formatVersion(year int) string {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006") + ".1.0"
}

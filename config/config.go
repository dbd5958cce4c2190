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

// Package config loads and validates application settings from YAML files
// and prefixed environment variables, with calendar-version enforcement for
// the application version string.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"bedrock/database"
)

// EnvPrefix scopes the environment variables this package reads. Nesting is
// expressed with a double underscore: BEDROCK_DATABASE__HOST maps to
// database.host.
const EnvPrefix = "BEDROCK_"

var versionPattern = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d+)$`)

// AppConfig identifies the running application. Version follows calendar
// versioning: YEAR.MONTH.PATCH, e.g. 2026.8.1.
type AppConfig struct {
	Name    string `koanf:"name" yaml:"name" validate:"required"`
	Env     string `koanf:"env" yaml:"env" validate:"omitempty,oneof=dev test prod"`
	Version string `koanf:"version" yaml:"version" validate:"omitempty,calver"`
}

// DatabaseConfig carries connection settings in loadable form. Network
// fields are mandatory except for sqlite, which only needs a name.
type DatabaseConfig struct {
	Type            string `koanf:"type" yaml:"type" validate:"required,oneof=postgres postgresql mysql sqlite sqlite3"`
	Host            string `koanf:"host" yaml:"host" validate:"required_unless=Type sqlite Type sqlite3"`
	Port            int    `koanf:"port" yaml:"port" validate:"required_unless=Type sqlite Type sqlite3"`
	Username        string `koanf:"username" yaml:"username" validate:"required_unless=Type sqlite Type sqlite3"`
	Password        string `koanf:"password" yaml:"password"`
	DBName          string `koanf:"dbname" yaml:"dbname" validate:"required"`
	SSLMode         string `koanf:"sslmode" yaml:"sslmode"`
	MaxIdleConns    int    `koanf:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `koanf:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" yaml:"conn_max_lifetime"` // seconds
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" yaml:"conn_max_idle_time"`
	Echo            bool   `koanf:"echo" yaml:"echo"`
	SlowQueryTime   int    `koanf:"slow_query_time" yaml:"slow_query_time"` // milliseconds
}

// Config is the root configuration object.
type Config struct {
	App      AppConfig      `koanf:"app" yaml:"app"`
	Database DatabaseConfig `koanf:"database" yaml:"database"`
}

// ConnectionConfig converts the loadable form into the database package's
// connection config, filling pool defaults for unset values.
func (c *DatabaseConfig) ConnectionConfig() *database.ConnectionConfig {
	conn := database.DefaultConnectionConfig()
	conn.Type = c.Type
	conn.Host = c.Host
	conn.Port = c.Port
	conn.Username = c.Username
	conn.Password = c.Password
	conn.DBName = c.DBName
	conn.SSLMode = c.SSLMode
	conn.Echo = c.Echo
	if c.MaxIdleConns > 0 {
		conn.MaxIdleConns = c.MaxIdleConns
	}
	if c.MaxOpenConns > 0 {
		conn.MaxOpenConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime > 0 {
		conn.ConnMaxLifetime = time.Duration(c.ConnMaxLifetime) * time.Second
	}
	if c.ConnMaxIdleTime > 0 {
		conn.ConnMaxIdleTime = time.Duration(c.ConnMaxIdleTime) * time.Second
	}
	if c.SlowQueryTime > 0 {
		conn.SlowQueryTime = time.Duration(c.SlowQueryTime) * time.Millisecond
	}
	return conn
}

// ConnectionURL renders the connection URL for the configured dialect.
func (c *DatabaseConfig) ConnectionURL() string {
	return c.ConnectionConfig().DSN()
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("calver", func(fl validator.FieldLevel) bool {
		return ValidVersion(fl.Field().String())
	})
	return validate
}

// ValidVersion reports whether s is a plausible calendar version: a year
// between 2020 and next year, a month between 1 and 12, and a numeric patch.
func ValidVersion(s string) bool {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if year < 2020 || year > time.Now().Year()+1 {
		return false
	}
	return month >= 1 && month <= 12
}

// Load builds the configuration from BEDROCK_-prefixed environment
// variables. A .env file in the working directory is honored via godotenv's
// autoload.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile builds the configuration from a YAML file, then overlays any
// BEDROCK_-prefixed environment variables on top.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides re-reads the environment through koanf and unmarshals it
// onto the already populated config, so set variables win over file values.
func applyEnvOverrides(cfg *Config) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return
	}
	_ = k.Unmarshal("", cfg)
}

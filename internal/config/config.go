// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config implements loading of the wordfinder configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-wordfinder/filter"
)

// EnvPath is the environment variable holding the path to the configuration
// file.
const EnvPath = "WORDFINDER_CONFIG"

// Formats are the supported output formats.
var Formats = []string{"table", "text", "sml", "xml"}

// LogLevels are the supported log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the wordfinder configuration.
type Config struct {
	// Dictionaries are dictionary files to search.
	Dictionaries []string `yaml:"dictionaries" env:"WORDFINDER_DICTIONARIES" env-separator:","`

	// DataDirs are directories searched for dictionary files.
	DataDirs []string `yaml:"data_dirs" env:"WORDFINDER_DATA_DIRS" env-separator:","`

	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig holds default search settings.
type SearchConfig struct {
	Strategy  string `yaml:"strategy"   env:"WORDFINDER_STRATEGY"   env-default:"contains"`
	MatchCase bool   `yaml:"match_case" env:"WORDFINDER_MATCH_CASE" env-default:"false"`
	Limit     int    `yaml:"limit"      env:"WORDFINDER_LIMIT"      env-default:"20"`
	NoLimit   bool   `yaml:"no_limit"   env:"WORDFINDER_NO_LIMIT"   env-default:"false"`
	Workers   int    `yaml:"workers"    env:"WORDFINDER_WORKERS"    env-default:"4"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `yaml:"format" env:"WORDFINDER_FORMAT" env-default:"table"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDFINDER_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"WORDFINDER_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
//
// The file is path if not empty, otherwise the value of WORDFINDER_CONFIG.
// If neither is set, config.yaml in the user's wordfinder config directory
// is used if it exists. An explicitly given file must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(EnvPath)
	}
	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath()
	}

	if _, err := os.Stat(path); path != "" && err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error
	if _, err := filter.ParseKind(c.Search.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("search.strategy: %w", err))
	}
	if c.Search.Workers < 1 {
		errs = append(errs, fmt.Errorf("search.workers must be > 0 (got %d)", c.Search.Workers))
	}
	if !slices.Contains(Formats, strings.ToLower(c.Output.Format)) {
		errs = append(errs, fmt.Errorf("output.format must be one of %s (got %q)", strings.Join(Formats, ", "), c.Output.Format))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(LogLevels, ", "), c.Log.Level))
	}
	return errors.Join(errs...)
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "wordfinder", "config.yaml")
}

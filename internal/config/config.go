// This file is part of brainf - https://github.com/prog-lang/brainf
//
// Copyright 2026 The brainf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles brainf.toml driver configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the name of the configuration file.
const FileName = "brainf.toml"

// Config represents a brainf.toml file.
type Config struct {
	Run  Run  `toml:"run"`
	Log  Log  `toml:"log"`
	Repl Repl `toml:"repl"`

	// Path is the file the configuration was loaded from, empty for the
	// defaults.
	Path string `toml:"-"`
}

// Run configures program execution.
type Run struct {
	Raw  bool     `toml:"raw"`
	Dump bool     `toml:"dump"`
	With []string `toml:"with"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Repl configures the interactive mode.
type Repl struct {
	History string `toml:"history"`
}

// Default returns the default configuration.
func Default() *Config {
	c := new(Config)
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Repl.History == "" {
		c.Repl.History = "~/.brainf_history"
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("%s: invalid log level %q", c.Path, c.Log.Level)
	}
	return nil
}

// Load parses the given configuration file. Relative paths in the [run] with
// list are resolved against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	c.Path = path
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for n, w := range c.Run.With {
		w = ExpandHome(w)
		if !filepath.IsAbs(w) {
			w = filepath.Join(dir, w)
		}
		c.Run.With[n] = w
	}
	return &c, nil
}

// Find walks up from startDir to find a brainf.toml file, then falls back to
// $XDG_CONFIG_HOME/brainf/brainf.toml. Returns an empty string if no file is
// found.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, "cannot resolve start directory")
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(cfgDir, "brainf", FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// FindAndLoad loads the file returned by Find, or returns the defaults.
func FindAndLoad(startDir string) (*Config, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ExpandHome replaces a leading "~/" in path with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

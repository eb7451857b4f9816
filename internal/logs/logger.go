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

// Package logs builds the driver's structured logger.
package logs

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

// SetLevel sets the level of every logger returned by New. Valid names are
// debug, info, warn and error.
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return errors.Wrapf(err, "invalid log level %q", name)
	}
	level.Set(l)
	return nil
}

// Level returns the current log level.
func Level() slog.Level {
	return level.Level()
}

// New returns a logger writing text records to terminal and, if file is not
// nil, JSON records to file.
func New(terminal, file io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{
		slog.NewTextHandler(terminal, opts),
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

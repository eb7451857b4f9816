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

package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/asm"
	"github.com/prog-lang/brainf/internal/config"
	"github.com/prog-lang/brainf/internal/logs"
	"github.com/prog-lang/brainf/vm"
)

const helloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

// capture redirects the driver's stdout to a buffer for the duration of the
// test.
func capture(t *testing.T) *bytes.Buffer {
	var b bytes.Buffer
	saved := stdout
	stdout = bufio.NewWriter(&b)
	t.Cleanup(func() { stdout = saved })
	return &b
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	out := capture(t)
	src := writeFile(t, "hello.bf", "Hello World program\n"+helloWorld)
	err := run(src, config.Default(), strings.NewReader(""), logs.New(io.Discard, nil))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out.String() != "Hello World!\n" {
		t.Fatalf("expected %q, got %q", "Hello World!\n", out.String())
	}
}

func TestRun_with(t *testing.T) {
	out := capture(t)
	src := writeFile(t, "echo.bf", ",.,.,.")
	cfg := config.Default()
	cfg.Run.With = []string{writeFile(t, "a.txt", "a"), writeFile(t, "b.txt", "b")}
	err := run(src, cfg, strings.NewReader("c"), logs.New(io.Discard, nil))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out.String() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", out.String())
	}
}

func TestRun_errors(t *testing.T) {
	capture(t)
	logger := logs.New(io.Discard, nil)

	err := run(filepath.Join(t.TempDir(), "missing.bf"), config.Default(), nil, logger)
	if err == nil || !strings.Contains(err.Error(), "cannot read source") {
		t.Errorf("missing source: %v", err)
	}

	src := writeFile(t, "open.bf", "+[")
	if err = run(src, config.Default(), nil, logger); errors.Cause(err) != asm.ErrUnmatchedOpen {
		t.Errorf("unmatched open: %v", err)
	}

	src = writeFile(t, "input.bf", ",")
	if err = run(src, config.Default(), strings.NewReader(""), logger); errors.Cause(err) != vm.ErrInputExhausted {
		t.Errorf("input: %v", err)
	}
}

func TestRun_dump(t *testing.T) {
	out := capture(t)
	src := writeFile(t, "dump.bf", "+++>++++++++[<++++++++>-]")
	cfg := config.Default()
	cfg.Run.Dump = true
	if err := run(src, cfg, nil, logs.New(io.Discard, nil)); err != nil {
		t.Fatalf("%+v", err)
	}
	stdout.Flush()
	s := out.String()
	if !strings.Contains(s, "Tape: 2 cells, cursor at 1") {
		t.Fatalf("missing title in %q", s)
	}
	if !strings.Contains(s, "43") || !strings.Contains(s, "C") {
		t.Fatalf("missing cell 0 in %q", s)
	}
}

func TestRun_list(t *testing.T) {
	list = true
	defer func() { list = false }()
	out := capture(t)
	src := writeFile(t, "list.bf", "+[-]")
	if err := run(src, config.Default(), nil, logs.New(io.Discard, nil)); err != nil {
		t.Fatalf("%+v", err)
	}
	stdout.Flush()
	if !strings.Contains(out.String(), "jump 3") || !strings.Contains(out.String(), "back 1") {
		t.Fatalf("unexpected listing %q", out.String())
	}
}

func TestIncomplete(t *testing.T) {
	var tests = [...]struct {
		src  string
		want bool
	}{
		{"", false},
		{"+[", true},
		{"+[\n>[-]", true},
		{"+[-]", false},
		{"]", false},
		{"[]]", false},
		{":quit", false},
	}
	for _, test := range tests {
		if got := incomplete(test.src); got != test.want {
			t.Errorf("%q: expected %v, got %v", test.src, test.want, got)
		}
	}
}

func TestEOTReader(t *testing.T) {
	r := &eotReader{strings.NewReader("ab\x04cd")}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ab" {
		t.Fatalf("expected %q, got %q", "ab", b)
	}
}

func TestPrintError(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	var b bytes.Buffer
	printError(&b, errors.New("boom"))
	if b.String() != "error: boom\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestCellChar(t *testing.T) {
	for c, want := range map[vm.Cell]string{'A': "A", ' ': " ", '\n': `'\n'`, 0: `'\x00'`, 200: `'\u00c8'`} {
		if got := cellChar(c); got != want {
			t.Errorf("%d: expected %s, got %s", c, want, got)
		}
	}
}

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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/asm"
	"github.com/prog-lang/brainf/internal/config"
	"github.com/prog-lang/brainf/vm"
)

const (
	banner     = "brainf interactive mode. Type :help for help, :quit to exit."
	promptMain = "bf> "
	promptCont = "... "
	replHelp   = `Commands:
  :tape   show the tape around the cursor
  :reset  clear the tape
  :quit   exit
Any other input runs as a program on the session's tape. Input is read until
brackets balance.
`
)

// incomplete returns true if src only fails to assemble because some '[' is
// still open, in which case more lines are needed.
func incomplete(src string) bool {
	_, err := asm.Assemble("", strings.NewReader(src))
	return errors.Cause(err) == asm.ErrUnmatchedOpen
}

// readBalanced prompts for lines until they form a complete program. It
// returns false at the end of input.
func readBalanced(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			// CTRL-C: drop the current entry
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !incomplete(src) {
			return src, true
		}
	}
}

func repl(cfg *config.Config, logger *slog.Logger) error {
	io.WriteString(stdout, banner+"\n")
	stdout.Flush()

	histPath := config.ExpandHome(cfg.Repl.History)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	tape := vm.NewTape()
	for {
		src, ok := readBalanced(ln)
		if !ok {
			io.WriteString(stdout, "\n")
			return nil
		}
		cmd := strings.TrimSpace(src)
		switch cmd {
		case "":
			continue
		case ":quit":
			return nil
		case ":help":
			io.WriteString(stdout, replHelp)
		case ":tape":
			if err := dumpTape(tape, stdout); err != nil {
				return err
			}
		case ":reset":
			tape.Reset()
		default:
			if strings.HasPrefix(cmd, ":") {
				io.WriteString(stdout, "unknown command. Type :help for help.\n")
				break
			}
			ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
			if err := runEntry(src, tape, logger); err != nil {
				stdout.Flush()
				printError(os.Stderr, err)
			}
			io.WriteString(stdout, "\n")
		}
		stdout.Flush()
	}
}

// runEntry runs src on the session tape. Program input is read unbuffered
// from stdin so that nothing is stolen from the line editor.
func runEntry(src string, tape *vm.Tape, logger *slog.Logger) error {
	p, err := asm.Assemble("repl", strings.NewReader(src))
	if err != nil {
		return err
	}
	i, err := vm.New(p, vm.Memory(tape), vm.Output(stdout), vm.Input(os.Stdin))
	if err != nil {
		return err
	}
	err = i.Run()
	logger.Debug("entry complete", "instructions", i.InstructionCount(), "cells", tape.Len())
	return err
}

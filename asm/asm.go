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

package asm

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/scanner"

	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/internal/bfi"
	"github.com/prog-lang/brainf/vm"
)

var (
	// ErrUnmatchedClose is the cause of the error returned for a ']' without
	// a corresponding '['.
	ErrUnmatchedClose = errors.New("unmatched ']'")
	// ErrUnmatchedOpen is the cause of the error returned when some '[' is
	// still open at the end of the source.
	ErrUnmatchedOpen = errors.New("unmatched '['")
	// ErrInvalidPairing should never happen. It means that the instruction at
	// the index of an open bracket is not a Jump.
	ErrInvalidPairing = errors.New("back instruction has an invalid matching jump")
)

// Error is a positional assembly error.
type Error struct {
	Err   error            // one of ErrUnmatchedClose, ErrUnmatchedOpen or ErrInvalidPairing
	Index int              // instruction index of the offending bracket
	Pos   scanner.Position // source position of the offending bracket
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %v (instruction %d)", e.Pos, e.Err, e.Index)
	}
	return fmt.Sprintf("%v (instruction %d)", e.Err, e.Index)
}

// Cause returns the underlying error, for use with errors.Cause.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// Assemble compiles Brainf source read from the supplied io.Reader and returns
// the resulting program and error if any. Any byte that is not one of the
// eight command characters is ignored.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// Bracket errors are returned as an *Error. Use errors.Cause to check for
// ErrUnmatchedOpen or ErrUnmatchedClose.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	return newParser(name).Parse(r)
}

// AssembleBytes is like Assemble but reads the source from b.
func AssembleBytes(name string, b []byte) (vm.Program, error) {
	return Assemble(name, bytes.NewReader(b))
}

// AssembleFile reads the whole file fileName and assembles it.
func AssembleFile(fileName string) (vm.Program, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read source")
	}
	return AssembleBytes(fileName, b)
}

var mnemonics = [...]string{
	vm.OpRight: "right",
	vm.OpLeft:  "left",
	vm.OpInc:   "inc",
	vm.OpDec:   "dec",
	vm.OpOut:   "out",
	vm.OpIn:    "in",
	vm.OpJump:  "jump",
	vm.OpBack:  "back",
}

// Disassemble writes a disassembly of the instruction in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*bfi.ErrWriter)
	if ew == nil {
		ew = bfi.NewErrWriter(w)
	}

	ins := p[pc]
	if int(ins.Op) >= len(mnemonics) {
		io.WriteString(ew, ins.Op.String())
		return pc + 1, ew.Err
	}
	io.WriteString(ew, mnemonics[ins.Op])
	if ins.Op.IsBranch() {
		ew.Write([]byte{' '})
		if ins.Target == vm.NoTarget {
			io.WriteString(ew, "???")
		} else {
			io.WriteString(ew, strconv.Itoa(ins.Target))
		}
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given program
// to the specified io.Writer, one per line and prefixed with their index. It
// will return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := 0; pc < len(p); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

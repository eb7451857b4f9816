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

package vm

import (
	"io"

	"github.com/pkg/errors"
)

// Instance represents a Brainf VM instance.
type Instance struct {
	PC       int     // Program Counter (aka. Instruction Pointer)
	Program  Program // Program being run. Must not be modified.
	Tape     *Tape   // Memory
	input    io.ByteReader
	output   io.ByteWriter
	validate bool
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack. Input instructions
// read from the most recently pushed reader first and fall back to the
// previous one when it reaches EOF.
//
// Readers are read one byte at a time. Wrap them in a bufio.Reader where
// over-reading is not a concern.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output Writer. If w implements a Flush() error
// method, it will be flushed before the VM blocks on input, and when Run
// returns.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// Memory makes the VM run on the given tape instead of a fresh one. This is
// mainly useful to keep memory contents across multiple programs.
func Memory(t *Tape) Option {
	return func(i *Instance) error {
		if t == nil {
			return errors.New("nil tape")
		}
		i.Tape = t
		return nil
	}
}

// Validate enables or disables program validation in New. The default is
// false, since programs built by the asm package are always valid.
func Validate(validate bool) Option {
	return func(i *Instance) error { i.validate = validate; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Brainf Virtual Machine instance for the given program.
//
// Unless the Memory option is set, the instance gets a fresh tape. Without
// Input or Output options, any input instruction fails with ErrInputExhausted
// and output is discarded.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		PC:      0,
		Program: p,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.Tape == nil {
		i.Tape = NewTape()
	}
	if i.output == nil {
		i.output = newWriter(io.Discard)
	}
	if i.validate {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

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
	"bufio"
	"io"
	"text/scanner"

	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/vm"
)

// openSite records an unresolved '['.
type openSite struct {
	pos   scanner.Position
	index int
}

type parser struct {
	p     vm.Program
	stack []openSite
	pos   scanner.Position
}

func newParser(name string) *parser {
	return &parser{
		pos: scanner.Position{Filename: name, Line: 1, Column: 1},
	}
}

func (p *parser) write(ins vm.Instruction) {
	p.p = append(p.p, ins)
}

// advance updates the current position past byte c.
func (p *parser) advance(c byte) {
	p.pos.Offset++
	if c == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
}

func (p *parser) jump() {
	p.stack = append(p.stack, openSite{p.pos, len(p.p)})
	p.write(vm.Jump(vm.NoTarget))
}

func (p *parser) back() error {
	if len(p.stack) == 0 {
		return &Error{ErrUnmatchedClose, len(p.p), p.pos}
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if p.p[top.index].Op != vm.OpJump {
		return &Error{ErrInvalidPairing, top.index, top.pos}
	}
	p.p[top.index].Target = len(p.p)
	p.write(vm.Back(top.index))
	return nil
}

// Parse does the parsing and bracket matching.
func (p *parser) Parse(r io.Reader) (vm.Program, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "%s: read failed", p.pos)
		}
		if op, ok := vm.Decode(c); ok {
			switch op {
			case vm.OpJump:
				p.jump()
			case vm.OpBack:
				if err = p.back(); err != nil {
					return nil, err
				}
			default:
				p.write(vm.Op(op))
			}
		}
		p.advance(c)
	}
	if l := len(p.stack); l > 0 {
		top := p.stack[l-1]
		return nil, &Error{ErrUnmatchedOpen, top.index, top.pos}
	}
	if p.p == nil {
		p.p = vm.Program{}
	}
	return p.p, nil
}

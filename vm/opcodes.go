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

import "strconv"

// Opcode identifies the kind of an Instruction.
type Opcode uint8

// Brainf Virtual Machine Opcodes.
const (
	OpRight Opcode = iota
	OpLeft
	OpInc
	OpDec
	OpOut
	OpIn
	OpJump
	OpBack
)

var opcodes = [...]byte{
	'>',
	'<',
	'+',
	'-',
	'.',
	',',
	'[',
	']',
}

var opcodeIndex [256]int8

func init() {
	for i := range opcodeIndex {
		opcodeIndex[i] = -1
	}
	for i, c := range opcodes {
		opcodeIndex[c] = int8(i)
	}
}

// Decode returns the opcode for the source character c. The boolean is false
// if c is not one of the eight command characters.
func Decode(c byte) (Opcode, bool) {
	op := opcodeIndex[c]
	if op < 0 {
		return 0, false
	}
	return Opcode(op), true
}

// Char returns the source character for op.
func (op Opcode) Char() byte {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return '?'
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return string(opcodes[op])
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// IsBranch returns true for OpJump and OpBack, the only opcodes that carry a
// target.
func (op Opcode) IsBranch() bool {
	return op == OpJump || op == OpBack
}

// NoTarget is the Target of an unresolved branch, and of every non-branch
// instruction.
const NoTarget = -1

// Instruction is a single decoded program instruction. Target is only
// meaningful for OpJump and OpBack: a Jump targets the index of its paired
// Back, a Back targets the index of its paired Jump.
type Instruction struct {
	Op     Opcode
	Target int
}

// Op returns a non-branch instruction.
func Op(op Opcode) Instruction {
	return Instruction{op, NoTarget}
}

// Jump returns a Jump instruction with the given target. Use NoTarget for a
// placeholder.
func Jump(target int) Instruction {
	return Instruction{OpJump, target}
}

// Back returns a Back instruction with the given target.
func Back(target int) Instruction {
	return Instruction{OpBack, target}
}

// Resolved returns false for a branch instruction without a target.
func (i Instruction) Resolved() bool {
	return !i.Op.IsBranch() || i.Target >= 0
}

func (i Instruction) String() string {
	switch i.Op {
	case OpJump, OpBack:
		if i.Target < 0 {
			return i.Op.String() + " ?"
		}
		return i.Op.String() + " " + strconv.Itoa(i.Target)
	}
	return i.Op.String()
}

// Program is a sequence of instructions addressed by index. A Program must not
// be modified once handed to New.
type Program []Instruction

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

// Package vm implements the Brainf VM.
//
// A VM Instance runs a Program, a slice of decoded instructions usually built
// by the asm package, over a Tape: a sequence of byte cells that grows on
// demand in both directions.
//
// Loops are implemented with two paired branch instructions. A Jump carries
// the index of its Back and is taken when the current cell is zero. A Back
// carries the index of its Jump and is taken when the current cell is not
// zero; it lands on the Jump itself, so the loop condition is checked again
// on every iteration. Note that the PC is not incremented in a single place,
// each opcode deals with the PC as needed.
//
// I/O is byte oriented. Input readers are stacked (see the Input option) and
// the output Writer is flushed before any blocking read so that prompts show
// up before the VM waits for an answer.
package vm

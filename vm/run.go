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

import "github.com/pkg/errors"

// Run starts execution of the VM.
//
// Run returns nil once the PC runs past the last instruction, which is the
// only way a Brainf program terminates. If an error occurs, the PC will point
// to the instruction that triggered the error. In both cases, output is
// flushed before returning.
//
// If the input runs dry, Run returns an error whose cause is
// ErrInputExhausted.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pc=%d/%d, tape %d/%d", i.PC, len(i.Program), i.Tape.Pos(), i.Tape.Len())
			default:
				panic(e)
			}
		}
		if ferr := i.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
	}()
	i.insCount = 0
	t := i.Tape
	for i.PC < len(i.Program) {
		ins := i.Program[i.PC]
		switch ins.Op {
		case OpRight:
			t.MoveRight()
			i.PC++
		case OpLeft:
			t.MoveLeft()
			i.PC++
		case OpInc:
			t.Inc()
			i.PC++
		case OpDec:
			t.Dec()
			i.PC++
		case OpOut:
			if err = t.Output(i.output); err != nil {
				return errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.PC++
		case OpIn:
			if err = i.in(); err != nil {
				return errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.PC++
		case OpJump:
			// skip the loop body: land on the paired Back, which will
			// fall through since the cell is still zero.
			if t.IsZero() {
				pc, err := i.branch(ins)
				if err != nil {
					return err
				}
				i.PC = pc
			} else {
				i.PC++
			}
		case OpBack:
			// land on the paired Jump so that the condition is checked
			// again.
			if !t.IsZero() {
				pc, err := i.branch(ins)
				if err != nil {
					return err
				}
				i.PC = pc
			} else {
				i.PC++
			}
		default:
			return errors.Errorf("invalid opcode %s @pc=%d", ins.Op, i.PC)
		}
		i.insCount++
	}
	return nil
}

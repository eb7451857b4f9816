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

var (
	// ErrUnresolvedTarget is returned when a Jump or Back without a valid
	// target is executed or found by Validate. Programs built by the asm
	// package never trigger it.
	ErrUnresolvedTarget = errors.New("unresolved branch target")

	// ErrInputExhausted is the cause of any error returned by an input
	// instruction that could not read a byte.
	ErrInputExhausted = errors.New("input stream exhausted")
)

// Validate checks that every branch instruction in p has a target and that
// targets are mutually paired: the Jump at index j targets a Back at index b
// that targets j, and b > j.
func (p Program) Validate() error {
	for pc, ins := range p {
		if !ins.Op.IsBranch() {
			continue
		}
		t := ins.Target
		if t < 0 || t >= len(p) {
			return errors.Wrapf(ErrUnresolvedTarget, "%s @pc=%d", ins, pc)
		}
		pair := p[t]
		switch {
		case ins.Op == OpJump && (pair.Op != OpBack || t <= pc),
			ins.Op == OpBack && (pair.Op != OpJump || t >= pc),
			pair.Target != pc:
			return errors.Wrapf(ErrUnresolvedTarget, "%s @pc=%d paired with %s @pc=%d", ins, pc, pair, t)
		}
	}
	return nil
}

// branch returns the target of the branch instruction ins at the current pc.
func (i *Instance) branch(ins Instruction) (int, error) {
	if ins.Target < 0 || ins.Target >= len(i.Program) {
		return 0, errors.Wrapf(ErrUnresolvedTarget, "%s @pc=%d", ins, i.PC)
	}
	return ins.Target, nil
}

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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/asm"
	"github.com/prog-lang/brainf/vm"
)

// Shows how to assemble a program and run it with output going to stdout.
func ExampleInstance_Run() {
	p, err := asm.Assemble("hello.bf", strings.NewReader(helloWorld))
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p, vm.Output(os.Stdout))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}

	// Output:
	// Hello World!
}

// Shows how stacked input readers are consumed, and what happens when they
// are all exhausted.
func ExampleInput() {
	// upper-case every input byte, which must be a lower case letter.
	p, err := asm.Assemble("upper.bf", strings.NewReader(",[>++++[<-------->-]<.,]"))
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p,
		vm.Output(os.Stdout),
		vm.Input(strings.NewReader("go")),
		vm.Input(strings.NewReader("brain")))
	if err != nil {
		panic(err)
	}
	err = i.Run()
	fmt.Println()
	fmt.Println(errors.Cause(err) == vm.ErrInputExhausted)

	// Output:
	// BRAINGO
	// true
}

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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prog-lang/brainf/asm"
	"github.com/prog-lang/brainf/vm"
)

type P = vm.Program

var (
	right = vm.Op(vm.OpRight)
	left  = vm.Op(vm.OpLeft)
	inc   = vm.Op(vm.OpInc)
	dec   = vm.Op(vm.OpDec)
	out   = vm.Op(vm.OpOut)
	in    = vm.Op(vm.OpIn)
)

func equal(a, b P) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var tests = [...]struct {
	name string
	code string
	prog P
}{
	{"empty", "", P{}},
	{"comments only", "hello, world. (but no commands)", P{in, out}},
	{"no brackets", "><+-.,", P{right, left, inc, dec, out, in}},
	{"nested", "+[>+[.]]", P{inc, vm.Jump(7), right, inc, vm.Jump(6), out, vm.Back(4), vm.Back(1)}},
	{"spaced", "+ [ > + [ . ] ]", P{inc, vm.Jump(7), right, inc, vm.Jump(6), out, vm.Back(4), vm.Back(1)}},
	{"siblings", "[-][+]", P{vm.Jump(2), dec, vm.Back(0), vm.Jump(5), inc, vm.Back(3)}},
	{"empty loop", "[]", P{vm.Jump(1), vm.Back(0)}},
	{"comment loop", `[(0)                                                    (1)   (2)
		An area like this can be used at the top to write some text that uses commas, dots,
		and other command symbols.(3) They'll be ignored here since the first command
		is a JUMP down to the end of this text.(4) However,(5) (6)[brackets have to be
		balanced here](7),(8) since otherwise,(9) the program is invalid.(10)
	](11)
	+[>+[.]]`, P{
		vm.Jump(11),
		in, in,
		out,
		out, in, vm.Jump(7),
		vm.Back(6), in, in, out,
		vm.Back(0),
		inc, vm.Jump(19), right, inc, vm.Jump(18), out, vm.Back(16), vm.Back(13),
	}},
}

func TestAssemble(t *testing.T) {
	for _, test := range tests {
		p, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if !equal(p, test.prog) {
			t.Errorf("%s: expected %v, got %v", test.name, test.prog, p)
		}
		if err = p.Validate(); err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
	}
}

// every bracket pair must point at each other.
func TestAssemble_pairs(t *testing.T) {
	code := "++[>[-]<[>+<-]>[<<[.]>>-]]<[[[[]]]][][[]]"
	p, err := asm.AssembleBytes("pairs", []byte(code))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	var stack []int
	for pc, ins := range p {
		switch ins.Op {
		case vm.OpJump:
			stack = append(stack, pc)
		case vm.OpBack:
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if ins.Target != open {
				t.Errorf("back @%d: target %d, expected %d", pc, ins.Target, open)
			}
			if p[open].Target != pc {
				t.Errorf("jump @%d: target %d, expected %d", open, p[open].Target, pc)
			}
		default:
			if ins.Target != vm.NoTarget {
				t.Errorf("%s @%d has a target", ins, pc)
			}
		}
	}
}

// non-command bytes change neither the instruction count nor the targets.
func TestAssemble_comments(t *testing.T) {
	code := "+[>+[.]<-]"
	ref, err := asm.AssembleBytes("ref", []byte(code))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	for i := 0; i < len(code); i++ {
		b.WriteString("abc 123\n\t")
		b.WriteByte(code[i])
	}
	b.WriteString(" trailing text")
	p, err := asm.Assemble("commented", &b)
	if err != nil {
		t.Fatal(err)
	}
	if !equal(ref, p) {
		t.Fatalf("expected %v, got %v", ref, p)
	}
}

func TestAssemble_errors(t *testing.T) {
	var errTests = [...]struct {
		code  string
		cause error
		index int
		line  int
		col   int
	}{
		//                           0 1 2 3 4 5 6 7 8
		{"+[>+[.[]]", asm.ErrUnmatchedOpen, 1, 1, 2},
		{"+>[.][+]]", asm.ErrUnmatchedClose, 8, 1, 9},
		{"]", asm.ErrUnmatchedClose, 0, 1, 1},
		{"[", asm.ErrUnmatchedOpen, 0, 1, 1},
		{"[\n  [ [] \n", asm.ErrUnmatchedOpen, 1, 2, 3},
		{"[[]\n[", asm.ErrUnmatchedOpen, 3, 2, 1},
	}
	for _, test := range errTests {
		_, err := asm.Assemble("test_errors", strings.NewReader(test.code))
		if errors.Cause(err) != test.cause {
			t.Errorf("%q: expected %v, got %v", test.code, test.cause, err)
			continue
		}
		e, ok := err.(*asm.Error)
		if !ok {
			t.Errorf("%q: expected *asm.Error, got %T", test.code, err)
			continue
		}
		if e.Index != test.index || e.Pos.Line != test.line || e.Pos.Column != test.col {
			t.Errorf("%q: expected index %d at %d:%d, got index %d at %d:%d",
				test.code, test.index, test.line, test.col, e.Index, e.Pos.Line, e.Pos.Column)
		}
		if !strings.HasPrefix(err.Error(), "test_errors:") {
			t.Errorf("%q: error message %q does not name the source", test.code, err.Error())
		}
	}
}

func TestAssembleFile_missing(t *testing.T) {
	_, err := asm.AssembleFile("testdata/does-not-exist.bf")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "cannot read source") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDisassemble(t *testing.T) {
	p := P{inc, vm.Jump(vm.NoTarget), vm.Back(1)}
	var b bytes.Buffer
	next, err := asm.Disassemble(p, 1, &b)
	if err != nil {
		t.Fatal(err)
	}
	if next != 2 || b.String() != "jump ???" {
		t.Fatalf("got %d %q", next, b.String())
	}
}

func BenchmarkAssemble(b *testing.B) {
	code := []byte(strings.Repeat("++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.", 64))
	b.SetBytes(int64(len(code)))
	for i := 0; i < b.N; i++ {
		if _, err := asm.AssembleBytes("bench", code); err != nil {
			b.Fatal(err)
		}
	}
}

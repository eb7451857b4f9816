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

// Package asm turns Brainf source code into a vm.Program and back.
//
// Source is any byte sequence. The eight command characters map to the
// following instructions; every other byte is a comment and is ignored,
// including inside loops:
//
//	>	right	move the cursor right
//	<	left	move the cursor left
//	+	inc	increment the current cell
//	-	dec	decrement the current cell
//	.	out	write the current cell
//	,	in	read one byte into the current cell
//	[	jump N	if the current cell is zero, go to N (the matching back)
//	]	back N	if the current cell is not zero, go to N (the matching jump)
//
// Brackets are matched in a single pass: each '[' emits a placeholder jump
// and pushes its index, each ']' pops it, patches the jump and emits the
// back. For example, "+[>+[.]]" assembles to:
//
//	     0	inc
//	     1	jump 7
//	     2	right
//	     3	inc
//	     4	jump 6
//	     5	out
//	     6	back 4
//	     7	back 1
//
// which is also the output format of DisassembleAll.
package asm

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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prog-lang/brainf/internal/bfi"
	"github.com/prog-lang/brainf/vm"
)

// dumpWindow is the number of cells shown on each side of the cursor.
const dumpWindow = 16

func cellChar(c vm.Cell) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	return strconv.QuoteRuneToASCII(rune(c))
}

// dumpTape renders the cells around the cursor as a table to w.
func dumpTape(t *vm.Tape, w io.Writer) error {
	cells, pos := t.Cells(), t.Pos()
	lo, hi := pos-dumpWindow, pos+dumpWindow+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(cells) {
		hi = len(cells)
	}

	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Tape: %d cells, cursor at %d", len(cells), pos))
	tw.AppendHeader(table.Row{"Cell", "Dec", "Hex", "Char", ""})
	for k := lo; k < hi; k++ {
		c := cells[k]
		var mark string
		if k == pos {
			mark = "<"
		}
		tw.AppendRow(table.Row{k, int(c), fmt.Sprintf("%02x", byte(c)), cellChar(c), mark})
	}

	ew := bfi.NewErrWriter(w)
	ew.WriteString(tw.Render())
	ew.Write([]byte{'\n'})
	return ew.Err
}

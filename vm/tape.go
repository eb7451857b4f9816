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

// Cell is the raw type stored in a tape location. Arithmetic on a Cell wraps
// modulo 256.
type Cell uint8

// Tape is the VM's memory: a sequence of cells unbounded in both directions
// and a cursor. Only the cells the cursor has visited are materialized, the
// cursor always addresses one of them.
//
// The zero value is not usable, use NewTape.
type Tape struct {
	buf []Cell
	lo  int // first materialized cell in buf
	hi  int // one past the last materialized cell in buf
	pos int // cursor, lo <= pos < hi
}

// NewTape returns a tape with a single zero cell under the cursor.
func NewTape() *Tape {
	t := &Tape{buf: make([]Cell, 32)}
	t.Reset()
	return t
}

// Reset discards all cells but one, set to zero, under the cursor.
func (t *Tape) Reset() {
	for i := t.lo; i < t.hi; i++ {
		t.buf[i] = 0
	}
	t.lo = len(t.buf) / 2
	t.hi = t.lo + 1
	t.pos = t.lo
}

// MoveRight moves the cursor one cell to the right, materializing a zero cell
// if it falls off the right end.
func (t *Tape) MoveRight() {
	t.pos++
	if t.pos < t.hi {
		return
	}
	if t.hi == len(t.buf) {
		nb := make([]Cell, 2*len(t.buf))
		copy(nb, t.buf)
		t.buf = nb
	}
	t.hi++
}

// MoveLeft moves the cursor one cell to the left. At the left end, a zero cell
// is materialized there and the cursor moves onto it.
func (t *Tape) MoveLeft() {
	if t.pos > t.lo {
		t.pos--
		return
	}
	if t.lo == 0 {
		// grow to the left by the current buffer size.
		n := len(t.buf)
		nb := make([]Cell, 2*n)
		copy(nb[n:], t.buf)
		t.buf = nb
		t.lo += n
		t.hi += n
	}
	t.lo--
	t.pos = t.lo
}

// Inc increments the current cell.
func (t *Tape) Inc() { t.buf[t.pos]++ }

// Dec decrements the current cell.
func (t *Tape) Dec() { t.buf[t.pos]-- }

// IsZero returns true if the current cell is 0.
func (t *Tape) IsZero() bool { return t.buf[t.pos] == 0 }

// Get returns the value of the current cell.
func (t *Tape) Get() Cell { return t.buf[t.pos] }

// Set sets the value of the current cell.
func (t *Tape) Set(v Cell) { t.buf[t.pos] = v }

// Output writes the current cell as a single byte to w.
func (t *Tape) Output(w io.ByteWriter) error {
	if err := w.WriteByte(byte(t.buf[t.pos])); err != nil {
		return errors.Wrap(err, "output failed")
	}
	return nil
}

// Input reads exactly one byte from r into the current cell. The cell is left
// untouched on failure and the returned error's cause is ErrInputExhausted.
func (t *Tape) Input(r io.ByteReader) error {
	if r == nil {
		return errors.WithStack(ErrInputExhausted)
	}
	c, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return errors.WithStack(ErrInputExhausted)
		}
		return errors.Wrapf(ErrInputExhausted, "%v", err)
	}
	t.buf[t.pos] = Cell(c)
	return nil
}

// Pos returns the cursor position relative to the leftmost materialized cell.
func (t *Tape) Pos() int { return t.pos - t.lo }

// Len returns the number of materialized cells.
func (t *Tape) Len() int { return t.hi - t.lo }

// Cells returns a copy of the materialized cells, leftmost first.
func (t *Tape) Cells() []Cell {
	c := make([]Cell, t.hi-t.lo)
	copy(c, t.buf[t.lo:t.hi])
	return c
}

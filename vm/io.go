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

import "io"

type flusher interface {
	Flush() error
}

type multiByteReader struct {
	readers []io.ByteReader
}

func (mr *multiByteReader) ReadByte() (c byte, err error) {
	for len(mr.readers) > 0 {
		c, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiByteReader) pushReader(r io.Reader) {
	mr.readers = append([]io.ByteReader{newByteReader(r)}, mr.readers...)
}

// PushInput sets r as the current input Reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	if r == nil {
		return
	}
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newByteReader(r)
	case *multiByteReader:
		in.pushReader(r)
	default:
		i.input = &multiByteReader{[]io.ByteReader{newByteReader(r), i.input}}
	}
}

// Flush flushes the output Writer if it supports it.
func (i *Instance) Flush() error {
	if f, ok := i.output.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (i *Instance) in() error {
	if err := i.Flush(); err != nil {
		return err
	}
	return i.Tape.Input(i.input)
}

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

// byteWriterWrapper turns a basic writer into an io.ByteWriter.
type byteWriterWrapper struct {
	io.Writer
	b [1]byte
}

func (w *byteWriterWrapper) WriteByte(c byte) error {
	w.b[0] = c
	_, err := w.Writer.Write(w.b[:])
	return err
}

func (w *byteWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements io.ByteWriter or wraps it up
// into a byteWriterWrapper
func newWriter(w io.Writer) io.ByteWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case io.ByteWriter:
		return ww
	default:
		return &byteWriterWrapper{Writer: w}
	}
}

// byteReaderWrapper wraps a basic reader into a io.ByteReader and io.Closer
type byteReaderWrapper struct {
	io.Reader
	b [1]byte
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	for {
		n, err := r.Reader.Read(r.b[:])
		if n > 0 {
			return r.b[0], nil
		}
		if err != nil {
			return 0, err
		}
		// n == 0 && err == nil: try again
	}
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{Reader: r}
	}
}

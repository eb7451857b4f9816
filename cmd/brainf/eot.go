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

import "io"

// eot is the byte sent by CTRL-D.
const eot = 4

// eotReader reads one byte at a time from r and reports io.EOF once it reads
// an EOT byte. It stands in for the terminal's line discipline in raw mode.
type eotReader struct {
	r io.Reader
}

func (e *eotReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := e.r.Read(p[:1])
	if n == 1 && p[0] == eot {
		return 0, io.EOF
	}
	return n, err
}

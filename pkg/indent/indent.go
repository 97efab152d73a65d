// Copyright 2024 Google Inc.
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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return prefix + strings.Join(lines, prefix)
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	lines := bytes.SplitAfter(b, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return append(append([]byte{}, prefix...), bytes.Join(lines, prefix)...)
}

// NewWriter returns a writer that prefixes each line written to it with
// prefix and then writes it to w.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &indenter{w: w, prefix: []byte(prefix), bol: true}
}

type indenter struct {
	w      io.Writer
	prefix []byte
	bol    bool // at the beginning of a line
}

// Write writes data to the underlying writer, inserting the prefix at the
// start of every line.  The returned count is len(data) on success even
// though more bytes were written.
func (in *indenter) Write(data []byte) (int, error) {
	total := 0
	for len(data) > 0 {
		if in.bol {
			if _, err := in.w.Write(in.prefix); err != nil {
				return total, err
			}
			in.bol = false
		}
		line := data
		if x := bytes.IndexByte(data, '\n'); x >= 0 {
			line = data[:x+1]
			in.bol = true
		}
		n, err := in.w.Write(line)
		total += n
		if err != nil {
			return total, err
		}
		data = data[len(line):]
	}
	return total, nil
}

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

package indent

import (
	"bytes"
	"testing"
)

var tests = []struct {
	prefix, in, out string
}{
	{"", "", ""},
	{"--", "", ""},
	{"", "x\nx", "x\nx"},
	{"--", "x", "--x"},
	{"--", "\n", "--\n"},
	{"--", "x\n", "--x\n"},
	{"--", "\nx", "--\n--x"},
	{"--", "two\nlines\n", "--two\n--lines\n"},
	{"--", "empty\n\nmiddle\n", "--empty\n--\n--middle\n"},
	{"--", "empty\nlast\n\n", "--empty\n--last\n--\n"},
}

func TestString(t *testing.T) {
	for x, tt := range tests {
		if out := String(tt.prefix, tt.in); out != tt.out {
			t.Errorf("#%d: String got %q, want %q", x, out, tt.out)
		}
		if out := string(Bytes([]byte(tt.prefix), []byte(tt.in))); out != tt.out {
			t.Errorf("#%d: Bytes got %q, want %q", x, out, tt.out)
		}
	}
}

func TestWriter(t *testing.T) {
	for x, tt := range tests {
		// Deliver the input in varying chunk sizes; the writer must track
		// line state across writes.
		for size := 1; size < 16; size <<= 1 {
			var b bytes.Buffer
			w := NewWriter(&b, tt.prefix)
			data := []byte(tt.in)
			for len(data) > 0 {
				n := size
				if n > len(data) {
					n = len(data)
				}
				wrote, err := w.Write(data[:n])
				if err != nil {
					t.Fatalf("#%d/%d: %v", x, size, err)
				}
				if wrote != n {
					t.Fatalf("#%d/%d: wrote %d, want %d", x, size, wrote, n)
				}
				data = data[n:]
			}
			if out := b.String(); out != tt.out {
				t.Errorf("#%d/%d: got %q, want %q", x, size, out, tt.out)
			}
		}
	}
}

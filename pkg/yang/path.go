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

package yang

// Scope paths are strings of the form "/a/b/": they start and end with a
// slash and each segment is the name of a scope-opening ancestor.  The
// walker appends and truncates one buffer while descending; the resolver
// only ascends and never constructs new keys beyond path+name.

import "strings"

// A scopePath is the mutable scope of the walker.  The zero value is not
// usable; construct with newScopePath.
type scopePath struct {
	buf []byte
}

func newScopePath() *scopePath {
	return &scopePath{buf: []byte{'/'}}
}

// push enters the scope of name, returning a mark for the matching pop.
func (p *scopePath) push(name string) int {
	mark := len(p.buf)
	p.buf = append(p.buf, name...)
	p.buf = append(p.buf, '/')
	return mark
}

// pop restores the path to the state push returned mark for.
func (p *scopePath) pop(mark int) {
	p.buf = p.buf[:mark]
}

// key returns the absolute path of name declared in the current scope.
func (p *scopePath) key(name string) string {
	return string(p.buf) + name
}

func (p *scopePath) String() string { return string(p.buf) }

// ascend returns path with its innermost segment removed: "/a/b/" becomes
// "/a/".  The root ascends to itself.
func ascend(path string) string {
	if path == "/" {
		return path
	}
	trimmed := strings.TrimSuffix(path, "/")
	return trimmed[:strings.LastIndexByte(trimmed, '/')+1]
}

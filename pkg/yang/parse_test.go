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

import (
	"strings"
	"testing"
)

func (s *Statement) equal(o *Statement) bool {
	if s.Keyword != o.Keyword ||
		s.HasArgument != o.HasArgument ||
		s.Argument != o.Argument ||
		len(s.Statements) != len(o.Statements) {
		return false
	}
	for i, ss := range s.Statements {
		if !ss.equal(o.Statements[i]) {
			return false
		}
	}
	return true
}

// SA returns a statement with an argument and optional substatements.
func SA(k, a string, ss ...*Statement) *Statement {
	return &Statement{
		Keyword:     k,
		Argument:    a,
		HasArgument: true,
		Statements:  ss,
	}
}

// S returns a statement with no argument and optional substatements.
func S(k string, ss ...*Statement) *Statement {
	return &Statement{
		Keyword:    k,
		Statements: ss,
	}
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		out  []*Statement
		err  string
	}{
		{line: line()},
		{line: line(), in: `
foo;
`,
			out: []*Statement{
				S("foo"),
			},
		},
		{line: line(), in: `
foo {}
`,
			out: []*Statement{
				S("foo"),
			},
		},
		{line: line(), in: `
foo bar;
`,
			out: []*Statement{
				SA("foo", "bar"),
			},
		},
		{line: line(), in: `
foo "bar";
`,
			out: []*Statement{
				SA("foo", "bar"),
			},
		},
		{line: line(), in: `
foo "bar" + "baz";
`,
			out: []*Statement{
				SA("foo", "barbaz"),
			},
		},
		{line: line(), in: `
foo "bar" + 'baz' + "qux";
`,
			out: []*Statement{
				SA("foo", "barbazqux"),
			},
		},
		{line: line(), in: `
foo bar {
  key value;
  nested x {
    inner;
  }
}
`,
			out: []*Statement{
				SA("foo", "bar",
					SA("key", "value"),
					SA("nested", "x",
						S("inner"),
					),
				),
			},
		},
		{line: line(), in: `
foo bar;
red black;
`,
			out: []*Statement{
				SA("foo", "bar"),
				SA("red", "black"),
			},
		},
		{line: line(), in: `
}
`,
			err: "unexpected }",
		},
		{line: line(), in: `
foo bar {
`,
			err: "missing }",
		},
	} {
		out, err := Parse(tt.in, "test.yang")
		switch {
		case err == nil && tt.err == "":
		case err == nil:
			t.Errorf("%d: did not get expected error %q", tt.line, tt.err)
			continue
		case tt.err == "":
			t.Errorf("%d: unexpected error: %v", tt.line, err)
			continue
		default:
			if !strings.Contains(err.Error(), tt.err) {
				t.Errorf("%d: got error %q, want %q", tt.line, err, tt.err)
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("%d: error is %T, want *ParseError", tt.line, err)
			}
			continue
		}

		if len(out) != len(tt.out) {
			t.Errorf("%d: got %d statements, want %d", tt.line, len(out), len(tt.out))
			continue
		}
		for i, s := range out {
			if !s.equal(tt.out[i]) {
				t.Errorf("%d: statement %d:\ngot:\n%swant:\n%s", tt.line, i, s, tt.out[i])
			}
		}
	}
}

func TestStatementLocation(t *testing.T) {
	ss, err := Parse("foo bar {\n  baz zap;\n}\n", "test.yang")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ss[0].Location(), "test.yang:1:1"; got != want {
		t.Errorf("got location %s, want %s", got, want)
	}
	if got, want := ss[0].Statements[0].Location(), "test.yang:2:3"; got != want {
		t.Errorf("got location %s, want %s", got, want)
	}
}

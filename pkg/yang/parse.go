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

// This file implements Parse, which parses the input as generic YANG and
// returns a slice of Statement trees.  Every YANG statement has the shape
//
//	keyword [argument] ( ";" | "{" statement* "}" )
//
// so a single recursive routine covers the whole language.  Keyword-level
// interpretation is the walker's job (see walker.go).

import (
	"bytes"
	"fmt"
	"strings"
)

// A Statement is a generic YANG statement.  A Statement may have optional
// sub-statements, making it a tree.
type Statement struct {
	Keyword     string
	HasArgument bool
	Argument    string
	Statements  []*Statement

	file string
	line int // 1 based
	col  int // 1 based
}

// Arg returns the argument of s, and whether s has an argument at all.
func (s *Statement) Arg() (string, bool) { return s.Argument, s.HasArgument }

// Location returns the source location s was parsed at.
func (s *Statement) Location() string {
	switch {
	case s == nil || s.file == "" && s.line == 0:
		return "unknown"
	case s.file == "":
		return fmt.Sprintf("line %d:%d", s.line, s.col)
	default:
		return fmt.Sprintf("%s:%d:%d", s.file, s.line, s.col)
	}
}

// String returns s rendered as YANG source.  The output is normalized, not
// a byte-for-byte reproduction of the input.
func (s *Statement) String() string {
	var b strings.Builder
	s.write(&b, "")
	return b.String()
}

func (s *Statement) write(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString(s.Keyword)
	if s.HasArgument {
		fmt.Fprintf(b, " %q", s.Argument)
	}
	if len(s.Statements) == 0 {
		b.WriteString(";\n")
		return
	}
	b.WriteString(" {\n")
	for _, ss := range s.Statements {
		ss.write(b, indent+"  ")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// A parser parses the contents of a single .yang file into statements.
type parser struct {
	lex    *lexer
	errout *bytes.Buffer
	backup []*token // pushed-back tokens, LIFO

	// hitBrace is returned by nextStatement when a '}' is read.  The brace
	// may legitimately close the caller's block or may be stray; only the
	// caller can tell.  Its position records where the brace was.
	hitBrace *Statement
}

// Parse parses input as generic YANG and returns the list of top level
// statements.  The file argument names the source of input for locations in
// error messages.  On any lexical or structural error a *ParseError
// carrying every complaint is returned.
func Parse(input, file string) ([]*Statement, error) {
	l := newLexer(input, file)
	p := &parser{
		lex:      l,
		errout:   l.errout,
		hitBrace: &Statement{},
	}

	var statements []*Statement
Loop:
	for {
		switch s := p.nextStatement(); s {
		case nil:
			break Loop
		case p.hitBrace:
			fmt.Fprintf(p.errout, "%s: unexpected %c\n", s.Location(), closeBrace)
		default:
			statements = append(statements, s)
		}
	}

	if p.errout.Len() != 0 {
		return nil, &ParseError{Msg: strings.TrimSpace(p.errout.String())}
	}
	return statements, nil
}

// push returns tokens to the input stream.  Tokens are returned in LIFO
// order: the last token pushed is the next token read.
func (p *parser) push(ts ...*token) {
	p.backup = append(p.backup, ts...)
}

// next returns the next token, reassembling concatenated string literals
// ("a" + "b") into a single string token.
func (p *parser) next() *token {
	if n := len(p.backup); n > 0 {
		t := p.backup[n-1]
		p.backup = p.backup[:n-1]
		return t
	}
	scan := func() *token {
		for {
			if t := p.lex.nextToken(); t.Code() != tError {
				return t
			}
		}
	}
	t := scan()
	if t.Code() != tString {
		return t
	}
	for {
		plus := scan()
		if plus.Code() != tIdentifier || plus.Text != "+" {
			if plus.Code() != tEOF {
				p.push(plus)
			}
			return t
		}
		str := scan()
		if str.Code() != tString {
			p.push(str, plus)
			return t
		}
		t.Text += str.Text
	}
}

// nextStatement reads one statement, recursing for sub-statements.  It
// returns nil at end of input and p.hitBrace when a '}' is read instead of
// a statement.
func (p *parser) nextStatement() *Statement {
	t := p.next()
	switch t.Code() {
	case tEOF:
		return nil
	case closeBrace:
		p.hitBrace.file = t.File
		p.hitBrace.line = t.Line
		p.hitBrace.col = t.Col
		return p.hitBrace
	case tIdentifier:
	default:
		fmt.Fprintf(p.errout, "%v: not an identifier\n", t)
		return p.nextStatement()
	}

	s := &Statement{
		Keyword: t.Text,
		file:    t.File,
		line:    t.Line,
		col:     t.Col,
	}

	// Escape expansion inside the argument of a pattern statement differs
	// from every other string argument.
	p.lex.inPattern = t.Text == "pattern"
	t = p.next()
	p.lex.inPattern = false

	if c := t.Code(); c == tString || c == tIdentifier {
		s.HasArgument = true
		s.Argument = t.Text
		t = p.next()
	}

	switch t.Code() {
	case tEOF:
		fmt.Fprintf(p.errout, "%s: unexpected EOF\n", s.file)
		return nil
	case ';':
		return s
	case openBrace:
		for {
			switch ss := p.nextStatement(); ss {
			case nil:
				fmt.Fprintf(p.errout, "%s: missing %c\n", s.Location(), closeBrace)
				return nil
			case p.hitBrace:
				return s
			default:
				s.Statements = append(s.Statements, ss)
			}
		}
	default:
		fmt.Fprintf(p.errout, "%v: syntax error\n", t)
		return p.nextStatement()
	}
}

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

// Program yangparse parses a YANG module, loads its submodules and imports,
// resolves uses references, and displays the result.
//
// Usage: yangparse [--format FORMAT] FILE.yang
//
// FORMAT defaults to "tree".  Use --help for the list of formats.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pborman/getopt"
	"github.com/yangtools/yangparse/pkg/yang"
)

// Each output format registers itself with register at init time.
type formatter struct {
	name string
	f    func(io.Writer, *yang.Module)
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

var stop = os.Exit

func main() {
	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	var help bool
	format := "tree"
	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE.yang")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}
	if help {
		getopt.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, n := range formats {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", n, formatters[n].help)
		}
		stop(0)
	}

	f, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	args := getopt.Args()
	if len(args) != 1 {
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	module, err := yang.ParseFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
	f.f(os.Stdout, module)
}

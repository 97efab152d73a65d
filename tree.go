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

package main

import (
	"fmt"
	"io"

	"github.com/yangtools/yangparse/pkg/indent"
	"github.com/yangtools/yangparse/pkg/yang"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the resolved data tree",
	})
}

func doTree(w io.Writer, m *yang.Module) {
	fmt.Fprintf(w, "module %s {\n", m.Name)
	for _, n := range m.Body {
		writeNode(indent.NewWriter(w, "  "), n)
	}
	fmt.Fprintln(w, "}")
}

// writeNode writes one node and its data children.  Attribute-only detail
// (musts, defaults, restrictions) is omitted; the tree shows shape.
func writeNode(w io.Writer, n yang.SchemaNode) {
	switch n := n.(type) {
	case *yang.Container:
		writeDir(w, "container", n.Name, n.DataDefs)
	case *yang.List:
		fmt.Fprintf(w, "list [%s]%s {\n", n.Key, n.Name)
		for _, d := range n.DataDefs {
			writeNode(indent.NewWriter(w, "  "), d)
		}
		fmt.Fprintln(w, "}")
	case *yang.Leaf:
		fmt.Fprintf(w, "leaf %s (%s)\n", n.Name, n.Type.Name)
	case *yang.LeafList:
		fmt.Fprintf(w, "leaf-list []%s (%s)\n", n.Name, n.Type.Name)
	case *yang.Choice:
		fmt.Fprintf(w, "choice %s {\n", n.Name)
		for _, c := range n.Cases {
			switch c := c.(type) {
			case *yang.LongCase:
				writeDir(indent.NewWriter(w, "  "), "case", c.Name, c.DataDefs)
			case *yang.ShortCase:
				writeNode(indent.NewWriter(w, "  "), c.Def)
			}
		}
		fmt.Fprintln(w, "}")
	case *yang.Anydata:
		fmt.Fprintf(w, "anydata %s\n", n.Name)
	case *yang.Anyxml:
		fmt.Fprintf(w, "anyxml %s\n", n.Name)
	case *yang.Uses:
		// Only present when the grouping could not be resolved.
		fmt.Fprintf(w, "uses %s (unresolved)\n", n.Grouping)
	case *yang.Rpc:
		fmt.Fprintf(w, "rpc %s {\n", n.Name)
		writeRPCBody(w, n.Input, n.Output)
		fmt.Fprintln(w, "}")
	case *yang.Notification:
		writeDir(w, "notification", n.Name, n.DataDefs)
	}
}

func writeDir(w io.Writer, kind, name string, defs []yang.DataDef) {
	fmt.Fprintf(w, "%s %s {\n", kind, name)
	for _, d := range defs {
		writeNode(indent.NewWriter(w, "  "), d)
	}
	fmt.Fprintln(w, "}")
}

func writeRPCBody(w io.Writer, in *yang.Input, out *yang.Output) {
	iw := indent.NewWriter(w, "  ")
	if in != nil {
		fmt.Fprintln(iw, "input {")
		for _, d := range in.DataDefs {
			writeNode(indent.NewWriter(iw, "  "), d)
		}
		fmt.Fprintln(iw, "}")
	}
	if out != nil {
		fmt.Fprintln(iw, "output {")
		for _, d := range out.DataDefs {
			writeNode(indent.NewWriter(iw, "  "), d)
		}
		fmt.Fprintln(iw, "}")
	}
}

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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// resolveModule walks in and resolves it with no imported modules.
func resolveModule(t *testing.T, in string) *Module {
	t.Helper()
	m, w := walkModule(t, in)
	r := &resolver{
		refs:           w.refs,
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
	}
	r.resolve(m)
	return m
}

// countUses walks every data-def sequence of m and returns the number of
// Uses nodes remaining.
func countUses(m *Module) int {
	var count int
	var inDefs func(defs []DataDef)
	inDefs = func(defs []DataDef) {
		for _, d := range defs {
			switch n := d.(type) {
			case *Uses:
				count++
			case *Container:
				inDefs(n.DataDefs)
				for _, a := range n.Actions {
					if a.Input != nil {
						inDefs(a.Input.DataDefs)
					}
					if a.Output != nil {
						inDefs(a.Output.DataDefs)
					}
				}
				for _, nt := range n.Notifications {
					inDefs(nt.DataDefs)
				}
			case *List:
				inDefs(n.DataDefs)
			case *Choice:
				for _, cs := range n.Cases {
					switch c := cs.(type) {
					case *LongCase:
						inDefs(c.DataDefs)
					case *ShortCase:
						inDefs([]DataDef{c.Def})
					}
				}
			}
		}
	}
	inNode := func(n SchemaNode) {
		switch n := n.(type) {
		case DataDef:
			inDefs([]DataDef{n})
		case *Rpc:
			if n.Input != nil {
				inDefs(n.Input.DataDefs)
			}
			if n.Output != nil {
				inDefs(n.Output.DataDefs)
			}
		case *Notification:
			inDefs(n.DataDefs)
		}
	}
	for _, n := range m.Body {
		inNode(n)
	}
	return count
}

func TestResolveLocalGrouping(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type int32; }
  }

  container c {
    uses g;
  }
}
`)
	c := m.Body[0].(*Container)
	want := []DataDef{
		&Leaf{Name: "x", Type: TypeInfo{Name: "int32"}},
	}
	if diff := cmp.Diff(want, c.DataDefs); diff != "" {
		t.Errorf("c.DataDefs (-want +got):\n%s", diff)
	}
	if n := countUses(m); n != 0 {
		t.Errorf("%d uses nodes remain after resolve", n)
	}
}

func TestResolveTopLevelUses(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type int32; }
    container sub {
      leaf y { type int32; }
    }
  }

  leaf before { type string; }
  uses g;
  leaf after { type string; }
}
`)
	var names []string
	for _, n := range m.Body {
		names = append(names, n.NName())
	}
	want := []string{"before", "x", "sub", "after"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("body order (-want +got):\n%s", diff)
	}
}

func TestResolveOrderPreservation(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf g1 { type string; }
    leaf g2 { type string; }
  }

  container c {
    leaf a { type string; }
    uses g;
    leaf b { type string; }
  }
}
`)
	c := m.Body[0].(*Container)
	var names []string
	for _, d := range c.DataDefs {
		names = append(names, d.NName())
	}
	want := []string{"a", "g1", "g2", "b"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestResolveMultipleUses(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping a { leaf a1 { type string; } }
  grouping b { leaf b1 { type string; } leaf b2 { type string; } }

  container c {
    uses a;
    leaf mid { type string; }
    uses b;
  }
}
`)
	c := m.Body[0].(*Container)
	var names []string
	for _, d := range c.DataDefs {
		names = append(names, d.NName())
	}
	want := []string{"a1", "mid", "b1", "b2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestResolveLexicalShadowing(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf outer { type string; }
  }

  container c {
    grouping g {
      leaf inner { type string; }
    }
    container d {
      uses g;
    }
  }

  container e {
    uses g;
  }
}
`)
	d := m.Body[0].(*Container).DataDefs[0].(*Container)
	if len(d.DataDefs) != 1 || d.DataDefs[0].NName() != "inner" {
		t.Errorf("c/d expanded to %v, want [inner]", defNames(d.DataDefs))
	}
	e := m.Body[1].(*Container)
	if len(e.DataDefs) != 1 || e.DataDefs[0].NName() != "outer" {
		t.Errorf("e expanded to %v, want [outer]", defNames(e.DataDefs))
	}
}

func defNames(defs []DataDef) []string {
	var names []string
	for _, d := range defs {
		names = append(names, d.NName())
	}
	return names
}

func TestResolveNestedUses(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping inner {
    leaf deep { type string; }
  }
  grouping outer {
    uses inner;
    container box {
      uses inner;
    }
  }

  container c {
    uses outer;
  }
}
`)
	c := m.Body[0].(*Container)
	names := defNames(c.DataDefs)
	want := []string{"deep", "box"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("c.DataDefs (-want +got):\n%s", diff)
	}
	box := c.DataDefs[1].(*Container)
	if got := defNames(box.DataDefs); len(got) != 1 || got[0] != "deep" {
		t.Errorf("box expanded to %v, want [deep]", got)
	}
	if n := countUses(m); n != 0 {
		t.Errorf("%d uses nodes remain after resolve", n)
	}
}

func TestResolveSharedGroupingIndependence(t *testing.T) {
	// Two expansions of the same grouping must not share data-def slices.
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    container box {
      leaf x { type string; }
    }
  }

  container a { uses g; }
  container b { uses g; }
}
`)
	boxA := m.Body[0].(*Container).DataDefs[0].(*Container)
	boxB := m.Body[1].(*Container).DataDefs[0].(*Container)
	if boxA == boxB {
		t.Fatal("expansions share the same container node")
	}
	boxA.DataDefs = append(boxA.DataDefs, &Leaf{Name: "extra"})
	if len(boxB.DataDefs) != 1 {
		t.Errorf("mutating one expansion changed the other")
	}
}

func TestResolveInRpcAndNotification(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping payload {
    leaf data { type string; }
  }

  rpc send {
    input { uses payload; }
    output { uses payload; }
  }

  notification dropped {
    uses payload;
  }

  container box {
    action flush {
      input { uses payload; }
    }
    notification overflow {
      uses payload;
    }
  }
}
`)
	rpc := m.Body[0].(*Rpc)
	if got := defNames(rpc.Input.DataDefs); len(got) != 1 || got[0] != "data" {
		t.Errorf("rpc input expanded to %v, want [data]", got)
	}
	if got := defNames(rpc.Output.DataDefs); len(got) != 1 || got[0] != "data" {
		t.Errorf("rpc output expanded to %v, want [data]", got)
	}
	nt := m.Body[1].(*Notification)
	if got := defNames(nt.DataDefs); len(got) != 1 || got[0] != "data" {
		t.Errorf("notification expanded to %v, want [data]", got)
	}
	box := m.Body[2].(*Container)
	if got := defNames(box.Actions[0].Input.DataDefs); len(got) != 1 || got[0] != "data" {
		t.Errorf("action input expanded to %v, want [data]", got)
	}
	if got := defNames(box.Notifications[0].DataDefs); len(got) != 1 || got[0] != "data" {
		t.Errorf("nested notification expanded to %v, want [data]", got)
	}
}

func TestResolveInChoice(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type string; }
  }

  choice ch {
    case one {
      uses g;
    }
    container shorthand {
      uses g;
    }
  }
}
`)
	ch := m.Body[0].(*Choice)
	one := ch.Cases[0].(*LongCase)
	if got := defNames(one.DataDefs); len(got) != 1 || got[0] != "x" {
		t.Errorf("long case expanded to %v, want [x]", got)
	}
	shorthand := ch.Cases[1].(*ShortCase).Def.(*Container)
	if got := defNames(shorthand.DataDefs); len(got) != 1 || got[0] != "x" {
		t.Errorf("short case expanded to %v, want [x]", got)
	}
}

func TestResolveGroupingCycle(t *testing.T) {
	// A grouping that uses itself expands once; the inner reference is left
	// in place like any other unresolvable uses.
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type string; }
    uses g;
  }

  container c {
    uses g;
  }
}
`)
	c := m.Body[0].(*Container)
	names := defNames(c.DataDefs)
	want := []string{"x", "g"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("c.DataDefs (-want +got):\n%s", diff)
	}
	if _, ok := c.DataDefs[1].(*Uses); !ok {
		t.Errorf("inner cyclic uses is %T, want *Uses", c.DataDefs[1])
	}
}

func TestResolveUnresolvedTolerated(t *testing.T) {
	m := resolveModule(t, `
module m {
  namespace "u:m";
  prefix m;

  container c {
    uses missing;
    leaf present { type string; }
  }
}
`)
	c := m.Body[0].(*Container)
	names := defNames(c.DataDefs)
	want := []string{"missing", "present"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("c.DataDefs (-want +got):\n%s", diff)
	}
	if _, ok := c.DataDefs[0].(*Uses); !ok {
		t.Errorf("unresolved uses was removed from the tree")
	}
}

func TestResolveIdempotent(t *testing.T) {
	m, w := walkModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type string; }
  }

  container c {
    uses g;
    uses missing;
  }
}
`)
	r := &resolver{
		refs:           w.refs,
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
	}
	r.resolve(m)
	first := defNames(m.Body[0].(*Container).DataDefs)

	r2 := &resolver{
		refs:           w.refs,
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
	}
	r2.resolve(m)
	second := defNames(m.Body[0].(*Container).DataDefs)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second resolve changed the tree (-first +second):\n%s", diff)
	}
}

func TestResolveImportedGrouping(t *testing.T) {
	m, w := walkModule(t, `
module a {
  namespace "u:a";
  prefix a;

  import b { prefix bp; }

  container c {
    uses bp:gb;
    uses bp:nope;
    uses xx:gb;
  }
}
`)
	imported := map[string]*ReferenceNodes{
		"b": {
			Groupings: map[string]*Grouping{
				"/gb": {
					Name: "gb",
					DataDefs: []DataDef{
						&Leaf{Name: "v", Type: TypeInfo{Name: "string"}},
					},
				},
				// Imported lookup is top level only; this must not be found.
				"/deep/gb": {Name: "gb"},
			},
		},
	}
	r := &resolver{
		refs:           w.refs,
		imported:       imported,
		prefixToModule: map[string]string{"bp": "b"},
	}
	r.resolve(m)

	c := m.Body[0].(*Container)
	names := defNames(c.DataDefs)
	// bp:gb expands; bp:nope (no such grouping) and xx:gb (unbound prefix)
	// stay in place.
	want := []string{"v", "bp:nope", "xx:gb"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("c.DataDefs (-want +got):\n%s", diff)
	}
}

func TestResolvePrefixSymmetry(t *testing.T) {
	// uses bp:g in the importer expands to the same content as uses g
	// inside module b itself.
	b, bw := walkModule(t, `
module b {
  namespace "u:b";
  prefix b;

  grouping g {
    leaf v { type uint8; }
  }

  container local {
    uses g;
  }
}
`)
	rb := &resolver{
		refs:           bw.refs,
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
	}
	rb.resolve(b)
	localDefs := b.Body[0].(*Container).DataDefs

	a, aw := walkModule(t, `
module a {
  namespace "u:a";
  prefix a;

  import b { prefix bp; }

  container remote {
    uses bp:g;
  }
}
`)
	ra := &resolver{
		refs:           aw.refs,
		imported:       map[string]*ReferenceNodes{"b": bw.refs},
		prefixToModule: map[string]string{"bp": "b"},
	}
	ra.resolve(a)
	remoteDefs := a.Body[0].(*Container).DataDefs

	if diff := cmp.Diff(localDefs, remoteDefs); diff != "" {
		t.Errorf("imported expansion differs from local (-local +remote):\n%s", diff)
	}
}

func TestResolveInAugmentBody(t *testing.T) {
	m, w := walkModule(t, `
module m {
  namespace "u:m";
  prefix m;

  grouping g {
    leaf x { type string; }
  }

  augment "/m:somewhere" {
    uses g;
  }
}
`)
	r := &resolver{
		refs:           w.refs,
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
	}
	r.resolve(m)
	// Augments are never applied, but their bodies are resolved so a
	// downstream applier sees finished subtrees.
	a := w.refs.Augments[0]
	if got := defNames(a.DataDefs); len(got) != 1 || got[0] != "x" {
		t.Errorf("augment body expanded to %v, want [x]", got)
	}
	if _, ok := a.DataDefs[0].(*Leaf); !ok {
		t.Errorf("augment body holds %T, want *Leaf", a.DataDefs[0])
	}
}

func TestAscend(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"/", "/"},
		{"/a/", "/"},
		{"/a/b/", "/a/"},
		{"/a/b/c/", "/a/b/"},
	} {
		if got := ascend(tt.in); got != tt.want {
			t.Errorf("ascend(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScopePath(t *testing.T) {
	p := newScopePath()
	if p.String() != "/" {
		t.Fatalf("new path = %q, want /", p.String())
	}
	m1 := p.push("a")
	m2 := p.push("b")
	if got, want := p.key("g"), "/a/b/g"; got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
	p.pop(m2)
	if got, want := p.key("g"), "/a/g"; got != want {
		t.Errorf("key after pop = %q, want %q", got, want)
	}
	p.pop(m1)
	if got, want := p.String(), "/"; got != want {
		t.Errorf("path after pops = %q, want %q", got, want)
	}
}

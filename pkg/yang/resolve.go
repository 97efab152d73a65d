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

// This file implements the reference resolver.  After the loader has merged
// all submodules into the main module and collected the reference tables of
// every imported module, the resolver walks the data tree and splices the
// contents of the referenced grouping over every uses node.
//
// Lookup follows YANG's lexical scope rule: an unprefixed grouping name is
// searched at the scope of the uses site first, then one level up, until
// the module root.  A prefixed name is resolved through the prefix table to
// an imported module and looked up at that module's top level only.
//
// An unresolvable uses is not an error: it means the input set was
// incomplete (a missing file or an unbound prefix), which is for downstream
// validators to report.  The uses node is left in the tree untouched.

import (
	"strings"

	log "github.com/golang/glog"
)

type resolver struct {
	refs           *ReferenceNodes
	imported       map[string]*ReferenceNodes
	prefixToModule map[string]string

	unresolved []string // grouping names left in the tree

	// expanding guards against grouping cycles: a grouping that uses
	// itself, directly or mutually, is left unexpanded at the inner site.
	expanding map[*Grouping]bool
}

// resolve expands every uses in the module body, including uses at the top
// level of the body itself, and inside the bodies of collected augments so
// downstream appliers see finished subtrees.
func (r *resolver) resolve(m *Module) {
	m.Body = r.spliceBody(m.Body, "/")
	for _, n := range m.Body {
		r.schemaNode(n, "/")
	}
	for _, a := range r.refs.Augments {
		r.augment(a, "/")
	}
	if len(r.unresolved) > 0 {
		log.V(1).Infof("module %s: %d unresolved uses: %s",
			m.Name, len(r.unresolved), strings.Join(r.unresolved, ", "))
	}
}

// spliceBody expands direct uses entries of a module body.  Body sequences
// hold SchemaNodes rather than DataDefs, so the top level gets its own copy
// of the splice loop.
func (r *resolver) spliceBody(body []SchemaNode, path string) []SchemaNode {
	type site struct {
		idx  int
		name string
	}
	var sites []site
	for i, n := range body {
		if u, ok := n.(*Uses); ok {
			sites = append(sites, site{i, u.Grouping})
		}
	}
	for i := len(sites) - 1; i >= 0; i-- {
		st := sites[i]
		g := r.findGrouping(st.name, path)
		if g == nil || r.expanding[g] {
			r.unresolved = append(r.unresolved, st.name)
			continue
		}
		// Resolve the clone before insertion so uses nested directly in the
		// grouping body are expanded too.
		if r.expanding == nil {
			r.expanding = map[*Grouping]bool{}
		}
		r.expanding[g] = true
		block := r.splice(cloneDataDefs(g.DataDefs), path)
		delete(r.expanding, g)
		spliced := make([]SchemaNode, 0, len(body)+len(block)-1)
		spliced = append(spliced, body[:st.idx]...)
		for _, d := range block {
			spliced = append(spliced, d)
		}
		spliced = append(spliced, body[st.idx+1:]...)
		body = spliced
	}
	return body
}

// schemaNode recurses into one top-level body node.
func (r *resolver) schemaNode(n SchemaNode, path string) {
	switch n := n.(type) {
	case *Rpc:
		r.rpc(n, path+n.Name+"/")
	case *Notification:
		r.notification(n, path+n.Name+"/")
	case DataDef:
		r.dataDef(n, path)
	}
}

// dataDef recurses into the kinds of nodes that carry data-def sequences.
// Leaves, leaf-lists, anydata and anyxml carry none.
func (r *resolver) dataDef(d DataDef, path string) {
	switch n := d.(type) {
	case *Container:
		r.container(n, path+n.Name+"/")
	case *List:
		r.list(n, path+n.Name+"/")
	case *Choice:
		r.choice(n, path)
	}
}

func (r *resolver) container(n *Container, path string) {
	n.DataDefs = r.splice(n.DataDefs, path)
	for _, a := range n.Actions {
		r.actionLike(a.Input, a.Output, path+a.Name+"/")
	}
	for _, nt := range n.Notifications {
		r.notification(nt, path+nt.Name+"/")
	}
}

func (r *resolver) list(n *List, path string) {
	n.DataDefs = r.splice(n.DataDefs, path)
	for _, a := range n.Actions {
		r.actionLike(a.Input, a.Output, path+a.Name+"/")
	}
	for _, nt := range n.Notifications {
		r.notification(nt, path+nt.Name+"/")
	}
}

// choice resolves the cases of n.  Choices and cases open no scope, so
// their contents are looked up from the enclosing path.
func (r *resolver) choice(n *Choice, path string) {
	for _, cs := range n.Cases {
		switch c := cs.(type) {
		case *LongCase:
			c.DataDefs = r.splice(c.DataDefs, path)
		case *ShortCase:
			r.dataDef(c.Def, path)
		}
	}
}

// augment resolves the body of a collected augment.  Augments are declared
// at the top level, so lookup starts at the root scope regardless of the
// target path, which is carried verbatim and never applied here.
func (r *resolver) augment(a *Augment, path string) {
	a.DataDefs = r.splice(a.DataDefs, path)
	for _, cs := range a.Cases {
		switch c := cs.(type) {
		case *LongCase:
			c.DataDefs = r.splice(c.DataDefs, path)
		case *ShortCase:
			r.dataDef(c.Def, path)
		}
	}
	for _, act := range a.Actions {
		r.actionLike(act.Input, act.Output, path+act.Name+"/")
	}
	for _, nt := range a.Notifications {
		r.notification(nt, path+nt.Name+"/")
	}
}

func (r *resolver) rpc(n *Rpc, path string) {
	r.actionLike(n.Input, n.Output, path)
}

// actionLike handles the shared input/output shape of rpcs and actions.
func (r *resolver) actionLike(in *Input, out *Output, path string) {
	if in != nil {
		in.DataDefs = r.splice(in.DataDefs, path+"input/")
	}
	if out != nil {
		out.DataDefs = r.splice(out.DataDefs, path+"output/")
	}
}

func (r *resolver) notification(n *Notification, path string) {
	n.DataDefs = r.splice(n.DataDefs, path)
}

// splice is the core of resolution.  It records every direct-child uses in
// defs with its index, then walks them in reverse (so earlier indices stay
// valid while the slice is rewritten), replacing each resolvable uses with
// a deep clone of its grouping's data-defs in the grouping's own order.
// Nested uses inside the inserted block are resolved immediately; all
// remaining children are then recursed into.
func (r *resolver) splice(defs []DataDef, path string) []DataDef {
	type site struct {
		idx  int
		name string
	}
	var sites []site
	for i, d := range defs {
		if u, ok := d.(*Uses); ok {
			sites = append(sites, site{i, u.Grouping})
		}
	}

	for i := len(sites) - 1; i >= 0; i-- {
		st := sites[i]
		g := r.findGrouping(st.name, path)
		if g == nil || r.expanding[g] {
			r.unresolved = append(r.unresolved, st.name)
			continue
		}
		// Resolve the clone before insertion: the grouping body may itself
		// start with another uses, whose expansion belongs at this site.
		if r.expanding == nil {
			r.expanding = map[*Grouping]bool{}
		}
		r.expanding[g] = true
		block := r.splice(cloneDataDefs(g.DataDefs), path)
		delete(r.expanding, g)
		rest := defs[st.idx+1:]
		defs = append(defs[:st.idx:st.idx], append(block, rest...)...)
	}

	// Recurse into every remaining child for uses nested in sub-scopes.
	for _, d := range defs {
		r.dataDef(d, path)
	}
	return defs
}

// findGrouping looks up a grouping by name as seen from path.  An
// unprefixed name climbs the lexical scope of the local module; a prefixed
// name is resolved through the prefix table and looked up at the top level
// of the imported module only.
func (r *resolver) findGrouping(name, path string) *Grouping {
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		module, ok := r.prefixToModule[prefix]
		if !ok {
			log.V(2).Infof("uses %s: prefix %s is not bound to a module", name, prefix)
			return nil
		}
		refs, ok := r.imported[module]
		if !ok {
			return nil
		}
		return refs.Groupings["/"+local]
	}

	for scope := path; ; scope = ascend(scope) {
		if g, ok := r.refs.Groupings[scope+name]; ok {
			log.V(2).Infof("uses %s: found at %s%s", name, scope, name)
			return g
		}
		if scope == "/" {
			return nil
		}
	}
}

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

// This file implements the walker, which converts the generic Statement
// trees produced by Parse into model values in a single top-down pass.
//
// The walker does three jobs at once:
//
//   - data-tree nodes are built and returned up to their parent's body or
//     data-def sequence, preserving source order;
//   - reference-target nodes (grouping, typedef, feature, identity,
//     extension, augment, deviation) are parsed fully but diverted into the
//     refs side table, keyed by the absolute scope path they were declared
//     in, so the resolver can look them up without searching the tree;
//   - import and include statements are queued for the loader.
//
// Scope is tracked in w.path.  Every node that opens a reserved child scope
// (container, list, grouping, rpc, action, notification, input, output)
// pushes its name while its children are walked; leaves, leaf-lists,
// choices and cases do not.
//
// The walker never reads files and never resolves references.  Statement
// trees it rejects are grammar violations: every complaint is accumulated
// and reported as a single ParseError.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openconfig/gnmi/errlist"
)

type walker struct {
	imports  []*Import
	includes []*Include
	refs     *ReferenceNodes
	path     *scopePath

	// belongsToPrefix is set while a submodule is being walked.  A uses
	// argument carrying this prefix refers to the owning module; the prefix
	// is stripped because the submodule's body is merged into that module,
	// making the reference local.
	belongsToPrefix string

	errs errlist.List
}

func newWalker() *walker {
	return &walker{
		refs: newReferenceNodes(),
		path: newScopePath(),
	}
}

// takeIncludes drains the pending include list.
func (w *walker) takeIncludes() []*Include {
	inc := w.includes
	w.includes = nil
	return inc
}

// takeImports drains the pending import list.
func (w *walker) takeImports() []*Import {
	imp := w.imports
	w.imports = nil
	return imp
}

// walk converts the statements of one file into a Module or Submodule.
// The file must contain exactly one top-level module or submodule
// statement; anything else is a grammar violation.
func (w *walker) walk(ss []*Statement) (YangFile, error) {
	var file YangFile
	switch {
	case len(ss) == 0:
		w.errs.Add(fmt.Errorf("no module or submodule found"))
	case len(ss) > 1:
		w.errorf(ss[1], "unexpected statement after %s", ss[0].Keyword)
	default:
		switch s := ss[0]; s.Keyword {
		case "module":
			file = w.module(s)
		case "submodule":
			file = w.submodule(s)
		default:
			w.errorf(s, "expected module or submodule, got %s", s.Keyword)
		}
	}

	if err := w.errs.Err(); err != nil {
		w.errs = errlist.List{}
		return nil, &ParseError{Msg: err.Error()}
	}
	return file, nil
}

func (w *walker) errorf(s *Statement, f string, v ...interface{}) {
	w.errs.Add(fmt.Errorf("%s: %s", s.Location(), fmt.Sprintf(f, v...)))
}

func (w *walker) module(s *Statement) *Module {
	m := &Module{Name: s.Argument}

	for _, c := range s.Statements {
		switch c.Keyword {
		case "yang-version":
			m.YangVersion = c.Argument
		case "namespace":
			m.Namespace = c.Argument
		case "prefix":
			m.Prefix = c.Argument
		case "organization":
			m.Meta.Organization = c.Argument
		case "contact":
			m.Meta.Contact = c.Argument
		case "description":
			m.Meta.Description = c.Argument
		case "reference":
			m.Meta.Reference = c.Argument
		case "revision":
			m.Revisions = append(m.Revisions, w.revision(c))
		case "import":
			w.importStmt(c)
		case "include":
			w.includeStmt(c)
		default:
			if n, ok := w.bodyNode(c); ok {
				if n != nil {
					m.Body = append(m.Body, n)
				}
			} else {
				w.errorf(c, "unexpected %s statement in module", c.Keyword)
			}
		}
	}
	return m
}

func (w *walker) submodule(s *Statement) *Submodule {
	sub := &Submodule{Name: s.Argument}

	for _, c := range s.Statements {
		switch c.Keyword {
		case "yang-version":
			sub.YangVersion = c.Argument
		case "belongs-to":
			sub.BelongsTo = w.belongsTo(c)
			w.belongsToPrefix = sub.BelongsTo.Prefix
		case "organization":
			sub.Meta.Organization = c.Argument
		case "contact":
			sub.Meta.Contact = c.Argument
		case "description":
			sub.Meta.Description = c.Argument
		case "reference":
			sub.Meta.Reference = c.Argument
		case "revision":
			sub.Revisions = append(sub.Revisions, w.revision(c))
		case "import":
			w.importStmt(c)
		case "include":
			w.includeStmt(c)
		default:
			if n, ok := w.bodyNode(c); ok {
				if n != nil {
					sub.Body = append(sub.Body, n)
				}
			} else {
				w.errorf(c, "unexpected %s statement in submodule", c.Keyword)
			}
		}
	}

	w.belongsToPrefix = ""
	return sub
}

// bodyNode handles one top-level body statement.  Data-tree nodes (and
// rpcs and notifications) are returned; reference targets are diverted
// into the side tables and return a nil node.  ok reports whether the
// keyword was a body statement at all.
func (w *walker) bodyNode(c *Statement) (n SchemaNode, ok bool) {
	switch c.Keyword {
	case "rpc":
		return w.rpc(c), true
	case "notification":
		return w.notification(c), true
	case "grouping":
		w.grouping(c)
		return nil, true
	case "typedef":
		w.typeDef(c)
		return nil, true
	case "feature":
		w.feature(c)
		return nil, true
	case "identity":
		w.identity(c)
		return nil, true
	case "extension":
		w.extension(c)
		return nil, true
	case "augment":
		w.augment(c)
		return nil, true
	case "deviation":
		w.deviation(c)
		return nil, true
	}
	if d := w.dataDef(c); d != nil {
		return d, true
	}
	return nil, false
}

// dataDef builds the data-tree node for c, or returns nil if c's keyword
// is not a data-def keyword.
func (w *walker) dataDef(c *Statement) DataDef {
	switch c.Keyword {
	case "container":
		return w.container(c)
	case "leaf":
		return w.leaf(c)
	case "leaf-list":
		return w.leafList(c)
	case "list":
		return w.list(c)
	case "choice":
		return w.choice(c)
	case "anydata":
		return w.anydata(c)
	case "anyxml":
		return w.anyxml(c)
	case "uses":
		return w.uses(c)
	}
	return nil
}

func (w *walker) belongsTo(s *Statement) BelongsTo {
	b := BelongsTo{Module: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "prefix":
			b.Prefix = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in belongs-to", c.Keyword)
		}
	}
	return b
}

func (w *walker) revision(s *Statement) *Revision {
	r := &Revision{Date: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "description":
			r.Description = c.Argument
		case "reference":
			r.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in revision", c.Keyword)
		}
	}
	return r
}

func (w *walker) importStmt(s *Statement) {
	imp := &Import{Module: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "prefix":
			imp.Prefix = c.Argument
		case "revision-date":
			imp.RevisionDate = c.Argument
		case "description":
			imp.Description = c.Argument
		case "reference":
			imp.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in import", c.Keyword)
		}
	}
	w.imports = append(w.imports, imp)
}

func (w *walker) includeStmt(s *Statement) {
	inc := &Include{Module: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "revision-date":
			inc.RevisionDate = c.Argument
		case "description":
			inc.Description = c.Argument
		case "reference":
			inc.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in include", c.Keyword)
		}
	}
	w.includes = append(w.includes, inc)
}

func (w *walker) container(s *Statement) *Container {
	n := &Container{Name: s.Argument}

	mark := w.path.push(n.Name)
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "presence":
			n.Presence = c.Argument
		case "config":
			n.Config = w.boolean(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		case "action":
			n.Actions = append(n.Actions, w.action(c))
		case "notification":
			n.Notifications = append(n.Notifications, w.notification(c))
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in container", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) leaf(s *Statement) *Leaf {
	n := &Leaf{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "type":
			n.Type = w.typeInfo(c)
		case "units":
			n.Units = c.Argument
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "default":
			n.Default = c.Argument
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in leaf", c.Keyword)
		}
	}
	return n
}

func (w *walker) leafList(s *Statement) *LeafList {
	n := &LeafList{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "type":
			n.Type = w.typeInfo(c)
		case "units":
			n.Units = c.Argument
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "default":
			n.Defaults = append(n.Defaults, c.Argument)
		case "config":
			n.Config = w.boolean(c)
		case "min-elements":
			n.MinElements = w.integer(c)
		case "max-elements":
			n.MaxElements = w.maxElements(c)
		case "ordered-by":
			n.OrderedBy = w.orderedBy(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in leaf-list", c.Keyword)
		}
	}
	return n
}

func (w *walker) list(s *Statement) *List {
	n := &List{Name: s.Argument}

	mark := w.path.push(n.Name)
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "key":
			n.Key = c.Argument
		case "unique":
			n.Uniques = append(n.Uniques, c.Argument)
		case "config":
			n.Config = w.boolean(c)
		case "min-elements":
			n.MinElements = w.integer(c)
		case "max-elements":
			n.MaxElements = w.maxElements(c)
		case "ordered-by":
			n.OrderedBy = w.orderedBy(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		case "action":
			n.Actions = append(n.Actions, w.action(c))
		case "notification":
			n.Notifications = append(n.Notifications, w.notification(c))
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in list", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) choice(s *Statement) *Choice {
	n := &Choice{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "default":
			n.Default = c.Argument
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "case":
			n.Cases = append(n.Cases, w.longCase(c))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml":
			n.Cases = append(n.Cases, &ShortCase{Def: w.dataDef(c)})
		default:
			w.errorf(c, "unexpected %s statement in choice", c.Keyword)
		}
	}
	return n
}

func (w *walker) longCase(s *Statement) *LongCase {
	n := &LongCase{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in case", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) anydata(s *Statement) *Anydata {
	n := &Anydata{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in anydata", c.Keyword)
		}
	}
	return n
}

func (w *walker) anyxml(s *Statement) *Anyxml {
	n := &Anyxml{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in anyxml", c.Keyword)
		}
	}
	return n
}

func (w *walker) uses(s *Statement) *Uses {
	n := &Uses{Grouping: s.Argument}

	// A uses inside a submodule may name a grouping of the owning module
	// with the belongs-to prefix.  The submodule body is merged into that
	// module, so the reference becomes local and the prefix is dropped.
	if w.belongsToPrefix != "" {
		if rest, found := strings.CutPrefix(n.Grouping, w.belongsToPrefix+":"); found {
			n.Grouping = rest
		}
	}

	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "refine":
			n.Refines = append(n.Refines, w.refine(c))
		case "augment":
			w.augment(c)
		default:
			w.errorf(c, "unexpected %s statement in uses", c.Keyword)
		}
	}
	return n
}

func (w *walker) refine(s *Statement) *Refine {
	n := &Refine{Target: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "presence":
			n.Presence = c.Argument
		case "default":
			n.Defaults = append(n.Defaults, c.Argument)
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "min-elements":
			n.MinElements = w.integer(c)
		case "max-elements":
			n.MaxElements = w.maxElements(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in refine", c.Keyword)
		}
	}
	return n
}

// grouping parses a grouping and files it under its absolute path.  The
// grouping's own name opens a scope, so groupings nested inside it are
// keyed below it.
func (w *walker) grouping(s *Statement) {
	n := &Grouping{Name: s.Argument}

	mark := w.path.push(n.Name)
	for _, c := range s.Statements {
		switch c.Keyword {
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		case "action":
			n.Actions = append(n.Actions, w.action(c))
		case "notification":
			n.Notifications = append(n.Notifications, w.notification(c))
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in grouping", c.Keyword)
			}
		}
	}
	w.path.pop(mark)

	w.refs.Groupings[w.path.key(n.Name)] = n
}

func (w *walker) typeDef(s *Statement) {
	n := &TypeDef{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "type":
			n.Type = w.typeInfo(c)
		case "units":
			n.Units = c.Argument
		case "default":
			n.Default = c.Argument
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in typedef", c.Keyword)
		}
	}
	w.refs.TypeDefs[w.path.key(n.Name)] = n
}

func (w *walker) feature(s *Statement) {
	n := &Feature{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in feature", c.Keyword)
		}
	}
	w.refs.Features[w.path.key(n.Name)] = n
}

func (w *walker) identity(s *Statement) {
	n := &Identity{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "base":
			n.Bases = append(n.Bases, c.Argument)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in identity", c.Keyword)
		}
	}
	w.refs.Identities[w.path.key(n.Name)] = n
}

func (w *walker) extension(s *Statement) {
	n := &Extension{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "argument":
			n.Argument = w.argument(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in extension", c.Keyword)
		}
	}
	w.refs.Extensions = append(w.refs.Extensions, n)
}

func (w *walker) argument(s *Statement) *Argument {
	n := &Argument{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "yin-element":
			n.YinElement = w.boolean(c)
		default:
			w.errorf(c, "unexpected %s statement in argument", c.Keyword)
		}
	}
	return n
}

func (w *walker) augment(s *Statement) {
	n := &Augment{Target: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "when":
			n.When = w.when(c)
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "case":
			n.Cases = append(n.Cases, w.longCase(c))
		case "action":
			n.Actions = append(n.Actions, w.action(c))
		case "notification":
			n.Notifications = append(n.Notifications, w.notification(c))
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in augment", c.Keyword)
			}
		}
	}
	w.refs.Augments = append(w.refs.Augments, n)
}

func (w *walker) deviation(s *Statement) {
	n := &Deviation{Target: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "deviate":
			w.deviate(c, n)
		default:
			w.errorf(c, "unexpected %s statement in deviation", c.Keyword)
		}
	}
	w.refs.Deviations = append(w.refs.Deviations, n)
}

// deviate dispatches on the deviate argument: not-supported, add, delete
// or replace.
func (w *walker) deviate(s *Statement, d *Deviation) {
	switch s.Argument {
	case "not-supported":
		d.NotSupported = true
	case "add":
		d.Adds = append(d.Adds, w.deviateAdd(s))
	case "delete":
		d.Deletes = append(d.Deletes, w.deviateDelete(s))
	case "replace":
		d.Replaces = append(d.Replaces, w.deviateReplace(s))
	default:
		w.errorf(s, "invalid deviate argument: %s", s.Argument)
	}
}

func (w *walker) deviateAdd(s *Statement) *DeviateAdd {
	n := &DeviateAdd{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "units":
			n.Units = c.Argument
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "unique":
			n.Uniques = append(n.Uniques, c.Argument)
		case "default":
			n.Defaults = append(n.Defaults, c.Argument)
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "min-elements":
			n.MinElements = w.integer(c)
		case "max-elements":
			n.MaxElements = w.maxElements(c)
		default:
			w.errorf(c, "unexpected %s statement in deviate add", c.Keyword)
		}
	}
	return n
}

func (w *walker) deviateDelete(s *Statement) *DeviateDelete {
	n := &DeviateDelete{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "units":
			n.Units = c.Argument
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "unique":
			n.Uniques = append(n.Uniques, c.Argument)
		case "default":
			n.Defaults = append(n.Defaults, c.Argument)
		default:
			w.errorf(c, "unexpected %s statement in deviate delete", c.Keyword)
		}
	}
	return n
}

func (w *walker) deviateReplace(s *Statement) *DeviateReplace {
	n := &DeviateReplace{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "type":
			t := w.typeInfo(c)
			n.Type = &t
		case "units":
			n.Units = c.Argument
		case "default":
			n.Defaults = append(n.Defaults, c.Argument)
		case "config":
			n.Config = w.boolean(c)
		case "mandatory":
			n.Mandatory = w.boolean(c)
		case "min-elements":
			n.MinElements = w.integer(c)
		case "max-elements":
			n.MaxElements = w.maxElements(c)
		default:
			w.errorf(c, "unexpected %s statement in deviate replace", c.Keyword)
		}
	}
	return n
}

func (w *walker) rpc(s *Statement) *Rpc {
	n := &Rpc{Name: s.Argument}

	mark := w.path.push(n.Name)
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		case "input":
			n.Input = w.input(c)
		case "output":
			n.Output = w.output(c)
		default:
			w.errorf(c, "unexpected %s statement in rpc", c.Keyword)
		}
	}
	return n
}

func (w *walker) action(s *Statement) *Action {
	n := &Action{Name: s.Argument}

	mark := w.path.push(n.Name)
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		case "input":
			n.Input = w.input(c)
		case "output":
			n.Output = w.output(c)
		default:
			w.errorf(c, "unexpected %s statement in action", c.Keyword)
		}
	}
	return n
}

func (w *walker) input(s *Statement) *Input {
	n := &Input{}

	mark := w.path.push("input")
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in input", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) output(s *Statement) *Output {
	n := &Output{}

	mark := w.path.push("output")
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in output", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) notification(s *Statement) *Notification {
	n := &Notification{Name: s.Argument}

	mark := w.path.push(n.Name)
	defer w.path.pop(mark)

	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "must":
			n.Musts = append(n.Musts, w.must(c))
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		case "typedef":
			w.typeDef(c)
		case "grouping":
			w.grouping(c)
		default:
			if d := w.dataDef(c); d != nil {
				n.DataDefs = append(n.DataDefs, d)
			} else {
				w.errorf(c, "unexpected %s statement in notification", c.Keyword)
			}
		}
	}
	return n
}

func (w *walker) when(s *Statement) *When {
	n := &When{Condition: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in when", c.Keyword)
		}
	}
	return n
}

func (w *walker) must(s *Statement) *Must {
	n := &Must{Condition: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "error-message":
			n.ErrorMessage = c.Argument
		case "error-app-tag":
			n.ErrorAppTag = c.Argument
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in must", c.Keyword)
		}
	}
	return n
}

// typeInfo parses a type statement.  The restriction body is selected by
// the shape of the sub-statements, mirroring the grammar's alternatives;
// the type name only disambiguates a bare length (binary vs string) and a
// bare require-instance (instance-identifier vs leafref).
func (w *walker) typeInfo(s *Statement) TypeInfo {
	t := TypeInfo{Name: s.Argument}
	if len(s.Statements) == 0 {
		return t
	}

	has := func(kw string) bool {
		for _, c := range s.Statements {
			if c.Keyword == kw {
				return true
			}
		}
		return false
	}

	switch {
	case has("fraction-digits"):
		t.Body = w.decimal64(s)
	case has("path"):
		t.Body = w.leafref(s)
	case has("range"):
		t.Body = w.numeric(s)
	case has("pattern"), has("length") && t.Name != "binary":
		t.Body = w.stringRestriction(s)
	case has("length"):
		t.Body = w.binary(s)
	case has("enum"):
		t.Body = w.enumeration(s)
	case has("base"):
		t.Body = w.identityref(s)
	case has("bit"):
		t.Body = w.bits(s)
	case has("type"):
		t.Body = w.union(s)
	case has("require-instance"):
		t.Body = w.instanceIdentifier(s)
	default:
		w.errorf(s, "unexpected restrictions on type %s", t.Name)
	}
	return t
}

func (w *walker) numeric(s *Statement) *NumericType {
	n := &NumericType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "range":
			n.Range = *w.rangeStmt(c)
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) decimal64(s *Statement) *Decimal64Type {
	n := &Decimal64Type{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "fraction-digits":
			n.FractionDigits = c.Argument
		case "range":
			n.Range = w.rangeStmt(c)
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) stringRestriction(s *Statement) *StringType {
	n := &StringType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "length":
			n.Length = w.lengthStmt(c)
		case "pattern":
			n.Patterns = append(n.Patterns, w.pattern(c))
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) binary(s *Statement) *BinaryType {
	n := &BinaryType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "length":
			n.Length = w.lengthStmt(c)
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) enumeration(s *Statement) *EnumType {
	n := &EnumType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "enum":
			n.Enums = append(n.Enums, w.enumValue(c))
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) enumValue(s *Statement) *EnumValue {
	n := &EnumValue{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "value":
			n.Value = w.integer(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in enum", c.Keyword)
		}
	}
	return n
}

func (w *walker) leafref(s *Statement) *LeafrefType {
	n := &LeafrefType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "path":
			n.Path = c.Argument
		case "require-instance":
			n.RequireInstance = w.boolean(c)
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) identityref(s *Statement) *IdentityrefType {
	n := &IdentityrefType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "base":
			n.Bases = append(n.Bases, c.Argument)
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) instanceIdentifier(s *Statement) *InstanceIdentifierType {
	n := &InstanceIdentifierType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "require-instance":
			if b := w.boolean(c); b != nil {
				n.RequireInstance = *b
			}
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) bits(s *Statement) *BitsType {
	n := &BitsType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "bit":
			n.Bits = append(n.Bits, w.bit(c))
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) bit(s *Statement) *Bit {
	n := &Bit{Name: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "if-feature":
			n.IfFeatures = append(n.IfFeatures, c.Argument)
		case "position":
			n.Position = w.integer(c)
		case "status":
			n.Status = w.status(c)
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in bit", c.Keyword)
		}
	}
	return n
}

func (w *walker) union(s *Statement) *UnionType {
	n := &UnionType{}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "type":
			n.Types = append(n.Types, w.typeInfo(c))
		default:
			w.errorf(c, "unexpected %s statement in type %s", c.Keyword, s.Argument)
		}
	}
	return n
}

func (w *walker) rangeStmt(s *Statement) *Range {
	n := &Range{Value: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "error-message":
			n.ErrorMessage = c.Argument
		case "error-app-tag":
			n.ErrorAppTag = c.Argument
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in range", c.Keyword)
		}
	}
	return n
}

func (w *walker) lengthStmt(s *Statement) *Length {
	n := &Length{Value: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "error-message":
			n.ErrorMessage = c.Argument
		case "error-app-tag":
			n.ErrorAppTag = c.Argument
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in length", c.Keyword)
		}
	}
	return n
}

func (w *walker) pattern(s *Statement) *Pattern {
	n := &Pattern{Value: s.Argument}
	for _, c := range s.Statements {
		switch c.Keyword {
		case "modifier":
			n.Modifier = c.Argument
		case "error-message":
			n.ErrorMessage = c.Argument
		case "error-app-tag":
			n.ErrorAppTag = c.Argument
		case "description":
			n.Description = c.Argument
		case "reference":
			n.Reference = c.Argument
		default:
			w.errorf(c, "unexpected %s statement in pattern", c.Keyword)
		}
	}
	return n
}

// boolean parses a true/false argument.  Any other lexeme is a grammar
// violation.
func (w *walker) boolean(s *Statement) *bool {
	b := new(bool)
	switch s.Argument {
	case "true":
		*b = true
	case "false":
	default:
		w.errorf(s, "invalid boolean: %s", s.Argument)
		return nil
	}
	return b
}

// integer parses a 64-bit signed integer argument.
func (w *walker) integer(s *Statement) *int64 {
	v, err := strconv.ParseInt(s.Argument, 10, 64)
	if err != nil {
		w.errorf(s, "invalid integer: %s", s.Argument)
		return nil
	}
	return &v
}

func (w *walker) status(s *Statement) Status {
	switch s.Argument {
	case "current":
		return StatusCurrent
	case "deprecated":
		return StatusDeprecated
	case "obsolete":
		return StatusObsolete
	}
	w.errorf(s, "invalid status: %s", s.Argument)
	return StatusUnset
}

func (w *walker) orderedBy(s *Statement) OrderedBy {
	switch s.Argument {
	case "user":
		return OrderedByUser
	case "system":
		return OrderedBySystem
	}
	w.errorf(s, "invalid ordered-by: %s", s.Argument)
	return OrderedByUnset
}

func (w *walker) maxElements(s *Statement) *MaxElements {
	if s.Argument == "unbounded" {
		return &MaxElements{Unbounded: true}
	}
	v, err := strconv.ParseInt(s.Argument, 10, 64)
	if err != nil || v < 0 {
		w.errorf(s, "invalid max-elements: %s", s.Argument)
		return nil
	}
	return &MaxElements{Value: v}
}

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

// Cloning support for grouping expansion.  A grouping may be expanded at
// several uses sites and the resolver mutates data-def sequences in place
// while resolving nested uses, so every expansion must get its own copy of
// the sequences the resolver can touch.  Attribute-only fields (musts,
// patterns, type bodies, ...) are never mutated after walking and are
// shared between copies.

func cloneDataDefs(defs []DataDef) []DataDef {
	if defs == nil {
		return nil
	}
	out := make([]DataDef, len(defs))
	for i, d := range defs {
		out[i] = cloneDataDef(d)
	}
	return out
}

func cloneDataDef(d DataDef) DataDef {
	switch n := d.(type) {
	case *Container:
		c := *n
		c.DataDefs = cloneDataDefs(n.DataDefs)
		c.Actions = cloneActions(n.Actions)
		c.Notifications = cloneNotifications(n.Notifications)
		return &c
	case *List:
		c := *n
		c.DataDefs = cloneDataDefs(n.DataDefs)
		c.Actions = cloneActions(n.Actions)
		c.Notifications = cloneNotifications(n.Notifications)
		return &c
	case *Choice:
		c := *n
		c.Cases = cloneCases(n.Cases)
		return &c
	case *Leaf:
		c := *n
		return &c
	case *LeafList:
		c := *n
		return &c
	case *Anydata:
		c := *n
		return &c
	case *Anyxml:
		c := *n
		return &c
	case *Uses:
		c := *n
		return &c
	}
	return d
}

func cloneCases(cases []Case) []Case {
	if cases == nil {
		return nil
	}
	out := make([]Case, len(cases))
	for i, cs := range cases {
		switch n := cs.(type) {
		case *LongCase:
			c := *n
			c.DataDefs = cloneDataDefs(n.DataDefs)
			out[i] = &c
		case *ShortCase:
			out[i] = &ShortCase{Def: cloneDataDef(n.Def)}
		default:
			out[i] = cs
		}
	}
	return out
}

func cloneActions(actions []*Action) []*Action {
	if actions == nil {
		return nil
	}
	out := make([]*Action, len(actions))
	for i, a := range actions {
		c := *a
		if a.Input != nil {
			in := *a.Input
			in.DataDefs = cloneDataDefs(a.Input.DataDefs)
			c.Input = &in
		}
		if a.Output != nil {
			o := *a.Output
			o.DataDefs = cloneDataDefs(a.Output.DataDefs)
			c.Output = &o
		}
		out[i] = &c
	}
	return out
}

func cloneNotifications(ns []*Notification) []*Notification {
	if ns == nil {
		return nil
	}
	out := make([]*Notification, len(ns))
	for i, n := range ns {
		c := *n
		c.DataDefs = cloneDataDefs(n.DataDefs)
		out[i] = &c
	}
	return out
}

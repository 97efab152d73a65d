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

// This file contains the definitions for all nodes of the parsed YANG
// model.  The model splits a module body into two kinds of nodes: data-tree
// nodes, which stay in body/data-def sequences in source order, and
// reference-target nodes (groupings, typedefs, features, identities,
// extensions, augments, deviations), which the walker lifts into a
// ReferenceNodes table keyed by their absolute scope path.
//
// The structures are derived from RFC 7950 section 7.  The building of the
// model is in walker.go.

import "fmt"

// A YangFile is the result of parsing one .yang file: a *Module or a
// *Submodule.
type YangFile interface {
	Kind() string  // "module" or "submodule"
	NName() string // the module or submodule name
	yangFile()
}

// A Module is defined in RFC 7950 section 7.1.
type Module struct {
	Name        string
	YangVersion string
	Namespace   string
	Prefix      string
	Meta        MetaInfo
	Revisions   []*Revision
	Body        []SchemaNode
}

func (*Module) Kind() string    { return "module" }
func (m *Module) NName() string { return m.Name }
func (*Module) yangFile()       {}

// Current returns the most recent revision date of m, or "" if m carries no
// revision history.
func (m *Module) Current() string {
	var rev string
	for _, r := range m.Revisions {
		if r.Date > rev {
			rev = r.Date
		}
	}
	return rev
}

// A Submodule is defined in RFC 7950 section 7.2.  It has no namespace or
// prefix of its own; the belongs-to statement names its owning module and
// the prefix the submodule's own text uses to refer to it.
type Submodule struct {
	Name        string
	YangVersion string
	BelongsTo   BelongsTo
	Meta        MetaInfo
	Revisions   []*Revision
	Body        []SchemaNode
}

func (*Submodule) Kind() string    { return "submodule" }
func (s *Submodule) NName() string { return s.Name }
func (*Submodule) yangFile()       {}

// A BelongsTo is defined in RFC 7950 section 7.2.2.
type BelongsTo struct {
	Module string
	Prefix string
}

// MetaInfo carries the descriptive statements common to modules and
// submodules.
type MetaInfo struct {
	Organization string
	Contact      string
	Description  string
	Reference    string
}

// A Revision is defined in RFC 7950 section 7.1.9.
type Revision struct {
	Date        string
	Description string
	Reference   string
}

// An Import is defined in RFC 7950 section 7.1.5.  Imports are collected by
// the walker and satisfied by the loader; they do not appear in the body.
type Import struct {
	Module       string
	Prefix       string
	RevisionDate string
	Description  string
	Reference    string
}

// An Include is defined in RFC 7950 section 7.1.6.  Like imports, includes
// are collected by the walker and drained by the loader.
type Include struct {
	Module       string
	RevisionDate string
	Description  string
	Reference    string
}

// ReferenceNodes holds every node of a module that is referred to rather
// than sitting in the data tree.  Keyed categories are indexed by absolute
// scope path ("/a/b/name"); augments, deviations and extensions have no
// meaningful key and stay in source order.
type ReferenceNodes struct {
	Augments   []*Augment
	Deviations []*Deviation
	Extensions []*Extension
	Features   map[string]*Feature
	Groupings  map[string]*Grouping
	Identities map[string]*Identity
	TypeDefs   map[string]*TypeDef
}

func newReferenceNodes() *ReferenceNodes {
	return &ReferenceNodes{
		Features:   map[string]*Feature{},
		Groupings:  map[string]*Grouping{},
		Identities: map[string]*Identity{},
		TypeDefs:   map[string]*TypeDef{},
	}
}

// A SchemaNode is any node that may appear in a module or submodule body:
// a DataDef, an *Rpc, or a *Notification.
type SchemaNode interface {
	Kind() string
	NName() string
}

// A DataDef is a node of the instance data tree: one of *Container, *Leaf,
// *LeafList, *List, *Choice, *Anydata, *Anyxml or *Uses.  After resolution
// the only Uses nodes left are those whose grouping could not be found (see
// resolve.go).
type DataDef interface {
	SchemaNode
	dataDef()
}

// Status is the argument of a status statement (RFC 7950 section 7.21.2).
// The zero value means no status statement was present.
type Status int

const (
	StatusUnset Status = iota
	StatusCurrent
	StatusDeprecated
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusUnset:
		return ""
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// OrderedBy is the argument of an ordered-by statement (RFC 7950 section
// 7.7.7).  The zero value means no ordered-by statement was present.
type OrderedBy int

const (
	OrderedByUnset OrderedBy = iota
	OrderedByUser
	OrderedBySystem
)

func (o OrderedBy) String() string {
	switch o {
	case OrderedByUnset:
		return ""
	case OrderedByUser:
		return "user"
	case OrderedBySystem:
		return "system"
	}
	return fmt.Sprintf("OrderedBy(%d)", int(o))
}

// MaxElements is the argument of a max-elements statement: either the
// keyword unbounded or a non-negative count.
type MaxElements struct {
	Unbounded bool
	Value     int64
}

func (m *MaxElements) String() string {
	if m.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", m.Value)
}

// A When is defined in RFC 7950 section 7.21.5.  The xpath condition is
// carried verbatim; this package does not evaluate it.
type When struct {
	Condition   string
	Description string
	Reference   string
}

// A Must is defined in RFC 7950 section 7.5.3.  As with when, the
// condition is carried verbatim.
type Must struct {
	Condition    string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// A Container is defined in RFC 7950 section 7.5.
type Container struct {
	Name          string
	When          *When
	IfFeatures    []string
	Musts         []*Must
	Presence      string
	Config        *bool
	Status        Status
	Description   string
	Reference     string
	DataDefs      []DataDef
	Actions       []*Action
	Notifications []*Notification
}

func (*Container) Kind() string    { return "container" }
func (c *Container) NName() string { return c.Name }
func (*Container) dataDef()        {}

// A Leaf is defined in RFC 7950 section 7.6.
type Leaf struct {
	Name        string
	When        *When
	IfFeatures  []string
	Type        TypeInfo
	Units       string
	Musts       []*Must
	Default     string
	Config      *bool
	Mandatory   *bool
	Status      Status
	Description string
	Reference   string
}

func (*Leaf) Kind() string    { return "leaf" }
func (l *Leaf) NName() string { return l.Name }
func (*Leaf) dataDef()        {}

// A LeafList is defined in RFC 7950 section 7.7.
type LeafList struct {
	Name        string
	When        *When
	IfFeatures  []string
	Type        TypeInfo
	Units       string
	Musts       []*Must
	Defaults    []string
	Config      *bool
	MinElements *int64
	MaxElements *MaxElements
	OrderedBy   OrderedBy
	Status      Status
	Description string
	Reference   string
}

func (*LeafList) Kind() string    { return "leaf-list" }
func (l *LeafList) NName() string { return l.Name }
func (*LeafList) dataDef()        {}

// A List is defined in RFC 7950 section 7.8.
type List struct {
	Name          string
	When          *When
	IfFeatures    []string
	Musts         []*Must
	Key           string
	Uniques       []string
	Config        *bool
	MinElements   *int64
	MaxElements   *MaxElements
	OrderedBy     OrderedBy
	Status        Status
	Description   string
	Reference     string
	DataDefs      []DataDef
	Actions       []*Action
	Notifications []*Notification
}

func (*List) Kind() string    { return "list" }
func (l *List) NName() string { return l.Name }
func (*List) dataDef()        {}

// A Choice is defined in RFC 7950 section 7.9.
type Choice struct {
	Name        string
	When        *When
	IfFeatures  []string
	Default     string
	Config      *bool
	Mandatory   *bool
	Status      Status
	Description string
	Reference   string
	Cases       []Case
}

func (*Choice) Kind() string    { return "choice" }
func (c *Choice) NName() string { return c.Name }
func (*Choice) dataDef()        {}

// A Case is one alternative of a choice: a *LongCase written with an
// explicit case statement, or a *ShortCase where the data definition stands
// directly inside the choice (RFC 7950 section 7.9.2).
type Case interface {
	caseNode()
}

// A LongCase is an explicit case statement.
type LongCase struct {
	Name        string
	When        *When
	IfFeatures  []string
	Status      Status
	Description string
	Reference   string
	DataDefs    []DataDef
}

func (*LongCase) caseNode() {}

// A ShortCase wraps the single data definition of a shorthand case.  Def is
// never a *Uses; the grammar does not admit one there.
type ShortCase struct {
	Def DataDef
}

func (*ShortCase) caseNode() {}

// An Anydata is defined in RFC 7950 section 7.10.
type Anydata struct {
	Name        string
	When        *When
	IfFeatures  []string
	Musts       []*Must
	Config      *bool
	Mandatory   *bool
	Status      Status
	Description string
	Reference   string
}

func (*Anydata) Kind() string    { return "anydata" }
func (a *Anydata) NName() string { return a.Name }
func (*Anydata) dataDef()        {}

// An Anyxml is defined in RFC 7950 section 7.11.
type Anyxml struct {
	Name        string
	When        *When
	IfFeatures  []string
	Musts       []*Must
	Config      *bool
	Mandatory   *bool
	Status      Status
	Description string
	Reference   string
}

func (*Anyxml) Kind() string    { return "anyxml" }
func (a *Anyxml) NName() string { return a.Name }
func (*Anyxml) dataDef()        {}

// A Uses is defined in RFC 7950 section 7.13.  Grouping names a grouping,
// optionally prefix-qualified.  Resolution replaces a Uses node with the
// grouping's data definitions; a Uses whose grouping cannot be found stays
// in the tree.
type Uses struct {
	Grouping    string
	When        *When
	IfFeatures  []string
	Status      Status
	Description string
	Reference   string
	Refines     []*Refine
}

func (*Uses) Kind() string    { return "uses" }
func (u *Uses) NName() string { return u.Grouping }
func (*Uses) dataDef()        {}

// A Refine is defined in RFC 7950 section 7.13.2.  Refinements are carried
// for downstream tooling; resolution does not apply them.
type Refine struct {
	Target      string
	IfFeatures  []string
	Musts       []*Must
	Presence    string
	Defaults    []string
	Config      *bool
	Mandatory   *bool
	MinElements *int64
	MaxElements *MaxElements
	Description string
	Reference   string
}

// A Grouping is defined in RFC 7950 section 7.12.  Groupings live in
// ReferenceNodes, keyed by the scope path they were declared in.
type Grouping struct {
	Name          string
	Status        Status
	Description   string
	Reference     string
	DataDefs      []DataDef
	Actions       []*Action
	Notifications []*Notification
}

func (*Grouping) Kind() string    { return "grouping" }
func (g *Grouping) NName() string { return g.Name }

// A TypeDef is defined in RFC 7950 section 7.3.
type TypeDef struct {
	Name        string
	Type        TypeInfo
	Units       string
	Default     string
	Status      Status
	Description string
	Reference   string
}

func (*TypeDef) Kind() string    { return "typedef" }
func (t *TypeDef) NName() string { return t.Name }

// TypeInfo is the argument and body of a type statement (RFC 7950 section
// 7.4).  Body is nil when the type carries no restrictions.
type TypeInfo struct {
	Name string
	Body TypeBody
}

// A TypeBody is the restriction body of a type statement.  It is one of
// *NumericType, *Decimal64Type, *StringType, *EnumType, *LeafrefType,
// *IdentityrefType, *InstanceIdentifierType, *BitsType, *UnionType or
// *BinaryType.
type TypeBody interface {
	typeBody()
}

// A NumericType restricts one of the integer built-in types (RFC 7950
// section 9.2.4).
type NumericType struct {
	Range Range
}

func (*NumericType) typeBody() {}

// A Decimal64Type carries the fraction-digits of a decimal64 type and an
// optional range (RFC 7950 section 9.3).
type Decimal64Type struct {
	FractionDigits string
	Range          *Range
}

func (*Decimal64Type) typeBody() {}

// A StringType restricts the string built-in type (RFC 7950 section 9.4).
type StringType struct {
	Length   *Length
	Patterns []*Pattern
}

func (*StringType) typeBody() {}

// An EnumType is the body of an enumeration type (RFC 7950 section 9.6).
type EnumType struct {
	Enums []*EnumValue
}

func (*EnumType) typeBody() {}

// A LeafrefType carries the path of a leafref (RFC 7950 section 9.9).  The
// path is not evaluated.
type LeafrefType struct {
	Path            string
	RequireInstance *bool
}

func (*LeafrefType) typeBody() {}

// An IdentityrefType names the base identities of an identityref (RFC 7950
// section 9.10).
type IdentityrefType struct {
	Bases []string
}

func (*IdentityrefType) typeBody() {}

// An InstanceIdentifierType is the body of an instance-identifier type
// (RFC 7950 section 9.13).
type InstanceIdentifierType struct {
	RequireInstance bool
}

func (*InstanceIdentifierType) typeBody() {}

// A BitsType is the body of a bits type (RFC 7950 section 9.7).
type BitsType struct {
	Bits []*Bit
}

func (*BitsType) typeBody() {}

// A UnionType is the body of a union type (RFC 7950 section 9.12).
type UnionType struct {
	Types []TypeInfo
}

func (*UnionType) typeBody() {}

// A BinaryType is the body of a binary type (RFC 7950 section 9.8).
type BinaryType struct {
	Length *Length
}

func (*BinaryType) typeBody() {}

// A Range is defined in RFC 7950 section 9.2.4.  The range expression is
// carried verbatim.
type Range struct {
	Value        string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// A Length is defined in RFC 7950 section 9.4.4.
type Length struct {
	Value        string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// A Pattern is defined in RFC 7950 section 9.4.5.  Modifier is the
// argument of an invert-match modifier statement, if present.
type Pattern struct {
	Value        string
	Modifier     string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// An EnumValue is one enum of an enumeration (RFC 7950 section 9.6.4).
type EnumValue struct {
	Name        string
	IfFeatures  []string
	Value       *int64
	Status      Status
	Description string
	Reference   string
}

// A Bit is one bit of a bits type (RFC 7950 section 9.7.4).
type Bit struct {
	Name        string
	IfFeatures  []string
	Position    *int64
	Status      Status
	Description string
	Reference   string
}

// An Extension is defined in RFC 7950 section 7.19.
type Extension struct {
	Name        string
	Argument    *Argument
	Status      Status
	Description string
	Reference   string
}

func (*Extension) Kind() string    { return "extension" }
func (e *Extension) NName() string { return e.Name }

// An Argument is defined in RFC 7950 section 7.19.2.
type Argument struct {
	Name       string
	YinElement *bool
}

// A Feature is defined in RFC 7950 section 7.20.1.
type Feature struct {
	Name        string
	IfFeatures  []string
	Status      Status
	Description string
	Reference   string
}

func (*Feature) Kind() string    { return "feature" }
func (f *Feature) NName() string { return f.Name }

// An Identity is defined in RFC 7950 section 7.18.
type Identity struct {
	Name        string
	IfFeatures  []string
	Bases       []string
	Status      Status
	Description string
	Reference   string
}

func (*Identity) Kind() string    { return "identity" }
func (i *Identity) NName() string { return i.Name }

// An Augment is defined in RFC 7950 section 7.17.  Augments are collected
// with their target path verbatim; applying them is downstream work.
type Augment struct {
	Target        string
	When          *When
	IfFeatures    []string
	Status        Status
	Description   string
	Reference     string
	DataDefs      []DataDef
	Cases         []Case
	Actions       []*Action
	Notifications []*Notification
}

func (*Augment) Kind() string    { return "augment" }
func (a *Augment) NName() string { return a.Target }

// A Deviation is defined in RFC 7950 section 7.20.3.  Like augments,
// deviations are collected but never applied.
type Deviation struct {
	Target       string
	Description  string
	Reference    string
	NotSupported bool
	Adds         []*DeviateAdd
	Deletes      []*DeviateDelete
	Replaces     []*DeviateReplace
}

func (*Deviation) Kind() string    { return "deviation" }
func (d *Deviation) NName() string { return d.Target }

// A DeviateAdd is a deviate add statement (RFC 7950 section 7.20.3.2).
type DeviateAdd struct {
	Units       string
	Musts       []*Must
	Uniques     []string
	Defaults    []string
	Config      *bool
	Mandatory   *bool
	MinElements *int64
	MaxElements *MaxElements
}

// A DeviateDelete is a deviate delete statement.
type DeviateDelete struct {
	Units    string
	Musts    []*Must
	Uniques  []string
	Defaults []string
}

// A DeviateReplace is a deviate replace statement.
type DeviateReplace struct {
	Type        *TypeInfo
	Units       string
	Defaults    []string
	Config      *bool
	Mandatory   *bool
	MinElements *int64
	MaxElements *MaxElements
}

// An Rpc is defined in RFC 7950 section 7.14.
type Rpc struct {
	Name        string
	IfFeatures  []string
	Musts       []*Must
	Status      Status
	Description string
	Reference   string
	Input       *Input
	Output      *Output
}

func (*Rpc) Kind() string    { return "rpc" }
func (r *Rpc) NName() string { return r.Name }

// An Action is defined in RFC 7950 section 7.15.  Actions differ from rpcs
// only in where they may appear: rpcs under a module, actions under
// containers, lists, groupings and augments.
type Action struct {
	Name        string
	IfFeatures  []string
	Musts       []*Must
	Status      Status
	Description string
	Reference   string
	Input       *Input
	Output      *Output
}

func (*Action) Kind() string    { return "action" }
func (a *Action) NName() string { return a.Name }

// An Input is defined in RFC 7950 section 7.14.2.
type Input struct {
	Musts    []*Must
	DataDefs []DataDef
}

// An Output is defined in RFC 7950 section 7.14.3.
type Output struct {
	Musts    []*Must
	DataDefs []DataDef
}

// A Notification is defined in RFC 7950 section 7.16.
type Notification struct {
	Name        string
	IfFeatures  []string
	Musts       []*Must
	Status      Status
	Description string
	Reference   string
	DataDefs    []DataDef
}

func (*Notification) Kind() string    { return "notification" }
func (n *Notification) NName() string { return n.Name }

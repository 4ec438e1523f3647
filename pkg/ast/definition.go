package ast

import "github.com/dnaka91/mabo/pkg/source"

// Definition is the tagged variant of a top-level (or nested, for Module)
// declaration: Module, Struct, Enum, Alias, Const, Import (spec §3).
type Definition interface {
	Node
	Doc() []string
	Name() string
	definitionNode()
}

// ModuleDef groups nested definitions under a name.
type ModuleDef struct {
	span     source.Span
	doc      []string
	name     string
	NameSpan source.Span
	Defs     []Definition
}

func NewModuleDef(span source.Span, doc []string, name string, nameSpan source.Span, defs []Definition) *ModuleDef {
	return &ModuleDef{span: span, doc: doc, name: name, NameSpan: nameSpan, Defs: defs}
}

func (d *ModuleDef) Span() source.Span { return d.span }
func (d *ModuleDef) Doc() []string     { return d.doc }
func (d *ModuleDef) Name() string      { return d.name }
func (*ModuleDef) definitionNode()     {}

// StructDef declares a product type.
type StructDef struct {
	span       source.Span
	doc        []string
	Attributes []Attribute
	name       string
	NameSpan   source.Span
	Generics   []Generic
	Fields     Fields
}

func NewStructDef(span source.Span, doc []string, attrs []Attribute, name string, nameSpan source.Span, generics []Generic, fields Fields) *StructDef {
	return &StructDef{span: span, doc: doc, Attributes: attrs, name: name, NameSpan: nameSpan, Generics: generics, Fields: fields}
}

func (d *StructDef) Span() source.Span { return d.span }
func (d *StructDef) Doc() []string     { return d.doc }
func (d *StructDef) Name() string      { return d.name }
func (*StructDef) definitionNode()     {}

// EnumDef declares a sum type.
type EnumDef struct {
	span       source.Span
	doc        []string
	Attributes []Attribute
	name       string
	NameSpan   source.Span
	Generics   []Generic
	Variants   []Variant
}

func NewEnumDef(span source.Span, doc []string, attrs []Attribute, name string, nameSpan source.Span, generics []Generic, variants []Variant) *EnumDef {
	return &EnumDef{span: span, doc: doc, Attributes: attrs, name: name, NameSpan: nameSpan, Generics: generics, Variants: variants}
}

func (d *EnumDef) Span() source.Span { return d.span }
func (d *EnumDef) Doc() []string     { return d.doc }
func (d *EnumDef) Name() string      { return d.name }
func (*EnumDef) definitionNode()     {}

// AliasDef declares a type synonym, possibly generic.
type AliasDef struct {
	span     source.Span
	doc      []string
	name     string
	NameSpan source.Span
	Generics []Generic
	Target   Type
}

func NewAliasDef(span source.Span, doc []string, name string, nameSpan source.Span, generics []Generic, target Type) *AliasDef {
	return &AliasDef{span: span, doc: doc, name: name, NameSpan: nameSpan, Generics: generics, Target: target}
}

func (d *AliasDef) Span() source.Span { return d.span }
func (d *AliasDef) Doc() []string     { return d.doc }
func (d *AliasDef) Name() string      { return d.name }
func (*AliasDef) definitionNode()     {}

// ConstDef declares a named literal value of a given type.
type ConstDef struct {
	span     source.Span
	doc      []string
	name     string
	NameSpan source.Span
	Type     Type
	Value    Literal
}

func NewConstDef(span source.Span, doc []string, name string, nameSpan source.Span, typ Type, value Literal) *ConstDef {
	return &ConstDef{span: span, doc: doc, name: name, NameSpan: nameSpan, Type: typ, Value: value}
}

func (d *ConstDef) Span() source.Span { return d.span }
func (d *ConstDef) Doc() []string     { return d.doc }
func (d *ConstDef) Name() string      { return d.name }
func (*ConstDef) definitionNode()     {}

// ImportDef brings a path, optionally a single named type from it, into
// scope: `use a::b::c;` or `use a::b::Name;`.
type ImportDef struct {
	span         source.Span
	doc          []string
	Segments     []string
	SegmentSpans []source.Span
	TypeName     string // empty if this import names no single type
	TypeNameSpan source.Span
}

func NewImportDef(span source.Span, doc []string, segments []string, segmentSpans []source.Span, typeName string, typeNameSpan source.Span) *ImportDef {
	return &ImportDef{span: span, doc: doc, Segments: segments, SegmentSpans: segmentSpans, TypeName: typeName, TypeNameSpan: typeNameSpan}
}

func (d *ImportDef) Span() source.Span { return d.span }
func (d *ImportDef) Doc() []string     { return d.doc }

// Name returns the imported type name, or the last path segment when this
// import brings in a path rather than a single type.
func (d *ImportDef) Name() string {
	if d.TypeName != "" {
		return d.TypeName
	}

	if len(d.Segments) == 0 {
		return ""
	}

	return d.Segments[len(d.Segments)-1]
}

func (*ImportDef) definitionNode() {}

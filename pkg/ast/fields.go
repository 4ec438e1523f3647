package ast

import "github.com/dnaka91/mabo/pkg/source"

// Fields is the tagged variant of a struct's or variant's field list: named,
// unnamed (positional), or unit (spec §3).
type Fields interface {
	Node
	fieldsNode()
}

// NamedField is one field of a NamedFields list.
type NamedField struct {
	Span     source.Span
	Doc      []string
	Name     string
	NameSpan source.Span
	Type     Type
	ID       *ID
}

// NamedFields is `{ name: Type, ... }`.
type NamedFields struct {
	span   source.Span
	Fields []NamedField
}

func NewNamedFields(span source.Span, fields []NamedField) *NamedFields {
	return &NamedFields{span: span, Fields: fields}
}

func (f *NamedFields) Span() source.Span { return f.span }
func (*NamedFields) fieldsNode()         {}

// UnnamedField is one field of an UnnamedFields list.
type UnnamedField struct {
	Span source.Span
	Doc  []string
	Type Type
	ID   *ID
}

// UnnamedFields is `(Type, ...)`.
type UnnamedFields struct {
	span   source.Span
	Fields []UnnamedField
}

func NewUnnamedFields(span source.Span, fields []UnnamedField) *UnnamedFields {
	return &UnnamedFields{span: span, Fields: fields}
}

func (f *UnnamedFields) Span() source.Span { return f.span }
func (*UnnamedFields) fieldsNode()         {}

// UnitFields is the empty field list.
type UnitFields struct {
	span source.Span
}

func NewUnitFields(span source.Span) *UnitFields { return &UnitFields{span: span} }

func (f *UnitFields) Span() source.Span { return f.span }
func (*UnitFields) fieldsNode()         {}

// Variant is one arm of an enum: a name, its Fields, an optional explicit
// id, doc comment (spec §3).
type Variant struct {
	Span     source.Span
	Doc      []string
	Name     string
	NameSpan source.Span
	Fields   Fields
	ID       *ID
}

package ast

import "github.com/dnaka91/mabo/pkg/source"

// AttributeValue is the tagged variant of an attribute's payload: unit
// (#[name]), a single literal (#[name = literal]), or a nested list of
// attributes (#[name(attr, attr, ...)]), per spec §3/§4.D.
type AttributeValue interface {
	attributeValue()
}

// UnitValue marks a bare #[name] attribute.
type UnitValue struct{}

func (UnitValue) attributeValue() {}

// LiteralValue marks #[name = literal].
type LiteralValue struct {
	Value Literal
}

func (LiteralValue) attributeValue() {}

// ListValue marks #[name(attr, ...)], arbitrarily nested.
type ListValue struct {
	Values []Attribute
}

func (ListValue) attributeValue() {}

// Attribute is one #[...] entry attached to the definition immediately
// following it.
type Attribute struct {
	span     source.Span
	Name     string
	NameSpan source.Span
	Value    AttributeValue
}

func NewAttribute(span, nameSpan source.Span, name string, value AttributeValue) Attribute {
	return Attribute{span: span, Name: name, NameSpan: nameSpan, Value: value}
}

func (a Attribute) Span() source.Span { return a.span }

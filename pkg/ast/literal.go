package ast

import (
	"math/big"

	"github.com/dnaka91/mabo/pkg/source"
)

// Literal is the tagged variant of constant values: integer, floating,
// boolean, string, byte-array (spec §3).
type Literal interface {
	Node
	literal()
}

// IntLiteral holds an arbitrary-precision integer. Its value is not checked
// against a target wire width, neither at parse time nor in pkg/validate.
type IntLiteral struct {
	span  source.Span
	Value *big.Int
}

func NewIntLiteral(span source.Span, value *big.Int) *IntLiteral {
	return &IntLiteral{span: span, Value: value}
}

func (l *IntLiteral) Span() source.Span { return l.span }
func (*IntLiteral) literal()            {}

// FloatLiteral holds a floating-point constant.
type FloatLiteral struct {
	span  source.Span
	Value float64
}

func NewFloatLiteral(span source.Span, value float64) *FloatLiteral {
	return &FloatLiteral{span: span, Value: value}
}

func (l *FloatLiteral) Span() source.Span { return l.span }
func (*FloatLiteral) literal()            {}

// BoolLiteral holds true/false.
type BoolLiteral struct {
	span  source.Span
	Value bool
}

func NewBoolLiteral(span source.Span, value bool) *BoolLiteral {
	return &BoolLiteral{span: span, Value: value}
}

func (l *BoolLiteral) Span() source.Span { return l.span }
func (*BoolLiteral) literal()            {}

// StringLiteral holds a quoted string constant, already unescaped.
type StringLiteral struct {
	span  source.Span
	Value string
}

func NewStringLiteral(span source.Span, value string) *StringLiteral {
	return &StringLiteral{span: span, Value: value}
}

func (l *StringLiteral) Span() source.Span { return l.span }
func (*StringLiteral) literal()            {}

// ByteArrayLiteral holds a byte-array constant, e.g. b"...".
type ByteArrayLiteral struct {
	span  source.Span
	Value []byte
}

func NewByteArrayLiteral(span source.Span, value []byte) *ByteArrayLiteral {
	return &ByteArrayLiteral{span: span, Value: value}
}

func (l *ByteArrayLiteral) Span() source.Span { return l.span }
func (*ByteArrayLiteral) literal()            {}

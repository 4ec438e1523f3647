package ast

import "github.com/dnaka91/mabo/pkg/source"

// Primitive enumerates the scalar and borrowed/boxed string/bytes types of
// spec §3.
type Primitive int

const (
	Bool Primitive = iota
	U8
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F32
	F64
	String
	StringRef // &string
	Bytes
	BytesRef // &bytes
	BoxString
	BoxBytes
)

func (p Primitive) String() string {
	switch p {
	case Bool:
		return "bool"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case String:
		return "string"
	case StringRef:
		return "&string"
	case Bytes:
		return "bytes"
	case BytesRef:
		return "&bytes"
	case BoxString:
		return "box<string>"
	case BoxBytes:
		return "box<bytes>"
	default:
		return "unknown"
	}
}

// Type is the tagged variant of a type reference: primitive, container, or
// external (spec §3).
type Type interface {
	Node
	typeNode()
}

// PrimitiveType is one of the scalar kinds enumerated above.
type PrimitiveType struct {
	span source.Span
	Kind Primitive
}

func NewPrimitiveType(span source.Span, kind Primitive) *PrimitiveType {
	return &PrimitiveType{span: span, Kind: kind}
}

func (t *PrimitiveType) Span() source.Span { return t.span }
func (*PrimitiveType) typeNode()           {}

// VecType is vec<T>.
type VecType struct {
	span    source.Span
	Element Type
}

func NewVecType(span source.Span, element Type) *VecType {
	return &VecType{span: span, Element: element}
}

func (t *VecType) Span() source.Span { return t.span }
func (*VecType) typeNode()           {}

// HashSetType is hash_set<T>.
type HashSetType struct {
	span    source.Span
	Element Type
}

func NewHashSetType(span source.Span, element Type) *HashSetType {
	return &HashSetType{span: span, Element: element}
}

func (t *HashSetType) Span() source.Span { return t.span }
func (*HashSetType) typeNode()           {}

// OptionType is option<T>.
type OptionType struct {
	span    source.Span
	Element Type
}

func NewOptionType(span source.Span, element Type) *OptionType {
	return &OptionType{span: span, Element: element}
}

func (t *OptionType) Span() source.Span { return t.span }
func (*OptionType) typeNode()           {}

// NonZeroType is non_zero<T>.
type NonZeroType struct {
	span    source.Span
	Element Type
}

func NewNonZeroType(span source.Span, element Type) *NonZeroType {
	return &NonZeroType{span: span, Element: element}
}

func (t *NonZeroType) Span() source.Span { return t.span }
func (*NonZeroType) typeNode()           {}

// ArraySize is the N in array<T; N>: a literal, spanned separately from the
// element type so diagnostics can point at just the size.
type ArraySize struct {
	Span  source.Span
	Value uint64
}

// ArrayType is array<T; N>.
type ArrayType struct {
	span    source.Span
	Element Type
	Size    ArraySize
}

func NewArrayType(span source.Span, element Type, size ArraySize) *ArrayType {
	return &ArrayType{span: span, Element: element, Size: size}
}

func (t *ArrayType) Span() source.Span { return t.span }
func (*ArrayType) typeNode()           {}

// HashMapType is hash_map<K, V>.
type HashMapType struct {
	span  source.Span
	Key   Type
	Value Type
}

func NewHashMapType(span source.Span, key, value Type) *HashMapType {
	return &HashMapType{span: span, Key: key, Value: value}
}

func (t *HashMapType) Span() source.Span { return t.span }
func (*HashMapType) typeNode()           {}

// TupleType is tuple<T1,...,Tn>; pkg/validate enforces the [2, 12] arity
// invariant, not this constructor.
type TupleType struct {
	span     source.Span
	Elements []Type
}

func NewTupleType(span source.Span, elements []Type) *TupleType {
	return &TupleType{span: span, Elements: elements}
}

func (t *TupleType) Span() source.Span { return t.span }
func (*TupleType) typeNode()           {}

// ExternalType is a fully-qualified reference path::Name<generics...>,
// resolved against the import graph in pkg/resolve.
type ExternalType struct {
	span     source.Span
	Path     []string // empty for a same-schema reference
	Name     string
	NameSpan source.Span
	Generics []Type
}

func NewExternalType(span source.Span, path []string, name string, nameSpan source.Span, generics []Type) *ExternalType {
	return &ExternalType{span: span, Path: path, Name: name, NameSpan: nameSpan, Generics: generics}
}

func (t *ExternalType) Span() source.Span { return t.span }
func (*ExternalType) typeNode()           {}

// GenericType is a reference to a generic parameter declared by the
// enclosing struct/enum/alias, e.g. the T in field value: T.
type GenericType struct {
	span source.Span
	Name string
}

func NewGenericType(span source.Span, name string) *GenericType {
	return &GenericType{span: span, Name: name}
}

func (t *GenericType) Span() source.Span { return t.span }
func (*GenericType) typeNode()           {}

// Package ir defines the normalized intermediate representation produced
// by the simplifier (spec §4.G): the lowering target shared by code
// generators, documentation rendering, and editor tooling. Unlike pkg/ast,
// IR nodes drop purely syntactic detail (commas, braces, the lossless
// doc-comment token shape) and carry only the spans a consumer still
// needs — name spans, for go-to-definition — everything else is derived
// once and then treated as immutable.
package ir

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// Schema is the root of one simplified .mabo file.
type Schema struct {
	Path string
	Doc  []string
	Defs []Definition
}

// Definition is the IR's tagged variant of a top-level (or nested, for
// Module) declaration.
type Definition interface {
	Name() string
	Doc() []string
	definitionNode()
}

// Module groups nested definitions under a name.
type Module struct {
	Name_    string
	NameSpan source.Span
	Doc_     []string
	Defs     []Definition
}

func (m *Module) Name() string  { return m.Name_ }
func (m *Module) Doc() []string { return m.Doc_ }
func (*Module) definitionNode() {}

// Struct declares a product type, with every field's id already resolved
// to a concrete value (no more "absent, assign on demand").
type Struct struct {
	Name_    string
	NameSpan source.Span
	Doc_     []string
	Generics []string
	Fields   Fields
}

func (s *Struct) Name() string  { return s.Name_ }
func (s *Struct) Doc() []string { return s.Doc_ }
func (*Struct) definitionNode() {}

// Enum declares a sum type.
type Enum struct {
	Name_    string
	NameSpan source.Span
	Doc_     []string
	Generics []string
	Variants []Variant
}

func (e *Enum) Name() string  { return e.Name_ }
func (e *Enum) Doc() []string { return e.Doc_ }
func (*Enum) definitionNode() {}

// Alias declares a type synonym. It remains a distinct IR entity even
// though name lookup treats it as transparent (spec §4.F.3).
type Alias struct {
	Name_    string
	NameSpan source.Span
	Doc_     []string
	Generics []string
	Target   Type
}

func (a *Alias) Name() string  { return a.Name_ }
func (a *Alias) Doc() []string { return a.Doc_ }
func (*Alias) definitionNode() {}

// Const declares a named literal value.
type Const struct {
	Name_    string
	NameSpan source.Span
	Doc_     []string
	Type     Type
	Value    ast.Literal
}

func (c *Const) Name() string  { return c.Name_ }
func (c *Const) Doc() []string { return c.Doc_ }
func (*Const) definitionNode() {}

// Import brings a path, optionally a single named type from it, into scope.
type Import struct {
	Segments []string
	TypeName string
}

func (i *Import) Name() string {
	if i.TypeName != "" {
		return i.TypeName
	}

	if len(i.Segments) == 0 {
		return ""
	}

	return i.Segments[len(i.Segments)-1]
}

func (i *Import) Doc() []string { return nil }
func (*Import) definitionNode() {}

// Fields is the IR's tagged variant of a struct's or variant's field list.
type Fields interface {
	fieldsNode()
}

// NamedField is one field of a NamedFields list, with its id already
// resolved to a concrete value (spec §4.G "Inlines explicit ids where
// absent").
type NamedField struct {
	Doc      []string
	Name     string
	NameSpan source.Span
	Type     Type
	ID       uint32
}

// NamedFields is `{ name: Type, ... }`, already reordered to source order
// (a no-op here since the parser never reorders, but explicit per spec
// §4.G "Normalizes field ordering to source order").
type NamedFields struct {
	Fields []NamedField
}

func (*NamedFields) fieldsNode() {}

// UnnamedField is one field of an UnnamedFields list.
type UnnamedField struct {
	Doc  []string
	Type Type
	ID   uint32
}

// UnnamedFields is `(Type, ...)`.
type UnnamedFields struct {
	Fields []UnnamedField
}

func (*UnnamedFields) fieldsNode() {}

// UnitFields is the empty field list; it has no id space.
type UnitFields struct{}

func (*UnitFields) fieldsNode() {}

// Variant is one arm of an enum.
type Variant struct {
	Doc      []string
	Name     string
	NameSpan source.Span
	Fields   Fields
	ID       uint32
}

// Type is the IR's tagged variant of a type reference. Spans are dropped
// except on ExternalType, whose NameSpan an LSP "go to definition" needs.
type Type interface {
	typeNode()
}

// PrimitiveType reuses ast.Primitive's enumeration directly: it is already
// a plain value type with no syntactic baggage to strip.
type PrimitiveType struct {
	Kind ast.Primitive
}

func (PrimitiveType) typeNode() {}

type VecType struct{ Element Type }

func (VecType) typeNode() {}

type HashSetType struct{ Element Type }

func (HashSetType) typeNode() {}

type OptionType struct{ Element Type }

func (OptionType) typeNode() {}

type NonZeroType struct{ Element Type }

func (NonZeroType) typeNode() {}

type ArrayType struct {
	Element Type
	Size    uint64
}

func (ArrayType) typeNode() {}

type HashMapType struct {
	Key   Type
	Value Type
}

func (HashMapType) typeNode() {}

// TupleType is left unvalidated structurally here: arity was already
// enforced by pkg/validate before simplification runs.
type TupleType struct {
	Elements []Type
}

func (TupleType) typeNode() {}

// ExternalType is a reference to a struct/enum/alias, left unresolved at
// the structural level per spec §4.G ("resolution is the consumer's
// concern if needed") — pkg/resolve has already checked it binds to
// something, but the IR does not store a back-pointer to the resolved
// declaration, keeping the IR producible from a single schema in
// isolation.
type ExternalType struct {
	Path     []string
	Name     string
	NameSpan source.Span
	Generics []Type
}

func (ExternalType) typeNode() {}

// GenericType is a reference to an enclosing generic parameter.
type GenericType struct {
	Name string
}

func (GenericType) typeNode() {}

package parser

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func mustFile(t *testing.T, text string) *source.File {
	t.Helper()

	f, err := source.New("test.mabo", []byte(text))
	assert.Equal(t, nil, err)

	return f
}

// TestMinimalStruct covers spec §8 scenario 1.
func TestMinimalStruct(t *testing.T) {
	schema, diags := Parse(mustFile(t, "struct Sample { value: u32 @1 }"))

	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(schema.Defs))

	s, ok := schema.Defs[0].(*ast.StructDef)
	assert.Equal(t, true, ok)
	assert.Equal(t, "Sample", s.Name())

	nf, ok := s.Fields.(*ast.NamedFields)
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(nf.Fields))
	assert.Equal(t, "value", nf.Fields[0].Name)
	assert.Equal(t, true, nf.Fields[0].ID.Explicit)
	assert.Equal(t, uint32(1), nf.Fields[0].ID.Value)

	prim, ok := nf.Fields[0].Type.(*ast.PrimitiveType)
	assert.Equal(t, true, ok)
	assert.Equal(t, ast.U32, prim.Kind)
}

// TestEnumWithVariants covers spec §8 scenario 2.
func TestEnumWithVariants(t *testing.T) {
	schema, diags := Parse(mustFile(t, "enum E { A @1, B(u32 @1) @2 }"))

	assert.Equal(t, 0, len(diags))

	e, ok := schema.Defs[0].(*ast.EnumDef)
	assert.Equal(t, true, ok)
	assert.Equal(t, 2, len(e.Variants))
	assert.Equal(t, "A", e.Variants[0].Name)
	assert.Equal(t, uint32(1), e.Variants[0].ID.Value)
	assert.Equal(t, "B", e.Variants[1].Name)
	assert.Equal(t, uint32(2), e.Variants[1].ID.Value)

	_, isUnit := e.Variants[0].Fields.(*ast.UnitFields)
	assert.Equal(t, true, isUnit)

	uf, ok := e.Variants[1].Fields.(*ast.UnnamedFields)
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(uf.Fields))
}

func TestOptionalField(t *testing.T) {
	schema, diags := Parse(mustFile(t, "struct O { a: option<u32> @1 }"))
	assert.Equal(t, 0, len(diags))

	s := schema.Defs[0].(*ast.StructDef)
	nf := s.Fields.(*ast.NamedFields)

	_, ok := nf.Fields[0].Type.(*ast.OptionType)
	assert.Equal(t, true, ok)
}

func TestAliasResolutionScenario(t *testing.T) {
	aSchema, diags := Parse(mustFile(t, "type Foo = u32;"))
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(aSchema.Defs))

	bSchema, diags := Parse(mustFile(t, "use a::Foo;\nstruct S { x: Foo @1 }"))
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 2, len(bSchema.Defs))

	imp, ok := bSchema.Defs[0].(*ast.ImportDef)
	assert.Equal(t, true, ok)
	assert.Equal(t, []string{"a"}, imp.Segments)
	assert.Equal(t, "Foo", imp.TypeName)
}

func TestDocCommentsAttachToDefinition(t *testing.T) {
	schema, diags := Parse(mustFile(t, "/// Hello\n/// World\nstruct X { a: u32 @1 }"))
	assert.Equal(t, 0, len(diags))

	s := schema.Defs[0].(*ast.StructDef)
	assert.Equal(t, []string{"Hello", "World"}, s.Doc())
}

func TestAttributesAttachToDefinition(t *testing.T) {
	schema, diags := Parse(mustFile(t, "#[derive(Eq)]\nstruct X { a: u32 @1 }"))
	assert.Equal(t, 0, len(diags))

	s := schema.Defs[0].(*ast.StructDef)
	assert.Equal(t, 1, len(s.Attributes))
	assert.Equal(t, "derive", s.Attributes[0].Name)
}

func TestGenericsOnStruct(t *testing.T) {
	schema, diags := Parse(mustFile(t, "struct Box<T> { value: T @1 }"))
	assert.Equal(t, 0, len(diags))

	s := schema.Defs[0].(*ast.StructDef)
	assert.Equal(t, 1, len(s.Generics))
	assert.Equal(t, "T", s.Generics[0].Name)

	nf := s.Fields.(*ast.NamedFields)
	_, isGeneric := nf.Fields[0].Type.(*ast.GenericType)
	assert.Equal(t, true, isGeneric)
}

func TestTupleAndArrayTypes(t *testing.T) {
	schema, diags := Parse(mustFile(t, "struct X { a: tuple<u32, string> @1, b: array<u8; 4> @2 }"))
	assert.Equal(t, 0, len(diags))

	s := schema.Defs[0].(*ast.StructDef)
	nf := s.Fields.(*ast.NamedFields)

	tup, ok := nf.Fields[0].Type.(*ast.TupleType)
	assert.Equal(t, true, ok)
	assert.Equal(t, 2, len(tup.Elements))

	arr, ok := nf.Fields[1].Type.(*ast.ArrayType)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(4), arr.Size.Value)
}

func TestUnknownKeywordYieldsDiagnosticAndContinues(t *testing.T) {
	schema, diags := Parse(mustFile(t, "bogus thing\nstruct X { a: u32 @1 }"))

	assert.Equal(t, true, len(diags) >= 1)
	assert.Equal(t, 1, len(schema.Defs))

	s, ok := schema.Defs[0].(*ast.StructDef)
	assert.Equal(t, true, ok)
	assert.Equal(t, "X", s.Name())
}

func TestPrintParseIdempotence(t *testing.T) {
	const src = `struct Sample {
    value: u32 @1,
}
`

	schema1, diags := Parse(mustFile(t, src))
	assert.Equal(t, 0, len(diags))

	printed := Print(schema1)

	schema2, diags := Parse(mustFile(t, printed))
	assert.Equal(t, 0, len(diags))

	reprinted := Print(schema2)

	assert.Equal(t, printed, reprinted)
}

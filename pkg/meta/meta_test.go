package meta

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func explicit(v uint32) *ast.ID { return &ast.ID{Value: v, Explicit: true} }

func TestNextID_Empty(t *testing.T) {
	fields := ast.NewNamedFields(source.Span{}, nil)
	id := NextID(fields)
	assert.Equal(t, true, id.HasValue())
	assert.Equal(t, uint32(1), id.Unwrap())
}

func TestNextID_Unit(t *testing.T) {
	id := NextID(ast.NewUnitFields(source.Span{}))
	assert.Equal(t, true, id.IsEmpty())
}

func TestNextID_MaxPlusOne(t *testing.T) {
	fields := ast.NewNamedFields(source.Span{}, []ast.NamedField{
		{Name: "a", ID: explicit(1)},
		{Name: "b", ID: explicit(5)},
		{Name: "c", ID: nil},
	})

	id := NextID(fields)
	assert.Equal(t, true, id.HasValue())
	assert.Equal(t, uint32(6), id.Unwrap())
}

func TestEffectiveIDs_GeneratedFollowsPreviousExplicit(t *testing.T) {
	ids := []*ast.ID{explicit(1), nil, nil, explicit(10), nil}
	got := EffectiveIDs(ids)
	assert.Equal(t, []uint32{1, 2, 3, 10, 11}, got)
}

func TestSizeOfType_Primitives(t *testing.T) {
	size := SizeOfType(ir.PrimitiveType{Kind: ast.Bool})
	assert.Equal(t, 1, size.Min)
	assert.Equal(t, 1, *size.Max)

	size = SizeOfType(ir.PrimitiveType{Kind: ast.U32})
	assert.Equal(t, 1, size.Min)
	assert.Equal(t, 5, *size.Max)

	size = SizeOfType(ir.PrimitiveType{Kind: ast.F64})
	assert.Equal(t, 8, size.Min)
	assert.Equal(t, 8, *size.Max)

	size = SizeOfType(ir.PrimitiveType{Kind: ast.String})
	assert.Equal(t, 1, size.Min)
	assert.Equal(t, (*int)(nil), size.Max)
}

func TestSizeOfType_Array(t *testing.T) {
	arr := ir.ArrayType{Element: ir.PrimitiveType{Kind: ast.U8}, Size: 4}
	size := SizeOfType(arr)
	assert.Equal(t, 1+4, size.Min)
	assert.Equal(t, 1+4, *size.Max)
}

func TestSizeOfType_Tuple(t *testing.T) {
	tup := ir.TupleType{Elements: []ir.Type{ir.PrimitiveType{Kind: ast.U8}, ir.PrimitiveType{Kind: ast.F32}}}
	size := SizeOfType(tup)
	assert.Equal(t, 1+4, size.Min)
	assert.Equal(t, 1+4, *size.Max)
}

func TestSizeOfType_External(t *testing.T) {
	size := SizeOfType(ir.ExternalType{Name: "Foo"})
	assert.Equal(t, 0, size.Min)
	assert.Equal(t, (*int)(nil), size.Max)
}

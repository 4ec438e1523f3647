package ir

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func parseOne(t *testing.T, src string) *ast.Schema {
	t.Helper()

	file, err := source.New("", []byte(src))
	assert.Equal(t, nil, err)

	schema, diags := parser.Parse(file)
	assert.Equal(t, 0, len(diags), "%v", diags)

	return schema
}

func TestSimplify_MinimalStruct(t *testing.T) {
	schema := parseOne(t, "struct Sample { value: u32 @1 }")
	s := Simplify(schema)

	assert.Equal(t, 1, len(s.Defs))

	st, ok := s.Defs[0].(*Struct)
	assert.Equal(t, true, ok)
	assert.Equal(t, "Sample", st.Name())

	named, ok := st.Fields.(*NamedFields)
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(named.Fields))
	assert.Equal(t, "value", named.Fields[0].Name)
	assert.Equal(t, uint32(1), named.Fields[0].ID)
}

func TestSimplify_InlinesGeneratedIDs(t *testing.T) {
	schema := parseOne(t, "struct X { a: u32 @1, b: u32, c: u32 @5, d: u32 }")
	s := Simplify(schema)

	named := s.Defs[0].(*Struct).Fields.(*NamedFields)
	ids := make([]uint32, len(named.Fields))

	for i, f := range named.Fields {
		ids[i] = f.ID
	}

	assert.Equal(t, []uint32{1, 2, 5, 6}, ids)
}

func TestSimplify_DocTrimmed(t *testing.T) {
	schema := parseOne(t, "/// hello  \nstruct X {}\n")
	s := Simplify(schema)

	assert.Equal(t, []string{"hello"}, s.Defs[0].Doc())
}

func TestRenderDoc_ParagraphBreaks(t *testing.T) {
	got := RenderDoc([]string{"first line", "second line", "", "second paragraph"})
	assert.Equal(t, "first line second line\n\nsecond paragraph", got)
}

func TestClassifySpans_CoversNamesAndTypes(t *testing.T) {
	schema := parseOne(t, "struct Sample { value: u32 @1 }")
	classes := ClassifySpans(schema)

	var names, types int

	for _, c := range classes {
		switch c.Kind {
		case SpanKindName:
			names++
		case SpanKindType:
			types++
		}
	}

	assert.Equal(t, 2, names) // struct name + field name
	assert.Equal(t, 1, types) // the u32 primitive
}

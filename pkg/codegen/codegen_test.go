package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func simplify(t *testing.T, src string) *ir.Schema {
	t.Helper()

	file, err := source.New("", []byte(src))
	assert.Equal(t, nil, err)

	schema, diags := parser.Parse(file)
	assert.Equal(t, 0, len(diags), "%v", diags)

	return ir.Simplify(schema)
}

func TestGenerate_Struct(t *testing.T) {
	schema := simplify(t, "struct Sample { value: u32 @1, name: string @2 }")

	var buf bytes.Buffer
	err := Generate(schema, "sample", &buf)
	assert.Equal(t, nil, err)

	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "package sample"))
	assert.Equal(t, true, strings.Contains(out, "type Sample struct"))
	assert.Equal(t, true, strings.Contains(out, "Value uint32"))
	assert.Equal(t, true, strings.Contains(out, "Name string"))
}

func TestGenerate_EnumAndAlias(t *testing.T) {
	schema := simplify(t, "enum Shape { Circle(u32 @1) @1, Square @2 }\ntype Radius = u32;")

	var buf bytes.Buffer
	err := Generate(schema, "shapes", &buf)
	assert.Equal(t, nil, err)

	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "type Shape struct"))
	assert.Equal(t, true, strings.Contains(out, "ShapeCircle"))
	assert.Equal(t, true, strings.Contains(out, "type Radius = uint32"))
}

func TestGenerate_U128NeedsBigInt(t *testing.T) {
	schema := simplify(t, "struct Big { value: u128 @1 }")

	var buf bytes.Buffer
	err := Generate(schema, "big", &buf)
	assert.Equal(t, nil, err)

	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "math/big"))
	assert.Equal(t, true, strings.Contains(out, "*big.Int"))
}

package ircache

import (
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

func TestEncodeDecode_RoundTrip(t *testing.T) {
	src := []byte("struct Sample { value: u32 @1, name: string @2 }")
	schema := simplify(t, string(src))

	data, err := Encode(src, schema)
	assert.Equal(t, nil, err)

	got, hit, err := Decode(data, src)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, hit)
	assert.Equal(t, 1, len(got.Defs))

	st, ok := got.Defs[0].(*ir.Struct)
	assert.Equal(t, true, ok)
	assert.Equal(t, "Sample", st.Name())
}

func TestDecode_StaleSourceMisses(t *testing.T) {
	src := []byte("struct Sample { value: u32 @1 }")
	schema := simplify(t, string(src))

	data, err := Encode(src, schema)
	assert.Equal(t, nil, err)

	_, hit, err := Decode(data, []byte("struct Sample { value: u32 @2 }"))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, hit)
}

func TestDecode_IncompatibleVersionMisses(t *testing.T) {
	src := []byte("struct Sample {}")
	schema := simplify(t, string(src))

	data, err := Encode(src, schema)
	assert.Equal(t, nil, err)

	header, rest, err := UnmarshalHeader(data)
	assert.Equal(t, nil, err)

	header.MajorVersion++
	data = append(header.MarshalBinary(), rest...)

	_, hit, err := Decode(data, src)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, hit)
}

func TestUnmarshalHeader_Truncated(t *testing.T) {
	_, _, err := UnmarshalHeader([]byte{1, 2, 3})
	assert.Equal(t, true, err != nil)
}

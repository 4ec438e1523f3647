package validate

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func codesOf(t *testing.T, src string) []string {
	t.Helper()

	file, err := source.New("", []byte(src))
	assert.Equal(t, nil, err)

	schema, parseDiags := parser.Parse(file)
	assert.Equal(t, 0, len(parseDiags), "%v", parseDiags)

	diags := Schema(schema)

	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}

	return codes
}

func TestDuplicateName(t *testing.T) {
	codes := codesOf(t, "struct X {}\nstruct X {}\n")
	assert.Equal(t, []string{"mabo::validate::duplicate_name"}, codes)
}

func TestDuplicateFieldID(t *testing.T) {
	codes := codesOf(t, "struct X { a: u32 @1, b: u32 @1 }")
	assert.Equal(t, []string{"mabo::validate::duplicate_id"}, codes)
}

func TestDuplicateFieldName(t *testing.T) {
	codes := codesOf(t, "struct X { a: u32 @1, a: u32 @2 }")
	assert.Equal(t, []string{"mabo::validate::duplicate_name"}, codes)
}

func TestUnusedGeneric(t *testing.T) {
	codes := codesOf(t, "struct Box<T> { value: u32 @1 }")
	assert.Equal(t, []string{"mabo::validate::unused_generic"}, codes)
}

func TestUsedGenericNoDiagnostic(t *testing.T) {
	codes := codesOf(t, "struct Box<T> { value: T @1 }")
	assert.Equal(t, 0, len(codes))
}

func TestTupleArityTooFew(t *testing.T) {
	codes := codesOf(t, "type Pair = tuple<u32>;")
	assert.Equal(t, []string{"mabo::validate::tuple_arity"}, codes)
}

func TestTupleArityOk(t *testing.T) {
	codes := codesOf(t, "type Pair = tuple<u32, u32>;")
	assert.Equal(t, 0, len(codes))
}

func TestDuplicateVariantID(t *testing.T) {
	codes := codesOf(t, "enum E { A @1, B @1 }")
	assert.Equal(t, []string{"mabo::validate::duplicate_id"}, codes)
}

func TestInvalidStructName(t *testing.T) {
	codes := codesOf(t, "struct lowercase {}")
	assert.Equal(t, []string{"mabo::validate::invalid_name"}, codes)
}

func TestInvalidFieldName(t *testing.T) {
	codes := codesOf(t, "struct X { Bad: u32 @1 }")
	assert.Equal(t, []string{"mabo::validate::invalid_name"}, codes)
}

func TestValidSchemaNoDiagnostics(t *testing.T) {
	codes := codesOf(t, "struct Sample { value: u32 @1 }")
	assert.Equal(t, 0, len(codes))
}

func TestDuplicateGeneric(t *testing.T) {
	codes := codesOf(t, "struct Box<T, T> { value: T @1 }")
	assert.Equal(t, []string{"mabo::validate::duplicate_generic"}, codes)
}

package diag

import (
	"strings"
	"testing"

	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func TestErrorWithCause(t *testing.T) {
	inner := New("mabo::parse::type::unexpected_char", source.NewSpan(10, 11), "unexpected '@'")
	outer := New("mabo::parse::struct_def::invalid_field", source.NewSpan(0, 20), "invalid field declaration").WithCause(inner)

	assert.Equal(t, 2, len(outer.Chain()))
	assert.Equal(t, true, strings.Contains(outer.Error(), "caused by"))
}

func TestPlainRendererIncludesCodeAndCaret(t *testing.T) {
	file, err := source.New("sample.mabo", []byte("struct X { a: u32 @1, b: u32 @1 }\n"))
	assert.Equal(t, nil, err)

	span := source.NewSpan(29, 31)
	d := New("mabo::validate::duplicate_id", span, "duplicate id @1").
		WithLabel(span, "second use here").
		WithHelp("each field or variant id must be unique within its scope")

	out := PlainRenderer{}.Render(file, []*Diagnostic{d})

	assert.Equal(t, true, strings.Contains(out, "mabo::validate::duplicate_id"))
	assert.Equal(t, true, strings.Contains(out, "^"))
	assert.Equal(t, true, strings.Contains(out, "help:"))
}

func TestJSONRendererRoundTripsLabels(t *testing.T) {
	file, err := source.New("", []byte("const X: u32 = 1;\n"))
	assert.Equal(t, nil, err)

	d := New("mabo::resolve::unresolved_reference", source.NewSpan(6, 7), "cannot resolve 'X'")

	out := JSONRenderer{}.Render(file, []*Diagnostic{d})

	assert.Equal(t, true, strings.Contains(out, "mabo::resolve::unresolved_reference"))
	assert.Equal(t, true, strings.Contains(out, `"line"`))
}

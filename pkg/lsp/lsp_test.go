package lsp

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/util/assert"
)

const sampleSrc = "/// A sample.\nstruct Sample { value: u32 @1 }\n"

func TestWorkspace_OpenCollectsDiagnostics(t *testing.T) {
	ws := NewWorkspace()
	doc := ws.Open("file:///sample.mabo", "struct { value: u32 @1 }")

	assert.Equal(t, true, len(doc.Diagnostics) > 0)
}

func TestWorkspace_PublishDiagnostics_Clean(t *testing.T) {
	ws := NewWorkspace()
	ws.Open("file:///sample.mabo", sampleSrc)

	params := ws.PublishDiagnostics("file:///sample.mabo")
	assert.Equal(t, 0, len(params.Diagnostics))
}

func TestHover_StructName(t *testing.T) {
	ws := NewWorkspace()
	doc := ws.Open("file:///sample.mabo", sampleSrc)

	idx := len("/// A sample.\nstruct ")
	pos := ToPosition(doc.File, idx)

	hover, ok := Hover(doc, pos)
	assert.Equal(t, true, ok)
	assert.Equal(t, true, hover != nil)
}

func TestSemanticTokens_NonEmpty(t *testing.T) {
	ws := NewWorkspace()
	doc := ws.Open("file:///sample.mabo", sampleSrc)

	tokens := SemanticTokens(doc)
	assert.Equal(t, true, len(tokens.Data) > 0)
	assert.Equal(t, 0, len(tokens.Data)%5)
}

func TestWorkspace_CloseAll(t *testing.T) {
	ws := NewWorkspace()
	ws.Open("file:///a.mabo", sampleSrc)
	ws.Open("file:///b.mabo", sampleSrc)

	assert.Equal(t, 2, len(ws.Snapshot()))

	ws.CloseAll()

	assert.Equal(t, 0, len(ws.Snapshot()))

	_, ok := ws.Get("file:///a.mabo")
	assert.Equal(t, false, ok)
}

func TestOffsetAt_RoundTrip(t *testing.T) {
	ws := NewWorkspace()
	doc := ws.Open("file:///sample.mabo", sampleSrc)

	offset := len("/// A sample.\nstruct ")
	pos := ToPosition(doc.File, offset)
	got := OffsetAt(doc.File, pos)

	assert.Equal(t, offset, got)
}

package lsp

import (
	"sort"

	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/ir"
)

// TokenTypes is the semantic-token legend: each encoded tokenType index in
// SemanticTokens refers to one of these names. The initialize response
// does not include this legend; it declares the hover capability only.
var TokenTypes = []string{"type", "variable", "number"}

func tokenTypeIndex(kind ir.SpanKind) uint32 {
	switch kind {
	case ir.SpanKindType:
		return 0
	case ir.SpanKindName:
		return 1
	case ir.SpanKindLiteral:
		return 2
	default:
		return 0
	}
}

// SemanticTokens encodes doc's classified spans into the LSP
// textDocument/semanticTokens/full relative-delta wire format: each token
// contributes five uint32s (deltaLine, deltaStartChar, length, tokenType,
// tokenModifiers), with position deltas relative to the previous token
// rather than absolute, per the protocol's full-document encoding.
func SemanticTokens(doc *Document) *protocol.SemanticTokens {
	if doc.File == nil || len(doc.Classes) == 0 {
		return &protocol.SemanticTokens{Data: []uint32{}}
	}

	classes := append([]ir.SpanClass(nil), doc.Classes...)
	sort.Slice(classes, func(i, j int) bool { return classes[i].Span.Start() < classes[j].Span.Start() })

	data := make([]uint32, 0, len(classes)*5)

	prevLine, prevChar := uint32(0), uint32(0)

	for _, c := range classes {
		start := ToPosition(doc.File, c.Span.Start())

		deltaLine := start.Line - prevLine

		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar = start.Character - prevChar
		}

		data = append(data, deltaLine, deltaChar, uint32(c.Span.Length()), tokenTypeIndex(c.Kind), 0)

		prevLine, prevChar = start.Line, start.Character
	}

	return &protocol.SemanticTokens{Data: data}
}

package lsp

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/source"
)

// ToPosition converts a byte offset within file into an LSP position:
// 0-indexed line, UTF-16 code-unit character (source.File.UTF16Column is
// already 1-indexed for terminal diagnostics, so both it and the line
// number need shifting down by one here).
func ToPosition(file *source.File, offset int) protocol.Position {
	pos := file.PositionOf(offset)
	character := file.UTF16Column(offset)

	return protocol.Position{Line: uint32(pos.Line - 1), Character: uint32(character - 1)}
}

// ToRange converts span into an LSP range.
func ToRange(file *source.File, span source.Span) protocol.Range {
	return protocol.Range{
		Start: ToPosition(file, span.Start()),
		End:   ToPosition(file, span.End()),
	}
}

// OffsetAt inverts ToPosition: it walks file's contents line by line, then
// UTF-16 code unit by code unit, to find the byte offset pos refers to.
func OffsetAt(file *source.File, pos protocol.Position) int {
	contents := file.Contents()

	idx := 0
	line := 0

	for line < int(pos.Line) && idx < len(contents) {
		if contents[idx] == '\n' {
			line++
		}

		idx++
	}

	remaining := int(pos.Character)

	for remaining > 0 && idx < len(contents) && contents[idx] != '\n' {
		r, size := utf8.DecodeRune(contents[idx:])
		if r > 0xFFFF {
			remaining -= 2
		} else {
			remaining--
		}

		idx += size
	}

	return idx
}

package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// File represents a single `.mabo` source file: an optional originating path
// and its (already normalized) contents. The file owns its text; every other
// AST node produced while parsing it only borrows from it by Span.
type File struct {
	// path is the originating file path, or "" for in-memory/synthetic
	// sources (e.g. schemas supplied directly by a caller or test).
	path string
	// contents holds the UTF-8 source text with CRLF line endings already
	// normalized to LF, so that every Span computed downstream is stable
	// regardless of the file's original line-ending convention.
	contents []byte
}

// New constructs a File from already-decoded bytes, rejecting invalid UTF-8
// at this boundary (per spec, non-UTF-8 source is rejected at the IO
// boundary, before any parser machinery sees it) and normalizing CRLF to LF.
func New(path string, raw []byte) (*File, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("source: %s: not valid UTF-8", displayName(path))
	}

	normalized := strings.ReplaceAll(string(raw), "\r\n", "\n")

	return &File{path: path, contents: []byte(normalized)}, nil
}

// ReadFile reads and constructs a File from disk.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return New(path, raw)
}

// ReadFiles reads zero or more source files, stopping at the first failure.
func ReadFiles(paths ...string) ([]*File, error) {
	files := make([]*File, len(paths))

	for i, p := range paths {
		f, err := ReadFile(p)
		if err != nil {
			return nil, err
		}

		files[i] = f
	}

	return files, nil
}

func displayName(path string) string {
	if path == "" {
		return "<memory>"
	}

	return path
}

// Path returns the originating path of this file, or "" if it has none.
func (f *File) Path() string { return f.path }

// Contents returns the normalized UTF-8 source text.
func (f *File) Contents() []byte { return f.contents }

// Slice returns the substring of this file's contents covered by span.
func (f *File) Slice(span Span) string {
	return string(f.contents[span.Start():span.End()])
}

// Len returns the number of bytes in this file's contents.
func (f *File) Len() int { return len(f.contents) }

// FullSpan returns a span covering the entire file.
func (f *File) FullSpan() Span {
	return Span{0, len(f.contents)}
}

// Position identifies a single location within a File, as both a byte offset
// and the 1-indexed (line, column) it falls on. Column is counted in bytes
// from the start of the line; see UTF16Column for UTF-16 code-unit columns
// as required by editor protocols.
type Position struct {
	Offset int
	Line   int
	Column int
}

// PositionOf resolves a byte offset into its line/column. Offsets beyond the
// end of the file resolve against the final line, matching the teacher's
// "last physical line" fallback for FindFirstEnclosingLine.
func (f *File) PositionOf(offset int) Position {
	line, lineStart := 1, 0

	for i := 0; i < offset && i < len(f.contents); i++ {
		if f.contents[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	if offset > len(f.contents) {
		offset = len(f.contents)
	}

	return Position{Offset: offset, Line: line, Column: offset - lineStart + 1}
}

// Line describes a single physical line of source text.
type Line struct {
	Number int
	Span   Span
	text   []byte
}

// String returns the text of this line, excluding its terminating newline.
func (l Line) String() string {
	return string(l.text[l.Span.Start():l.Span.End()])
}

// EnclosingLine returns the first physical line that encloses the start of
// span. As with the teacher's FindFirstEnclosingLine, a span whose start is
// beyond the end of the file resolves to the final line, and the returned
// line is not guaranteed to enclose the entirety of a multi-line span.
func (f *File) EnclosingLine(span Span) Line {
	index, num, start := span.Start(), 1, 0

	for i := 0; i < len(f.contents); i++ {
		if i == index {
			return Line{num, Span{start, endOfLine(index, f.contents)}, f.contents}
		}

		if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{num, Span{start, len(f.contents)}, f.contents}
}

func endOfLine(index int, text []byte) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}

// UTF16Column converts a byte offset on the given line into a UTF-16
// code-unit column (1-indexed), as required by the Language Server Protocol
// which counts character positions in UTF-16 units regardless of the
// wire encoding of the document.
func (f *File) UTF16Column(offset int) int {
	pos := f.PositionOf(offset)
	line := f.EnclosingLine(Span{offset, offset})
	bytePrefix := offset - line.Span.Start()

	if bytePrefix < 0 || bytePrefix > line.Span.Length() {
		return pos.Column
	}

	units := 0
	text := line.text[line.Span.Start() : line.Span.Start()+bytePrefix]

	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}

		text = text[size:]
	}

	return units + 1
}

// Package source owns the original schema text and the byte-range spans that
// every later pipeline stage (parser, validator, resolver, simplifier,
// diagnostics) tags its nodes with.
package source

import "fmt"

// Span represents a half-open byte range `[start, end)` into a source file's
// contents. It is deliberately a plain value (not a pointer into the text)
// so that AST nodes can carry it cheaply and so spans compose by simple
// arithmetic.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span, panicking if the range is inverted.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span: start > end")
	}

	return Span{start, end}
}

// Start returns the first byte index covered by this span.
func (s Span) Start() int { return s.start }

// End returns one past the last byte index covered by this span.
func (s Span) End() int { return s.end }

// Length returns the number of bytes covered by this span.
func (s Span) Length() int { return s.end - s.start }

// IsEmpty reports whether this span covers zero bytes.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Join returns the smallest span covering both s and other. This is how a
// parent node's span is derived from its children plus any literal tokens
// it consumed directly.
func (s Span) Join(other Span) Span {
	return Span{min(s.start, other.start), max(s.end, other.end)}
}

// Contains reports whether pos falls within this span.
func (s Span) Contains(pos int) bool {
	return pos >= s.start && pos < s.end
}

// String renders the span as "start..end", primarily for test failure
// messages and debug output.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.start, s.end)
}

// Package parser implements mabo's hand-written, lexer-less recursive
// descent parser (spec §4.D). There is no separate tokenizing pass: each
// production resolves its own token boundaries directly against the byte
// cursor, consuming whitespace and comments only between productions.
package parser

import (
	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/source"
)

// cursor is the shared low-level scanning state. It never reports errors
// itself — callers decide what a failed match means at their level (try
// another alternative, or turn it into a diag.Diagnostic).
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) eof() bool { return c.pos >= len(c.data) }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}

	return c.data[c.pos]
}

func (c *cursor) peekAt(offset int) byte {
	if c.pos+offset >= len(c.data) {
		return 0
	}

	return c.data[c.pos+offset]
}

func (c *cursor) hasPrefix(s string) bool {
	if c.pos+len(s) > len(c.data) {
		return false
	}

	return string(c.data[c.pos:c.pos+len(s)]) == s
}

// keyword matches s at the cursor and requires it not be followed by an
// identifier continuation byte, so e.g. "structural" does not match the
// "struct" keyword.
func (c *cursor) keyword(s string) bool {
	if !c.hasPrefix(s) {
		return false
	}

	if isIdentCont(c.peekAt(len(s))) {
		return false
	}

	return true
}

func (c *cursor) advance() byte {
	b := c.data[c.pos]
	c.pos++

	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '_'
}

// skipTrivia consumes whitespace and non-doc (`//` not followed by `/`)
// line comments. It stops right before a `///` doc comment so the caller
// can collect it explicitly.
func (c *cursor) skipTrivia() {
	for {
		for !c.eof() && isSpace(c.peek()) {
			c.pos++
		}

		if c.hasPrefix("//") && !c.hasPrefix("///") {
			for !c.eof() && c.peek() != '\n' {
				c.pos++
			}

			continue
		}

		break
	}
}

// scanIdent scans a run of identifier bytes (no case restriction — naming
// conventions are a validation concern per spec §3, not a parse concern).
// It returns ok=false without consuming anything if the cursor isn't
// positioned at an identifier start.
func (c *cursor) scanIdent() (name string, span source.Span, ok bool) {
	if c.eof() || !isIdentStart(c.peek()) {
		return "", source.Span{}, false
	}

	start := c.pos
	c.pos++

	for !c.eof() && isIdentCont(c.peek()) {
		c.pos++
	}

	return string(c.data[start:c.pos]), source.NewSpan(start, c.pos), true
}

// scanUint scans a run of decimal digits (optionally with `_` separators,
// matching the teacher's own tolerance for grouped literals).
func (c *cursor) scanUint() (text string, span source.Span, ok bool) {
	if c.eof() || !isDigit(c.peek()) {
		return "", source.Span{}, false
	}

	start := c.pos

	for !c.eof() && (isDigit(c.peek()) || c.peek() == '_') {
		c.pos++
	}

	return string(c.data[start:c.pos]), source.NewSpan(start, c.pos), true
}

// state is an opaque checkpoint for backtracking across an alternative
// production that turned out not to match.
type state struct{ pos int }

func (c *cursor) save() state    { return state{c.pos} }
func (c *cursor) restore(s state) { c.pos = s.pos }

// parser bundles the cursor with the diagnostics accumulated so far and the
// owning source file (for span bookkeeping only — the parser never reads
// file.Contents() itself except through the cursor's own copy).
type parser struct {
	cursor
	file  *source.File
	diags []*diag.Diagnostic
}

func newParser(file *source.File) *parser {
	return &parser{cursor: cursor{data: file.Contents()}, file: file}
}

func (p *parser) errorf(code string, span source.Span, format string, args ...any) *diag.Diagnostic {
	d := diag.New(code, span, format, args...)
	p.diags = append(p.diags, d)

	return d
}

// syncToNextDefinition recovers from a cut-committed failure within one
// definition by skipping forward to the next byte that could plausibly
// start a new top-level definition, so the remaining file still yields
// diagnostics instead of aborting entirely.
func (p *parser) syncToNextDefinition() {
	for !p.eof() {
		p.skipTrivia()

		if p.eof() {
			return
		}

		switch p.peek() {
		case 'm', 's', 'e', 'c', 't', 'u', '#', '}':
			return
		}

		p.pos++
	}
}

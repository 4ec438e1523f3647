package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// parseLiteral parses one of: integer, floating, boolean, string,
// byte-array (spec §3). Byte-array literals use the `b"..."` form, mirroring
// Rust byte-string syntax — the one token shape the distilled grammar
// leaves implicit.
func (p *parser) parseLiteral() (ast.Literal, bool) {
	start := p.pos

	switch {
	case p.keyword("true"):
		p.pos += 4
		return ast.NewBoolLiteral(source.NewSpan(start, p.pos), true), true
	case p.keyword("false"):
		p.pos += 5
		return ast.NewBoolLiteral(source.NewSpan(start, p.pos), false), true
	case p.hasPrefix(`b"`):
		return p.parseByteArrayLiteral()
	case !p.eof() && p.peek() == '"':
		return p.parseStringLiteral()
	case !p.eof() && (isDigit(p.peek()) || p.peek() == '-'):
		return p.parseNumberLiteral()
	default:
		return nil, false
	}
}

func (p *parser) parseStringLiteral() (ast.Literal, bool) {
	start := p.pos
	p.pos++ // opening quote

	var b strings.Builder

	for {
		if p.eof() {
			return nil, false
		}

		c := p.peek()

		if c == '"' {
			p.pos++
			return ast.NewStringLiteral(source.NewSpan(start, p.pos), b.String()), true
		}

		if c == '\\' {
			p.pos++

			if p.eof() {
				return nil, false
			}

			b.WriteByte(unescape(p.advance()))

			continue
		}

		b.WriteByte(p.advance())
	}
}

func (p *parser) parseByteArrayLiteral() (ast.Literal, bool) {
	start := p.pos
	p.pos += 2 // `b"`

	var b []byte

	for {
		if p.eof() {
			return nil, false
		}

		c := p.peek()

		if c == '"' {
			p.pos++
			return ast.NewByteArrayLiteral(source.NewSpan(start, p.pos), b), true
		}

		if c == '\\' {
			p.pos++

			if p.eof() {
				return nil, false
			}

			b = append(b, unescape(p.advance()))

			continue
		}

		b = append(b, p.advance())
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return c
	}
}

func (p *parser) parseNumberLiteral() (ast.Literal, bool) {
	start := p.pos

	if !p.eof() && p.peek() == '-' {
		p.pos++
	}

	if _, _, ok := p.scanUint(); !ok {
		p.pos = start
		return nil, false
	}

	if !p.eof() && p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.pos++
		p.scanUint()

		text := string(p.data[start:p.pos])

		v, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return nil, false
		}

		return ast.NewFloatLiteral(source.NewSpan(start, p.pos), v), true
	}

	text := strings.ReplaceAll(string(p.data[start:p.pos]), "_", "")

	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}

	return ast.NewIntLiteral(source.NewSpan(start, p.pos), v), true
}

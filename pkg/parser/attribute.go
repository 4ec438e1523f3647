package parser

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// collectAttributes consumes zero or more `#[...]` blocks, per the
// grammar's `attribute := "#[" attr ("," attr)* ","? "]"`. Each `#[...]`
// block may itself carry multiple comma-separated attrs.
func (p *parser) collectAttributes() []ast.Attribute {
	var attrs []ast.Attribute

	for {
		p.skipTrivia()

		if !p.hasPrefix("#[") {
			break
		}

		start := p.pos
		p.pos += 2

		for {
			p.skipTrivia()

			attr, ok := p.parseAttr()
			if !ok {
				p.errorf("mabo::parse::attribute::invalid",
					source.NewSpan(start, p.pos), "invalid attribute").
					WithHelp("expected an attribute name, optionally with `= literal` or `(nested, ...)`")
				p.syncToByte(']')

				break
			}

			attrs = append(attrs, attr)

			p.skipTrivia()

			if !p.eof() && p.peek() == ',' {
				p.pos++
				continue
			}

			break
		}

		p.skipTrivia()

		if !p.eof() && p.peek() == ']' {
			p.pos++
		}
	}

	return attrs
}

// parseAttr parses a single `name`, `name = literal`, or `name(attr, ...)`.
func (p *parser) parseAttr() (ast.Attribute, bool) {
	start := p.pos

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		return ast.Attribute{}, false
	}

	p.skipTrivia()

	switch {
	case !p.eof() && p.peek() == '=':
		p.pos++
		p.skipTrivia()

		lit, ok := p.parseLiteral()
		if !ok {
			return ast.Attribute{}, false
		}

		return ast.NewAttribute(source.NewSpan(start, p.pos), nameSpan, name, ast.LiteralValue{Value: lit}), true
	case !p.eof() && p.peek() == '(':
		p.pos++

		var nested []ast.Attribute

		for {
			p.skipTrivia()

			if !p.eof() && p.peek() == ')' {
				break
			}

			attr, ok := p.parseAttr()
			if !ok {
				return ast.Attribute{}, false
			}

			nested = append(nested, attr)

			p.skipTrivia()

			if !p.eof() && p.peek() == ',' {
				p.pos++
				continue
			}

			break
		}

		p.skipTrivia()

		if p.eof() || p.peek() != ')' {
			return ast.Attribute{}, false
		}

		p.pos++

		return ast.NewAttribute(source.NewSpan(start, p.pos), nameSpan, name, ast.ListValue{Values: nested}), true
	default:
		return ast.NewAttribute(source.NewSpan(start, p.pos), nameSpan, name, ast.UnitValue{}), true
	}
}

// syncToByte advances past the next occurrence of b, or to EOF, used to
// recover from a malformed attribute without abandoning the whole file.
func (p *parser) syncToByte(b byte) {
	for !p.eof() && p.peek() != b {
		p.pos++
	}

	if !p.eof() {
		p.pos++
	}
}

package parser

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// parseGenerics parses an optional `<Name, ...>` generic parameter list.
func (p *parser) parseGenerics() []ast.Generic {
	p.skipTrivia()

	if p.eof() || p.peek() != '<' {
		return nil
	}

	p.pos++

	var generics []ast.Generic

	for {
		p.skipTrivia()

		name, span, ok := p.scanIdent()
		if !ok {
			break
		}

		generics = append(generics, ast.Generic{Name: name, Span: span})

		p.skipTrivia()

		if !p.eof() && p.peek() == ',' {
			p.pos++
			continue
		}

		break
	}

	p.skipTrivia()
	p.expectByte('>')

	return generics
}

func genericSet(generics []ast.Generic) map[string]bool {
	if len(generics) == 0 {
		return nil
	}

	set := make(map[string]bool, len(generics))
	for _, g := range generics {
		set[g.Name] = true
	}

	return set
}

// parseID parses an optional `@N` explicit id.
func (p *parser) parseID() *ast.ID {
	p.skipTrivia()

	if p.eof() || p.peek() != '@' {
		return nil
	}

	start := p.pos
	p.pos++

	text, _, ok := p.scanUint()
	if !ok {
		p.errorf("mabo::parse::id::invalid", source.NewSpan(start, p.pos), "invalid id declaration").
			WithHelp("expected an id declaration in the form `@1`")

		return nil
	}

	return &ast.ID{Value: uint32(parseUintLiteral(text)), Explicit: true, Span: source.NewSpan(start, p.pos)}
}

// parseFields parses `{ named, ... }`, `(unnamed, ...)`, or the empty unit
// form (spec §3, §4.D `fields` production).
func (p *parser) parseFields(generics map[string]bool) ast.Fields {
	p.skipTrivia()
	start := p.pos

	switch {
	case !p.eof() && p.peek() == '{':
		return p.parseNamedFields(start, generics)
	case !p.eof() && p.peek() == '(':
		return p.parseUnnamedFields(start, generics)
	default:
		return ast.NewUnitFields(source.NewSpan(start, start))
	}
}

func (p *parser) parseNamedFields(start int, generics map[string]bool) ast.Fields {
	p.pos++ // '{'

	var fields []ast.NamedField

	for {
		p.skipTrivia()

		if p.eof() || p.peek() == '}' {
			break
		}

		fstart := p.pos
		doc := p.collectDoc()

		p.skipTrivia()

		name, nameSpan, ok := p.scanIdent()
		if !ok {
			p.errorf("mabo::parse::fields::invalid_name", source.NewSpan(fstart, p.pos), "expected a field name")
			p.syncToAny(",", "}")

			continue
		}

		p.skipTrivia()

		if !p.expectByte(':') {
			p.errorf("mabo::parse::fields::char", source.NewSpan(p.pos, p.pos), "expected `:`").
				WithHelp("expected a field declaration in the form `name: type`")
			p.syncToAny(",", "}")

			continue
		}

		p.skipTrivia()

		typ, ok := p.parseType(generics)
		if !ok {
			p.errorf("mabo::parse::type_def", source.NewSpan(p.pos, p.pos), "expected a type")
			p.syncToAny(",", "}")

			continue
		}

		id := p.parseID()

		fields = append(fields, ast.NamedField{
			Span: source.NewSpan(fstart, p.pos), Doc: doc, Name: name, NameSpan: nameSpan, Type: typ, ID: id,
		})

		p.skipTrivia()

		if !p.eof() && p.peek() == ',' {
			p.pos++
			continue
		}

		break
	}

	p.skipTrivia()

	if !p.eof() && p.peek() == '}' {
		p.pos++
	}

	return ast.NewNamedFields(source.NewSpan(start, p.pos), fields)
}

func (p *parser) parseUnnamedFields(start int, generics map[string]bool) ast.Fields {
	p.pos++ // '('

	var fields []ast.UnnamedField

	for {
		p.skipTrivia()

		if p.eof() || p.peek() == ')' {
			break
		}

		fstart := p.pos
		doc := p.collectDoc()

		p.skipTrivia()

		typ, ok := p.parseType(generics)
		if !ok {
			p.errorf("mabo::parse::type_def", source.NewSpan(p.pos, p.pos), "expected a type")
			p.syncToAny(",", ")")

			continue
		}

		id := p.parseID()

		fields = append(fields, ast.UnnamedField{Span: source.NewSpan(fstart, p.pos), Doc: doc, Type: typ, ID: id})

		p.skipTrivia()

		if !p.eof() && p.peek() == ',' {
			p.pos++
			continue
		}

		break
	}

	p.skipTrivia()

	if !p.eof() && p.peek() == ')' {
		p.pos++
	}

	return ast.NewUnnamedFields(source.NewSpan(start, p.pos), fields)
}

// syncToAny advances until the cursor sits on one of the given single-byte
// delimiters (consuming a leading comma, if that's what stopped it, so the
// caller's loop can continue onto the next element).
func (p *parser) syncToAny(delims ...string) {
	for !p.eof() {
		for _, d := range delims {
			if p.peek() == d[0] {
				if d == "," {
					p.pos++
				}

				return
			}
		}

		p.pos++
	}
}

// parseVariant parses one enum arm: `Name fields id?` (spec §3, §4.D
// `variant` production).
func (p *parser) parseVariant(generics map[string]bool) (ast.Variant, bool) {
	start := p.pos
	doc := p.collectDoc()

	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::enum_def::invalid_variant", source.NewSpan(start, p.pos), "expected a variant name")
		return ast.Variant{}, false
	}

	fields := p.parseFields(generics)
	id := p.parseID()

	return ast.Variant{
		Span: source.NewSpan(start, p.pos), Doc: doc, Name: name, NameSpan: nameSpan, Fields: fields, ID: id,
	}, true
}

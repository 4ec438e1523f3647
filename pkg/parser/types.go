package parser

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

var primitiveNames = map[string]ast.Primitive{
	"bool":   ast.Bool,
	"u8":     ast.U8,
	"u16":    ast.U16,
	"u32":    ast.U32,
	"u64":    ast.U64,
	"u128":   ast.U128,
	"i8":     ast.I8,
	"i16":    ast.I16,
	"i32":    ast.I32,
	"i64":    ast.I64,
	"i128":   ast.I128,
	"f32":    ast.F32,
	"f64":    ast.F64,
	"string": ast.String,
	"bytes":  ast.Bytes,
}

var containerNames = map[string]bool{
	"vec": true, "hash_set": true, "hash_map": true, "option": true,
	"non_zero": true, "array": true, "tuple": true,
}

// parseType parses one of: primitive, generic reference, container, tuple,
// array, or external reference (spec §3, §4.D `type` production).
func (p *parser) parseType(generics map[string]bool) (ast.Type, bool) {
	start := p.pos

	if p.peek() == '&' {
		if p.hasPrefix("&string") {
			p.pos += len("&string")
			return ast.NewPrimitiveType(source.NewSpan(start, p.pos), ast.StringRef), true
		}

		if p.hasPrefix("&bytes") {
			p.pos += len("&bytes")
			return ast.NewPrimitiveType(source.NewSpan(start, p.pos), ast.BytesRef), true
		}

		return nil, false
	}

	if p.hasPrefix("box<string>") {
		p.pos += len("box<string>")
		return ast.NewPrimitiveType(source.NewSpan(start, p.pos), ast.BoxString), true
	}

	if p.hasPrefix("box<bytes>") {
		p.pos += len("box<bytes>")
		return ast.NewPrimitiveType(source.NewSpan(start, p.pos), ast.BoxBytes), true
	}

	name, _, ok := p.scanIdent()
	if !ok {
		return p.parseExternalOrGeneric(start, generics)
	}

	if kind, ok := primitiveNames[name]; ok {
		return ast.NewPrimitiveType(source.NewSpan(start, p.pos), kind), true
	}

	if containerNames[name] && p.peek() == '<' {
		return p.parseContainer(start, name, generics)
	}

	// Not a primitive/container keyword after all: rewind and treat the
	// identifier as the start of a generic reference or external path.
	p.pos = start

	return p.parseExternalOrGeneric(start, generics)
}

func (p *parser) parseContainer(start int, name string, generics map[string]bool) (ast.Type, bool) {
	p.pos++ // '<'

	switch name {
	case "vec":
		elem, ok := p.parseType(generics)
		if !ok || !p.expectByte('>') {
			return nil, false
		}

		return ast.NewVecType(source.NewSpan(start, p.pos), elem), true
	case "hash_set":
		elem, ok := p.parseType(generics)
		if !ok || !p.expectByte('>') {
			return nil, false
		}

		return ast.NewHashSetType(source.NewSpan(start, p.pos), elem), true
	case "option":
		elem, ok := p.parseType(generics)
		if !ok || !p.expectByte('>') {
			return nil, false
		}

		return ast.NewOptionType(source.NewSpan(start, p.pos), elem), true
	case "non_zero":
		elem, ok := p.parseType(generics)
		if !ok || !p.expectByte('>') {
			return nil, false
		}

		return ast.NewNonZeroType(source.NewSpan(start, p.pos), elem), true
	case "hash_map":
		key, ok := p.parseType(generics)
		if !ok {
			return nil, false
		}

		p.skipTrivia()

		if !p.expectByte(',') {
			return nil, false
		}

		p.skipTrivia()

		val, ok := p.parseType(generics)
		if !ok || !p.expectByte('>') {
			return nil, false
		}

		return ast.NewHashMapType(source.NewSpan(start, p.pos), key, val), true
	case "array":
		elem, ok := p.parseType(generics)
		if !ok {
			return nil, false
		}

		p.skipTrivia()

		if !p.expectByte(';') {
			return nil, false
		}

		p.skipTrivia()

		sizeText, sizeSpan, ok := p.scanUint()
		if !ok {
			return nil, false
		}

		size := parseUintLiteral(sizeText)

		p.skipTrivia()

		if !p.expectByte('>') {
			return nil, false
		}

		return ast.NewArrayType(source.NewSpan(start, p.pos), elem, ast.ArraySize{Span: sizeSpan, Value: size}), true
	case "tuple":
		var elems []ast.Type

		for {
			p.skipTrivia()

			elem, ok := p.parseType(generics)
			if !ok {
				return nil, false
			}

			elems = append(elems, elem)

			p.skipTrivia()

			if !p.eof() && p.peek() == ',' {
				p.pos++
				continue
			}

			break
		}

		p.skipTrivia()

		if !p.expectByte('>') {
			return nil, false
		}

		return ast.NewTupleType(source.NewSpan(start, p.pos), elems), true
	default:
		return nil, false
	}
}

// parseExternalOrGeneric parses `path::Name<generics>` or a bare generic
// parameter reference, per spec §3 "External" and §4.F generic binding.
func (p *parser) parseExternalOrGeneric(start int, generics map[string]bool) (ast.Type, bool) {
	var segments []string

	for {
		s := p.save()

		name, _, ok := p.scanIdent()
		if !ok {
			p.restore(s)
			break
		}

		if !isLowerSnake(name) {
			p.restore(s)
			break
		}

		if !p.hasPrefix("::") {
			p.restore(s)
			break
		}

		segments = append(segments, name)
		p.pos += 2
	}

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		return nil, false
	}

	if len(segments) == 0 && generics != nil && generics[name] {
		return ast.NewGenericType(source.NewSpan(start, p.pos), name), true
	}

	var typeGenerics []ast.Type

	if !p.eof() && p.peek() == '<' {
		p.pos++

		for {
			p.skipTrivia()

			g, ok := p.parseType(generics)
			if !ok {
				return nil, false
			}

			typeGenerics = append(typeGenerics, g)

			p.skipTrivia()

			if !p.eof() && p.peek() == ',' {
				p.pos++
				continue
			}

			break
		}

		p.skipTrivia()

		if !p.expectByte('>') {
			return nil, false
		}
	}

	return ast.NewExternalType(source.NewSpan(start, p.pos), segments, name, nameSpan, typeGenerics), true
}

func (p *parser) expectByte(b byte) bool {
	if p.eof() || p.peek() != b {
		return false
	}

	p.pos++

	return true
}

func isLowerSnake(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || isDigit(c) || c == '_') {
			return false
		}
	}

	return true
}

func parseUintLiteral(text string) uint64 {
	var v uint64

	for i := 0; i < len(text); i++ {
		if text[i] == '_' {
			continue
		}

		v = v*10 + uint64(text[i]-'0')
	}

	return v
}

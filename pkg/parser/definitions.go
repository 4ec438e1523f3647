package parser

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// parseDefinition parses one `doc? attribute* (module | struct | enum |
// alias | const | import)` production, dispatching on the leading keyword with
// no backtracking across definitions (spec §4.D "Dispatch"). Doc lines
// written between the attributes and the keyword join the definition's doc.
// Once the
// leading keyword is consumed, failures are cut-committed: they are
// reported within this definition and recovery resumes at the next
// definition boundary.
func (p *parser) parseDefinition() (ast.Definition, bool) {
	start := p.pos
	doc := p.collectDoc()
	attrs := p.collectAttributes()
	doc = append(doc, p.collectDoc()...)

	p.skipTrivia()

	if p.eof() {
		return nil, false
	}

	switch {
	case p.keyword("mod"):
		return p.parseModule(start, doc)
	case p.keyword("struct"):
		return p.parseStruct(start, doc, attrs)
	case p.keyword("enum"):
		return p.parseEnum(start, doc, attrs)
	case p.keyword("type"):
		return p.parseAlias(start, doc)
	case p.keyword("const"):
		return p.parseConst(start, doc)
	case p.keyword("use"):
		return p.parseImport(start, doc)
	case p.peek() == '}':
		return nil, false
	default:
		d := p.errorf("mabo::parse::definition::unknown_keyword", source.NewSpan(p.pos, p.pos+1),
			"expected one of `mod`, `struct`, `enum`, `type`, `const`, `use`")
		d.WithHelp("every definition starts with one of these keywords")
		// Step past the offending byte first: it may itself be one that
		// syncToNextDefinition stops at, which would leave the cursor in place.
		p.pos++
		p.syncToNextDefinition()

		return nil, false
	}
}

func (p *parser) parseModule(start int, doc []string) (ast.Definition, bool) {
	p.pos += len("mod")
	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::module_def::invalid_name", source.NewSpan(start, p.pos), "expected a module name").
			WithHelp("expected a module declaration in the form `mod name { ... }`")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	if !p.expectByte('{') {
		p.errorf("mabo::parse::module_def::char", source.NewSpan(p.pos, p.pos), "expected `{`")
		p.syncToNextDefinition()

		return nil, false
	}

	var defs []ast.Definition

	for {
		p.skipTrivia()

		if p.eof() || p.peek() == '}' {
			break
		}

		def, ok := p.parseDefinition()
		if !ok {
			if p.eof() || p.peek() == '}' {
				break
			}

			continue
		}

		defs = append(defs, def)
	}

	p.skipTrivia()

	if !p.eof() && p.peek() == '}' {
		p.pos++
	}

	return ast.NewModuleDef(source.NewSpan(start, p.pos), doc, name, nameSpan, defs), true
}

func (p *parser) parseStruct(start int, doc []string, attrs []ast.Attribute) (ast.Definition, bool) {
	p.pos += len("struct")
	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::struct_def::invalid_name", source.NewSpan(start, p.pos), "expected a struct name").
			WithHelp("expected a struct declaration in the form `struct Name { ... }`")
		p.syncToNextDefinition()

		return nil, false
	}

	generics := p.parseGenerics()
	fields := p.parseFields(genericSet(generics))

	if _, unit := fields.(*ast.UnitFields); unit {
		p.skipTrivia()
		p.expectByte(';')
	}

	return ast.NewStructDef(source.NewSpan(start, p.pos), doc, attrs, name, nameSpan, generics, fields), true
}

func (p *parser) parseEnum(start int, doc []string, attrs []ast.Attribute) (ast.Definition, bool) {
	p.pos += len("enum")
	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::enum_def::invalid_name", source.NewSpan(start, p.pos), "expected an enum name").
			WithHelp("expected an enum declaration in the form `enum Name { Variant, ... }`")
		p.syncToNextDefinition()

		return nil, false
	}

	generics := p.parseGenerics()
	genset := genericSet(generics)

	p.skipTrivia()

	if !p.expectByte('{') {
		p.errorf("mabo::parse::enum_def::char", source.NewSpan(p.pos, p.pos), "expected `{`")
		p.syncToNextDefinition()

		return nil, false
	}

	var variants []ast.Variant

	for {
		p.skipTrivia()

		if p.eof() || p.peek() == '}' {
			break
		}

		v, ok := p.parseVariant(genset)
		if !ok {
			p.syncToAny(",", "}")
			continue
		}

		variants = append(variants, v)

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

	return ast.NewEnumDef(source.NewSpan(start, p.pos), doc, attrs, name, nameSpan, generics, variants), true
}

func (p *parser) parseAlias(start int, doc []string) (ast.Definition, bool) {
	p.pos += len("type")
	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::alias_def::invalid_name", source.NewSpan(start, p.pos), "expected an alias name").
			WithHelp("expected an alias declaration in the form `type Name = type;`")
		p.syncToNextDefinition()

		return nil, false
	}

	generics := p.parseGenerics()

	p.skipTrivia()

	if !p.expectByte('=') {
		p.errorf("mabo::parse::alias_def::char", source.NewSpan(p.pos, p.pos), "expected `=`")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	target, ok := p.parseType(genericSet(generics))
	if !ok {
		p.errorf("mabo::parse::type_def", source.NewSpan(p.pos, p.pos), "expected a type")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()
	p.expectByte(';')

	return ast.NewAliasDef(source.NewSpan(start, p.pos), doc, name, nameSpan, generics, target), true
}

func (p *parser) parseConst(start int, doc []string) (ast.Definition, bool) {
	p.pos += len("const")
	p.skipTrivia()

	name, nameSpan, ok := p.scanIdent()
	if !ok {
		p.errorf("mabo::parse::const_def::invalid_name", source.NewSpan(start, p.pos), "expected a const name").
			WithHelp("expected a const declaration in the form `const NAME: type = literal;`")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	if !p.expectByte(':') {
		p.errorf("mabo::parse::const_def::char", source.NewSpan(p.pos, p.pos), "expected `:`")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	typ, ok := p.parseType(nil)
	if !ok {
		p.errorf("mabo::parse::type_def", source.NewSpan(p.pos, p.pos), "expected a type")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	if !p.expectByte('=') {
		p.errorf("mabo::parse::const_def::char", source.NewSpan(p.pos, p.pos), "expected `=`")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()

	value, ok := p.parseLiteral()
	if !ok {
		p.errorf("mabo::parse::literal::invalid", source.NewSpan(p.pos, p.pos), "expected a literal value")
		p.syncToNextDefinition()

		return nil, false
	}

	p.skipTrivia()
	p.expectByte(';')

	return ast.NewConstDef(source.NewSpan(start, p.pos), doc, name, nameSpan, typ, value), true
}

func (p *parser) parseImport(start int, doc []string) (ast.Definition, bool) {
	p.pos += len("use")
	p.skipTrivia()

	var (
		segments     []string
		segmentSpans []source.Span
	)

	for {
		name, span, ok := p.scanIdent()
		if !ok {
			p.errorf("mabo::parse::import_def::invalid_segment", source.NewSpan(start, p.pos), "expected a path segment").
				WithHelp("expected an import declaration in the form `use a::b::c;`")
			p.syncToNextDefinition()

			return nil, false
		}

		segments = append(segments, name)
		segmentSpans = append(segmentSpans, span)

		if !p.hasPrefix("::") {
			break
		}

		p.pos += 2
	}

	var (
		typeName     string
		typeNameSpan source.Span
	)

	// The last segment is a type name, not a path segment, if it starts
	// with an uppercase letter.
	if len(segments) > 0 {
		last := segments[len(segments)-1]
		if last != "" && last[0] >= 'A' && last[0] <= 'Z' {
			typeName = last
			typeNameSpan = segmentSpans[len(segmentSpans)-1]
			segments = segments[:len(segments)-1]
			segmentSpans = segmentSpans[:len(segmentSpans)-1]
		}
	}

	p.skipTrivia()
	p.expectByte(';')

	return ast.NewImportDef(source.NewSpan(start, p.pos), doc, segments, segmentSpans, typeName, typeNameSpan), true
}

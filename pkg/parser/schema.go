package parser

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/source"
)

// Parse produces a lossless ast.Schema from file's contents. It never
// returns a nil Schema — even a file containing only malformed input
// yields a Schema with zero definitions plus one or more diagnostics.
func Parse(file *source.File) (*ast.Schema, []*diag.Diagnostic) {
	p := newParser(file)

	// A leading doc block followed by a definition belongs to that
	// definition; it is the schema's own doc only when nothing follows it.
	docStart := p.save()
	doc := p.collectDoc()

	p.skipTrivia()

	if !p.eof() {
		p.restore(docStart)
		doc = nil
	}

	var defs []ast.Definition

	for {
		p.skipTrivia()

		if p.eof() {
			break
		}

		def, ok := p.parseDefinition()
		if !ok {
			if p.eof() {
				break
			}

			continue
		}

		defs = append(defs, def)
	}

	return &ast.Schema{Path: file.Path(), Doc: doc, Defs: defs}, p.diags
}

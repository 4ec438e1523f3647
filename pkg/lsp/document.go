// Package lsp glues the parser/validator/simplifier pipeline to a
// go.lsp.dev/protocol-shaped editor facade: per-document diagnostics,
// hover, and semantic-token classification. Each open document is analyzed
// on its own (parse, validate, classify); cross-schema resolution
// (spec §4.F) is not run, so unresolved references are not reported;
// grounded on buflsp's file/symbol split (other_examples' bufbuild/buf
// buflsp snippet), simplified to mabo's single-pass pipeline.
package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/validate"
)

// Document is the analyzed state of one open `.mabo` file.
type Document struct {
	URI         protocol.DocumentURI
	File        *source.File
	Schema      *ast.Schema
	Diagnostics []*diag.Diagnostic
	Classes     []ir.SpanClass
}

// analyze runs parse, validate, and span classification over text. Parse
// failures and validation failures both surface as Diagnostics; Schema is
// always set to whatever the parser recovered, even partially.
func analyze(uri protocol.DocumentURI, text string) *Document {
	file, err := source.New(string(uri), []byte(text))
	if err != nil {
		return &Document{
			URI: uri,
			Diagnostics: []*diag.Diagnostic{
				diag.New("mabo::lsp::invalid_utf8", source.Span{}, "%s", err),
			},
		}
	}

	schema, diags := parser.Parse(file)
	diags = append(diags, validate.Schema(schema)...)

	return &Document{URI: uri, File: file, Schema: schema, Diagnostics: diags, Classes: ir.ClassifySpans(schema)}
}

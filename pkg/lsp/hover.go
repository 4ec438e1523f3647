package lsp

import (
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/source"
)

// Hover answers textDocument/hover for pos within doc: it finds the
// narrowest classified span enclosing pos and, for a definition name,
// appends its doc comment.
func Hover(doc *Document, pos protocol.Position) (*protocol.Hover, bool) {
	if doc.File == nil {
		return nil, false
	}

	offset := OffsetAt(doc.File, pos)

	class, ok := narrowestSpanAt(doc.Classes, offset)
	if !ok {
		return nil, false
	}

	text := doc.File.Slice(class.Span)

	var body strings.Builder

	fmt.Fprintf(&body, "```mabo\n%s\n```", text)

	if docComment := findDocFor(doc.Schema, class.Span); len(docComment) > 0 {
		body.WriteString("\n\n")
		body.WriteString(ir.RenderDoc(docComment))
	}

	rng := ToRange(doc.File, class.Span)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: body.String()},
		Range:    &rng,
	}, true
}

func narrowestSpanAt(classes []ir.SpanClass, offset int) (ir.SpanClass, bool) {
	var (
		best    ir.SpanClass
		bestLen = -1
	)

	for _, c := range classes {
		if !c.Span.Contains(offset) {
			continue
		}

		if bestLen == -1 || c.Span.Length() < bestLen {
			best, bestLen = c, c.Span.Length()
		}
	}

	return best, bestLen != -1
}

// findDocFor looks up the doc comment of whichever top-level or nested
// definition owns nameSpan, if any.
func findDocFor(schema *ast.Schema, nameSpan source.Span) []string {
	if schema == nil {
		return nil
	}

	var search func(defs []ast.Definition) []string

	search = func(defs []ast.Definition) []string {
		for _, d := range defs {
			switch def := d.(type) {
			case *ast.ModuleDef:
				if def.NameSpan == nameSpan {
					return def.Doc()
				}

				if doc := search(def.Defs); doc != nil {
					return doc
				}
			case *ast.StructDef:
				if def.NameSpan == nameSpan {
					return def.Doc()
				}
			case *ast.EnumDef:
				if def.NameSpan == nameSpan {
					return def.Doc()
				}

				for _, v := range def.Variants {
					if v.NameSpan == nameSpan {
						return v.Doc
					}
				}
			case *ast.AliasDef:
				if def.NameSpan == nameSpan {
					return def.Doc()
				}
			case *ast.ConstDef:
				if def.NameSpan == nameSpan {
					return def.Doc()
				}
			}
		}

		return nil
	}

	return search(schema.Defs)
}

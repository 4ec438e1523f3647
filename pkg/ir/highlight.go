package ir

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/source"
)

// SpanKind classifies a source range for editor semantic-token rendering
// (original_source's `mabo-compiler/src/highlight.rs`).
type SpanKind int

const (
	SpanKindType SpanKind = iota
	SpanKindName
	SpanKindLiteral
)

func (k SpanKind) String() string {
	switch k {
	case SpanKindType:
		return "type"
	case SpanKindName:
		return "name"
	case SpanKindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// SpanClass pairs a classified source range with its kind.
type SpanClass struct {
	Span source.Span
	Kind SpanKind
}

// ClassifySpans walks the lossless parse tree (not the IR: keyword and
// punctuation spans are already gone by the time simplification runs)
// collecting name, type, and literal ranges for semantic highlighting.
// Keyword spans (`struct`, `enum`, ...) are not tracked anywhere in
// pkg/ast, so they are not classified here; an editor client wanting
// keyword highlighting would need to re-derive them from the raw text.
func ClassifySpans(schema *ast.Schema) []SpanClass {
	var out []SpanClass

	for _, d := range schema.Defs {
		classifyDef(d, &out)
	}

	return out
}

func classifyDef(d ast.Definition, out *[]SpanClass) {
	switch def := d.(type) {
	case *ast.ModuleDef:
		*out = append(*out, SpanClass{def.NameSpan, SpanKindName})

		for _, nested := range def.Defs {
			classifyDef(nested, out)
		}
	case *ast.StructDef:
		*out = append(*out, SpanClass{def.NameSpan, SpanKindName})
		classifyFields(def.Fields, out)
	case *ast.EnumDef:
		*out = append(*out, SpanClass{def.NameSpan, SpanKindName})

		for _, v := range def.Variants {
			*out = append(*out, SpanClass{v.NameSpan, SpanKindName})
			classifyFields(v.Fields, out)
		}
	case *ast.AliasDef:
		*out = append(*out, SpanClass{def.NameSpan, SpanKindName})
		classifyType(def.Target, out)
	case *ast.ConstDef:
		*out = append(*out, SpanClass{def.NameSpan, SpanKindName})
		classifyType(def.Type, out)
		classifyLiteral(def.Value, out)
	case *ast.ImportDef:
		for _, s := range def.SegmentSpans {
			*out = append(*out, SpanClass{s, SpanKindName})
		}

		if def.TypeName != "" {
			*out = append(*out, SpanClass{def.TypeNameSpan, SpanKindName})
		}
	}
}

func classifyFields(fields ast.Fields, out *[]SpanClass) {
	switch f := fields.(type) {
	case *ast.NamedFields:
		for _, field := range f.Fields {
			*out = append(*out, SpanClass{field.NameSpan, SpanKindName})
			classifyType(field.Type, out)
		}
	case *ast.UnnamedFields:
		for _, field := range f.Fields {
			classifyType(field.Type, out)
		}
	}
}

func classifyType(t ast.Type, out *[]SpanClass) {
	switch ty := t.(type) {
	case *ast.PrimitiveType:
		*out = append(*out, SpanClass{ty.Span(), SpanKindType})
	case *ast.VecType:
		classifyType(ty.Element, out)
	case *ast.HashSetType:
		classifyType(ty.Element, out)
	case *ast.OptionType:
		classifyType(ty.Element, out)
	case *ast.NonZeroType:
		classifyType(ty.Element, out)
	case *ast.ArrayType:
		classifyType(ty.Element, out)
	case *ast.HashMapType:
		classifyType(ty.Key, out)
		classifyType(ty.Value, out)
	case *ast.TupleType:
		for _, el := range ty.Elements {
			classifyType(el, out)
		}
	case *ast.ExternalType:
		*out = append(*out, SpanClass{ty.NameSpan, SpanKindType})

		for _, g := range ty.Generics {
			classifyType(g, out)
		}
	case *ast.GenericType:
		*out = append(*out, SpanClass{ty.Span(), SpanKindType})
	}
}

func classifyLiteral(l ast.Literal, out *[]SpanClass) {
	if l == nil {
		return
	}

	*out = append(*out, SpanClass{l.Span(), SpanKindLiteral})
}

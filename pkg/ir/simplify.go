package ir

import (
	"strings"

	"github.com/dnaka91/mabo/pkg/ast"
)

// Simplify lowers a parsed (and, typically, already validated/resolved)
// ast.Schema into the normalized IR of spec §4.G. It is produced once per
// input and is immutable thereafter; Simplify itself never mutates schema.
func Simplify(schema *ast.Schema) *Schema {
	return &Schema{
		Path: schema.Path,
		Doc:  trimDoc(schema.Doc),
		Defs: simplifyDefs(schema.Defs),
	}
}

func trimDoc(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}

	return out
}

func simplifyDefs(defs []ast.Definition) []Definition {
	if len(defs) == 0 {
		return nil
	}

	out := make([]Definition, 0, len(defs))

	for _, d := range defs {
		out = append(out, simplifyDef(d))
	}

	return out
}

func simplifyDef(d ast.Definition) Definition {
	switch def := d.(type) {
	case *ast.ModuleDef:
		return &Module{
			Name_:    def.Name(),
			NameSpan: def.NameSpan,
			Doc_:     trimDoc(def.Doc()),
			Defs:     simplifyDefs(def.Defs),
		}
	case *ast.StructDef:
		return &Struct{
			Name_:    def.Name(),
			NameSpan: def.NameSpan,
			Doc_:     trimDoc(def.Doc()),
			Generics: genericNames(def.Generics),
			Fields:   simplifyFields(def.Fields),
		}
	case *ast.EnumDef:
		return &Enum{
			Name_:    def.Name(),
			NameSpan: def.NameSpan,
			Doc_:     trimDoc(def.Doc()),
			Generics: genericNames(def.Generics),
			Variants: simplifyVariants(def.Variants),
		}
	case *ast.AliasDef:
		return &Alias{
			Name_:    def.Name(),
			NameSpan: def.NameSpan,
			Doc_:     trimDoc(def.Doc()),
			Generics: genericNames(def.Generics),
			Target:   simplifyType(def.Target),
		}
	case *ast.ConstDef:
		return &Const{
			Name_:    def.Name(),
			NameSpan: def.NameSpan,
			Doc_:     trimDoc(def.Doc()),
			Type:     simplifyType(def.Type),
			Value:    def.Value,
		}
	case *ast.ImportDef:
		return &Import{Segments: def.Segments, TypeName: def.TypeName}
	default:
		panic("ir: unknown ast.Definition variant")
	}
}

func genericNames(generics []ast.Generic) []string {
	if len(generics) == 0 {
		return nil
	}

	out := make([]string, len(generics))
	for i, g := range generics {
		out[i] = g.Name
	}

	return out
}

func simplifyFields(fields ast.Fields) Fields {
	switch f := fields.(type) {
	case *ast.NamedFields:
		ids := effectiveIDs(namedFieldIDs(f.Fields))
		out := make([]NamedField, len(f.Fields))

		for i, field := range f.Fields {
			out[i] = NamedField{
				Doc: trimDoc(field.Doc), Name: field.Name, NameSpan: field.NameSpan,
				Type: simplifyType(field.Type), ID: ids[i],
			}
		}

		return &NamedFields{Fields: out}
	case *ast.UnnamedFields:
		ids := effectiveIDs(unnamedFieldIDs(f.Fields))
		out := make([]UnnamedField, len(f.Fields))

		for i, field := range f.Fields {
			out[i] = UnnamedField{Doc: trimDoc(field.Doc), Type: simplifyType(field.Type), ID: ids[i]}
		}

		return &UnnamedFields{Fields: out}
	default:
		return &UnitFields{}
	}
}

func simplifyVariants(variants []ast.Variant) []Variant {
	if len(variants) == 0 {
		return nil
	}

	rawIDs := make([]*ast.ID, len(variants))
	for i, v := range variants {
		rawIDs[i] = v.ID
	}

	ids := effectiveIDs(rawIDs)
	out := make([]Variant, len(variants))

	for i, v := range variants {
		out[i] = Variant{
			Doc: trimDoc(v.Doc), Name: v.Name, NameSpan: v.NameSpan,
			Fields: simplifyFields(v.Fields), ID: ids[i],
		}
	}

	return out
}

func namedFieldIDs(fields []ast.NamedField) []*ast.ID {
	out := make([]*ast.ID, len(fields))
	for i, f := range fields {
		out[i] = f.ID
	}

	return out
}

func unnamedFieldIDs(fields []ast.UnnamedField) []*ast.ID {
	out := make([]*ast.ID, len(fields))
	for i, f := range fields {
		out[i] = f.ID
	}

	return out
}

// effectiveIDs applies the id-generator of spec §3: each absent id
// receives one past the previous (explicit or generated) id, starting at
// 1, within the enclosing scope.
func effectiveIDs(ids []*ast.ID) []uint32 {
	out := make([]uint32, len(ids))
	next := uint32(1)

	for i, id := range ids {
		if id != nil {
			out[i] = id.Value
			next = id.Value + 1

			continue
		}

		out[i] = next
		next++
	}

	return out
}

func simplifyType(t ast.Type) Type {
	switch ty := t.(type) {
	case *ast.PrimitiveType:
		return PrimitiveType{Kind: ty.Kind}
	case *ast.VecType:
		return VecType{Element: simplifyType(ty.Element)}
	case *ast.HashSetType:
		return HashSetType{Element: simplifyType(ty.Element)}
	case *ast.OptionType:
		return OptionType{Element: simplifyType(ty.Element)}
	case *ast.NonZeroType:
		return NonZeroType{Element: simplifyType(ty.Element)}
	case *ast.ArrayType:
		return ArrayType{Element: simplifyType(ty.Element), Size: ty.Size.Value}
	case *ast.HashMapType:
		return HashMapType{Key: simplifyType(ty.Key), Value: simplifyType(ty.Value)}
	case *ast.TupleType:
		elems := make([]Type, len(ty.Elements))
		for i, el := range ty.Elements {
			elems[i] = simplifyType(el)
		}

		return TupleType{Elements: elems}
	case *ast.ExternalType:
		gens := make([]Type, len(ty.Generics))
		for i, g := range ty.Generics {
			gens[i] = simplifyType(g)
		}

		return ExternalType{Path: ty.Path, Name: ty.Name, NameSpan: ty.NameSpan, Generics: gens}
	case *ast.GenericType:
		return GenericType{Name: ty.Name}
	default:
		panic("ir: unknown ast.Type variant")
	}
}

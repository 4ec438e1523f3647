// Package validate implements the structural validator of spec §4.E: a
// read-only walk over a single parsed ast.Schema checking uniqueness of
// names and ids, generics usage, tuple arity, and identifier naming
// conventions (spec §3 "Invariants"). Validation never mutates the AST and
// never consults other schemas — cross-schema concerns belong to
// pkg/resolve.
package validate

import (
	"sort"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/source"
)

// Schema validates every definition in schema, returning diagnostics in
// source order (spec §4.E "Validation is deterministic"). A nil/empty
// result means the schema is structurally sound.
func Schema(schema *ast.Schema) []*diag.Diagnostic {
	v := &validator{}
	v.scope(schema.Defs)

	sort.SliceStable(v.diags, func(i, j int) bool {
		return v.diags[i].Span.Start() < v.diags[j].Span.Start()
	})

	return v.diags
}

type validator struct {
	diags []*diag.Diagnostic
}

func (v *validator) report(d *diag.Diagnostic) { v.diags = append(v.diags, d) }

// scope validates one module-level list of definitions: name uniqueness
// within the scope, per-kind naming convention, then recurses into each
// definition's own checks (fields/generics/tuple-arity) and nested modules.
func (v *validator) scope(defs []ast.Definition) {
	byName := make(map[string][]ast.Definition, len(defs))

	for _, d := range defs {
		byName[d.Name()] = append(byName[d.Name()], d)
	}

	for name, group := range byName {
		if len(group) > 1 {
			v.reportDuplicateName(name, group)
		}
	}

	for _, d := range defs {
		v.checkNaming(d)
		v.definition(d)
	}
}

func (v *validator) reportDuplicateName(name string, group []ast.Definition) {
	d := diag.New("mabo::validate::duplicate_name", group[0].Span(),
		"the name `%s` is defined more than once in this scope", name)

	for _, g := range group {
		d.WithLabel(g.Span(), "defined here")
	}

	d.WithHelp("rename one of the definitions, or move it into its own module")
	v.report(d)
}

func (v *validator) checkNaming(d ast.Definition) {
	switch def := d.(type) {
	case *ast.ModuleDef:
		v.checkIdent(def.Name(), def.NameSpan, isLowerIdent, "module")
	case *ast.StructDef:
		v.checkIdent(def.Name(), def.NameSpan, isUpperIdent, "struct")
	case *ast.EnumDef:
		v.checkIdent(def.Name(), def.NameSpan, isUpperIdent, "enum")
	case *ast.AliasDef:
		v.checkIdent(def.Name(), def.NameSpan, isUpperIdent, "alias")
	case *ast.ConstDef:
		v.checkIdent(def.Name(), def.NameSpan, isConstIdent, "const")
	case *ast.ImportDef:
		for i, seg := range def.Segments {
			v.checkIdent(seg, def.SegmentSpans[i], isLowerIdent, "import segment")
		}
	}
}

func (v *validator) checkIdent(name string, span source.Span, valid func(string) bool, kind string) {
	if !valid(name) {
		d := diag.New("mabo::validate::invalid_name", span, "`%s` is not a valid %s name", name, kind)
		d.WithHelp(namingHelp(kind))
		v.report(d)
	}
}

func namingHelp(kind string) string {
	switch kind {
	case "const":
		return "const names must start with an uppercase letter, followed by uppercase letters, digits, or underscores"
	case "module", "import segment":
		return "names in this position must start with a lowercase letter, followed by lowercase letters, digits, or underscores"
	default:
		return "names in this position must start with an uppercase letter, followed by letters or digits"
	}
}

func (v *validator) definition(d ast.Definition) {
	switch def := d.(type) {
	case *ast.ModuleDef:
		v.scope(def.Defs)
	case *ast.StructDef:
		v.fields(def.Fields, def.Generics)
		v.checkGenericsDeclUnique(def.Generics)
		v.checkGenericsUsed(def.Generics, def.Fields)
	case *ast.EnumDef:
		v.enum(def)
		v.checkGenericsDeclUnique(def.Generics)
		v.checkGenericsUsedInVariants(def.Generics, def.Variants)
	case *ast.AliasDef:
		v.checkGenericsDeclUnique(def.Generics)
		v.typ(def.Target)
	case *ast.ConstDef:
		v.typ(def.Type)
	}
}

func (v *validator) enum(def *ast.EnumDef) {
	byName := make(map[string][]ast.Variant)
	ids := make(map[uint32][]ast.Variant)

	effective := effectiveVariantIDs(def.Variants)

	for i, variant := range def.Variants {
		byName[variant.Name] = append(byName[variant.Name], variant)
		ids[effective[i]] = append(ids[effective[i]], variant)

		v.checkIdent(variant.Name, variant.NameSpan, isUpperIdent, "variant")
		v.fields(variant.Fields, def.Generics)
	}

	for name, group := range byName {
		if len(group) > 1 {
			v.reportDuplicateVariantName(name, group)
		}
	}

	for id, group := range ids {
		if len(group) > 1 {
			v.reportDuplicateVariantID(id, group)
		}
	}
}

func (v *validator) reportDuplicateVariantName(name string, group []ast.Variant) {
	d := diag.New("mabo::validate::duplicate_name", group[0].Span,
		"the variant name `%s` is defined more than once", name)
	for _, g := range group {
		d.WithLabel(g.Span, "defined here")
	}

	v.report(d)
}

func (v *validator) reportDuplicateVariantID(id uint32, group []ast.Variant) {
	d := diag.New("mabo::validate::duplicate_id", group[0].Span,
		"variant id `@%d` is used more than once", id)
	for _, g := range group {
		d.WithLabel(g.Span, "used here")
	}

	d.WithHelp("assign each variant a distinct `@N` id")
	v.report(d)
}

func (v *validator) fields(fields ast.Fields, generics []ast.Generic) {
	switch f := fields.(type) {
	case *ast.NamedFields:
		v.namedFields(f.Fields)
	case *ast.UnnamedFields:
		v.unnamedFields(f.Fields)
	case *ast.UnitFields:
		// nothing to check
	}
}

func (v *validator) namedFields(fields []ast.NamedField) {
	byName := make(map[string][]ast.NamedField)
	ids := make(map[uint32][]ast.NamedField)

	rawIDs := make([]*ast.ID, len(fields))
	for i, f := range fields {
		rawIDs[i] = f.ID
	}

	effective := effectiveIDs(rawIDs)

	for i, f := range fields {
		byName[f.Name] = append(byName[f.Name], f)
		ids[effective[i]] = append(ids[effective[i]], f)

		v.checkIdent(f.Name, f.NameSpan, isLowerIdent, "field")
		v.typ(f.Type)
	}

	for name, group := range byName {
		if len(group) > 1 {
			d := diag.New("mabo::validate::duplicate_name", group[0].Span,
				"the field name `%s` is defined more than once", name)
			for _, g := range group {
				d.WithLabel(g.Span, "defined here")
			}

			v.report(d)
		}
	}

	for id, group := range ids {
		if len(group) > 1 {
			d := diag.New("mabo::validate::duplicate_id", group[0].Span,
				"field id `@%d` is used more than once", id)
			for _, g := range group {
				d.WithLabel(g.Span, "used here")
			}

			d.WithHelp("assign each field a distinct `@N` id")
			v.report(d)
		}
	}
}

func (v *validator) unnamedFields(fields []ast.UnnamedField) {
	ids := make(map[uint32][]ast.UnnamedField)

	rawIDs := make([]*ast.ID, len(fields))
	for i, f := range fields {
		rawIDs[i] = f.ID
	}

	effective := effectiveIDs(rawIDs)

	for i, f := range fields {
		ids[effective[i]] = append(ids[effective[i]], f)
		v.typ(f.Type)
	}

	for id, group := range ids {
		if len(group) > 1 {
			d := diag.New("mabo::validate::duplicate_id", group[0].Span,
				"field id `@%d` is used more than once", id)
			for _, g := range group {
				d.WithLabel(g.Span, "used here")
			}

			v.report(d)
		}
	}
}

// typ recurses into a type tree checking tuple arity everywhere a tuple may
// occur, per spec §3 "Tuple types have between 2 and 12 element types".
func (v *validator) typ(t ast.Type) {
	switch ty := t.(type) {
	case *ast.TupleType:
		if len(ty.Elements) < 2 || len(ty.Elements) > 12 {
			diagT := diag.New("mabo::validate::tuple_arity", ty.Span(),
				"tuple has %d element types, expected between 2 and 12", len(ty.Elements))
			diagT.WithHelp("split this into a struct, or reduce/increase the element count")
			v.report(diagT)
		}

		for _, el := range ty.Elements {
			v.typ(el)
		}
	case *ast.VecType:
		v.typ(ty.Element)
	case *ast.HashSetType:
		v.typ(ty.Element)
	case *ast.OptionType:
		v.typ(ty.Element)
	case *ast.NonZeroType:
		v.typ(ty.Element)
	case *ast.ArrayType:
		v.typ(ty.Element)
	case *ast.HashMapType:
		v.typ(ty.Key)
		v.typ(ty.Value)
	case *ast.ExternalType:
		for _, g := range ty.Generics {
			v.typ(g)
		}
	}
}

func (v *validator) checkGenericsDeclUnique(generics []ast.Generic) {
	byName := make(map[string][]ast.Generic)
	for _, g := range generics {
		byName[g.Name] = append(byName[g.Name], g)
	}

	for name, group := range byName {
		if len(group) > 1 {
			d := diag.New("mabo::validate::duplicate_generic", group[0].Span,
				"the generic parameter `%s` is declared more than once", name)
			for _, g := range group {
				d.WithLabel(g.Span, "declared here")
			}

			v.report(d)
		}
	}
}

func (v *validator) checkGenericsUsed(generics []ast.Generic, fields ast.Fields) {
	for _, g := range generics {
		if !fieldsReferenceGeneric(fields, g.Name) {
			d := diag.New("mabo::validate::unused_generic", g.Span,
				"the generic parameter `%s` is declared but never used in a field", g.Name)
			d.WithHelp("reference it from at least one field type, or remove the declaration")
			v.report(d)
		}
	}
}

func (v *validator) checkGenericsUsedInVariants(generics []ast.Generic, variants []ast.Variant) {
	for _, g := range generics {
		used := false

		for _, variant := range variants {
			if fieldsReferenceGeneric(variant.Fields, g.Name) {
				used = true
				break
			}
		}

		if !used {
			d := diag.New("mabo::validate::unused_generic", g.Span,
				"the generic parameter `%s` is declared but never used in a variant", g.Name)
			d.WithHelp("reference it from at least one variant field, or remove the declaration")
			v.report(d)
		}
	}
}

func fieldsReferenceGeneric(fields ast.Fields, name string) bool {
	switch f := fields.(type) {
	case *ast.NamedFields:
		for _, field := range f.Fields {
			if typeReferencesGeneric(field.Type, name) {
				return true
			}
		}
	case *ast.UnnamedFields:
		for _, field := range f.Fields {
			if typeReferencesGeneric(field.Type, name) {
				return true
			}
		}
	}

	return false
}

// typeReferencesGeneric implements spec §4.E's generic-usage detection: "a
// bare uppercase identifier with no path and no generic arguments" is
// treated as a reference to the enclosing generic when the name matches —
// modelled here as ast.GenericType, which the parser already produces for
// exactly that shape (see pkg/parser/types.go).
func typeReferencesGeneric(t ast.Type, name string) bool {
	switch ty := t.(type) {
	case *ast.GenericType:
		return ty.Name == name
	case *ast.VecType:
		return typeReferencesGeneric(ty.Element, name)
	case *ast.HashSetType:
		return typeReferencesGeneric(ty.Element, name)
	case *ast.OptionType:
		return typeReferencesGeneric(ty.Element, name)
	case *ast.NonZeroType:
		return typeReferencesGeneric(ty.Element, name)
	case *ast.ArrayType:
		return typeReferencesGeneric(ty.Element, name)
	case *ast.HashMapType:
		return typeReferencesGeneric(ty.Key, name) || typeReferencesGeneric(ty.Value, name)
	case *ast.TupleType:
		for _, el := range ty.Elements {
			if typeReferencesGeneric(el, name) {
				return true
			}
		}

		return false
	case *ast.ExternalType:
		for _, g := range ty.Generics {
			if typeReferencesGeneric(g, name) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

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

func effectiveVariantIDs(variants []ast.Variant) []uint32 {
	ids := make([]*ast.ID, len(variants))
	for i, variant := range variants {
		ids[i] = variant.ID
	}

	return effectiveIDs(ids)
}

func isLowerIdent(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}

	return true
}

func isUpperIdent(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}

	return true
}

func isConstIdent(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}

	return true
}

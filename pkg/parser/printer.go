package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnaka91/mabo/pkg/ast"
)

// Print renders schema in mabo's canonical, stable formatting: normalized
// whitespace, a trailing comma after every named field and enum variant
// (including the last), one blank line between top-level
// definitions. Print is required to be idempotent with Parse: parsing its
// output must reproduce the same definitions (spec §4.D "Printer").
func Print(schema *ast.Schema) string {
	var b strings.Builder

	writeDoc(&b, "", schema.Doc)

	for i, def := range schema.Defs {
		if i > 0 {
			b.WriteByte('\n')
		}

		writeDefinition(&b, "", def)
	}

	return b.String()
}

func writeDoc(b *strings.Builder, indent string, doc []string) {
	for _, line := range doc {
		if line == "" {
			fmt.Fprintf(b, "%s///\n", indent)
		} else {
			fmt.Fprintf(b, "%s/// %s\n", indent, line)
		}
	}
}

func writeAttributes(b *strings.Builder, indent string, attrs []ast.Attribute) {
	for _, a := range attrs {
		fmt.Fprintf(b, "%s#[%s]\n", indent, attributeText(a))
	}
}

func attributeText(a ast.Attribute) string {
	switch v := a.Value.(type) {
	case ast.UnitValue:
		return a.Name
	case ast.LiteralValue:
		return fmt.Sprintf("%s = %s", a.Name, literalText(v.Value))
	case ast.ListValue:
		parts := make([]string, len(v.Values))
		for i, nested := range v.Values {
			parts[i] = attributeText(nested)
		}

		return fmt.Sprintf("%s(%s)", a.Name, strings.Join(parts, ", "))
	default:
		return a.Name
	}
}

func writeGenerics(b *strings.Builder, generics []ast.Generic) {
	if len(generics) == 0 {
		return
	}

	names := make([]string, len(generics))
	for i, g := range generics {
		names[i] = g.Name
	}

	fmt.Fprintf(b, "<%s>", strings.Join(names, ", "))
}

func idSuffix(id *ast.ID) string {
	if id == nil {
		return ""
	}

	return fmt.Sprintf(" @%d", id.Value)
}

func writeDefinition(b *strings.Builder, indent string, def ast.Definition) {
	writeDoc(b, indent, def.Doc())

	switch d := def.(type) {
	case *ast.ModuleDef:
		writeAttributes(b, indent, nil)
		fmt.Fprintf(b, "%smod %s {\n", indent, d.Name())

		for i, nested := range d.Defs {
			if i > 0 {
				b.WriteByte('\n')
			}

			writeDefinition(b, indent+"    ", nested)
		}

		fmt.Fprintf(b, "%s}\n", indent)
	case *ast.StructDef:
		writeAttributes(b, indent, d.Attributes)
		b.WriteString(indent)
		b.WriteString("struct ")
		b.WriteString(d.Name())
		writeGenerics(b, d.Generics)
		writeFields(b, indent, d.Fields, true)
		b.WriteByte('\n')
	case *ast.EnumDef:
		writeAttributes(b, indent, d.Attributes)
		fmt.Fprintf(b, "%senum %s", indent, d.Name())
		writeGenerics(b, d.Generics)
		b.WriteString(" {\n")

		for _, v := range d.Variants {
			writeDoc(b, indent+"    ", v.Doc)
			b.WriteString(indent + "    ")
			b.WriteString(v.Name)
			writeFields(b, indent+"    ", v.Fields, false)
			b.WriteString(idSuffix(v.ID))
			b.WriteString(",\n")
		}

		fmt.Fprintf(b, "%s}\n", indent)
	case *ast.AliasDef:
		fmt.Fprintf(b, "%stype %s", indent, d.Name())
		writeGenerics(b, d.Generics)
		fmt.Fprintf(b, " = %s;\n", typeText(d.Target))
	case *ast.ConstDef:
		fmt.Fprintf(b, "%sconst %s: %s = %s;\n", indent, d.Name(), typeText(d.Type), literalText(d.Value))
	case *ast.ImportDef:
		path := strings.Join(d.Segments, "::")

		switch {
		case path != "" && d.TypeName != "":
			fmt.Fprintf(b, "%suse %s::%s;\n", indent, path, d.TypeName)
		case d.TypeName != "":
			fmt.Fprintf(b, "%suse %s;\n", indent, d.TypeName)
		default:
			fmt.Fprintf(b, "%suse %s;\n", indent, path)
		}
	}
}

// writeFields writes a field list inline after the struct/variant name
// already written to b. For the unit form, a standalone (struct context)
// list writes the terminating `;` that parseStruct accepts after a unit
// struct; in a variant the unit form writes nothing.
func writeFields(b *strings.Builder, indent string, fields ast.Fields, standalone bool) {
	switch f := fields.(type) {
	case *ast.NamedFields:
		b.WriteString(" {\n")

		for _, fld := range f.Fields {
			writeDoc(b, indent+"    ", fld.Doc)
			fmt.Fprintf(b, "%s    %s: %s%s,\n", indent, fld.Name, typeText(fld.Type), idSuffix(fld.ID))
		}

		fmt.Fprintf(b, "%s}", indent)
	case *ast.UnnamedFields:
		b.WriteByte('(')

		for i, fld := range f.Fields {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(typeText(fld.Type))
			b.WriteString(idSuffix(fld.ID))
		}

		b.WriteByte(')')
	case *ast.UnitFields:
		if standalone {
			b.WriteByte(';')
		}
	}
}

func typeText(t ast.Type) string {
	switch v := t.(type) {
	case *ast.PrimitiveType:
		return v.Kind.String()
	case *ast.VecType:
		return fmt.Sprintf("vec<%s>", typeText(v.Element))
	case *ast.HashSetType:
		return fmt.Sprintf("hash_set<%s>", typeText(v.Element))
	case *ast.OptionType:
		return fmt.Sprintf("option<%s>", typeText(v.Element))
	case *ast.NonZeroType:
		return fmt.Sprintf("non_zero<%s>", typeText(v.Element))
	case *ast.ArrayType:
		return fmt.Sprintf("array<%s; %d>", typeText(v.Element), v.Size.Value)
	case *ast.HashMapType:
		return fmt.Sprintf("hash_map<%s, %s>", typeText(v.Key), typeText(v.Value))
	case *ast.TupleType:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			parts[i] = typeText(e)
		}

		return fmt.Sprintf("tuple<%s>", strings.Join(parts, ", "))
	case *ast.ExternalType:
		var b strings.Builder

		for _, seg := range v.Path {
			b.WriteString(seg)
			b.WriteString("::")
		}

		b.WriteString(v.Name)

		if len(v.Generics) > 0 {
			parts := make([]string, len(v.Generics))
			for i, g := range v.Generics {
				parts[i] = typeText(g)
			}

			fmt.Fprintf(&b, "<%s>", strings.Join(parts, ", "))
		}

		return b.String()
	case *ast.GenericType:
		return v.Name
	default:
		return "?"
	}
}

func literalText(l ast.Literal) string {
	switch v := l.(type) {
	case *ast.IntLiteral:
		return v.Value.String()
	case *ast.FloatLiteral:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *ast.BoolLiteral:
		return strconv.FormatBool(v.Value)
	case *ast.StringLiteral:
		return strconv.Quote(v.Value)
	case *ast.ByteArrayLiteral:
		return fmt.Sprintf("b%s", strconv.Quote(string(v.Value)))
	default:
		return "?"
	}
}
